package systems

import (
	"math"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/strider/components"
)

// UpdateAnimators fills each actor's animation blend parameters from its
// recorded velocity. Runs after UpdateActorPhysics so the values reflect
// the movement that actually happened.
func UpdateAnimators(e *ecs.ECS) {
	components.Animator.Each(e.World, func(entry *donburi.Entry) {
		animator := components.Animator.Get(entry)
		physics := components.ActorPhysics.Get(entry)

		up := physics.GravityVector.Mul(-1)
		if length := up.Len(); length > 0 {
			up = up.Mul(1.0 / length)
		}

		vertical := physics.Velocity.Dot(up)
		planar := physics.Velocity.Sub(up.Mul(vertical))

		animator.PlanarSpeed = planar.Len()
		animator.VerticalSpeed = vertical

		if entry.HasComponent(components.Character) {
			animator.Airborne = components.Character.Get(entry).State == components.StateAir
		} else {
			animator.Airborne = math.Abs(vertical) > 1e-3
		}
	})
}
