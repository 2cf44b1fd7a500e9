package systems

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/strider/components"
)

// UpdateActorPhysics runs the per-tick physics step for every actor:
// gravity, integration, collision-resolved movement, step budget upkeep
// and velocity reconciliation, in that order.
func UpdateActorPhysics(e *ecs.ECS) {
	deltaSeconds := 1.0 / float64(ebiten.TPS())

	components.ActorPhysics.Each(e.World, func(entry *donburi.Entry) {
		physics := components.ActorPhysics.Get(entry)

		if !entry.HasComponent(components.Object) {
			log.Printf("actor physics entity has no kinematic body, skipping tick")
			return
		}
		object := components.Object.Get(entry)
		if object.Resolver == nil {
			log.Printf("actor physics entity has no motion resolver, skipping tick")
			return
		}

		TickActor(physics, object.Resolver, deltaSeconds)
	})
}

// TickActor advances a single actor by one physics step. The sequencing is
// strict: all queuing must have happened before this call, the integrated
// translation feeds the resolver, the budget recharges from the attempted
// translation and reconciliation sees the achieved one.
func TickActor(physics *components.ActorPhysicsData, resolver components.MotionResolver, deltaSeconds float64) {
	// Auto-apply gravity if enabled
	if physics.IsAffectedByGravity {
		physics.ApplyGravity(physics.GravityVector)
	}

	// Determine the translation the actor should attempt this physics
	// frame according to its velocity, acceleration and forces.
	translation := physics.Integrate(deltaSeconds)

	actualMovement := resolver.ResolveMotion(translation, physics.GravityVector)

	// As the actor travels horizontally, recharge the step climb budget
	// by the amount the resolver's step handling would let the actor
	// climb vertically.
	physics.RechargeStepClimbBudget(translation)

	// We have the velocity we want (forces + gravity) and the velocity at
	// which we actually moved (due to collisions etc.). Record the latter
	// so we don't run up huge impulses pushing into a wall.
	if deltaSeconds > 0 {
		reportedVelocity := actualMovement.Mul(1.0 / deltaSeconds)
		physics.ReconcileVelocity(reportedVelocity, true)
	}
}
