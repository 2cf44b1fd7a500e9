package systems

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/strider/components"
	cfg "github.com/automoto/strider/config"
	"github.com/automoto/strider/gamemath"
)

// UpdateCharacters turns player input into queued forces on each
// character's actor physics and drives the ground/air state machine.
// Must run BEFORE UpdateActorPhysics in the system order.
func UpdateCharacters(e *ecs.ECS) {
	deltaSeconds := 1.0 / float64(ebiten.TPS())
	input, ok := components.Input.First(e.World)
	if !ok {
		return
	}
	inputData := components.Input.Get(input)

	components.Character.Each(e.World, func(entry *donburi.Entry) {
		character := components.Character.Get(entry)
		physics := components.ActorPhysics.Get(entry)

		updateCharacterState(entry, character)

		if inputData.Action(cfg.ActionJump).JustPressed {
			character.Jump(physics)
		}

		switch character.State {
		case components.StateGround:
			handleGroundMovement(character, physics, inputData, deltaSeconds)
		case components.StateAir:
			handleAirMovement(character, physics, inputData, deltaSeconds)
		}
	})
}

// updateCharacterState transitions between ground and air from what the
// motion resolver observed last tick: leaving ground without a jump counts
// as one jump, touching down restores the allowance.
func updateCharacterState(entry *donburi.Entry, character *components.CharacterData) {
	if !entry.HasComponent(components.Object) {
		return
	}
	object := components.Object.Get(entry)
	resolver, ok := object.Resolver.(*KinematicResolver)
	if !ok {
		return
	}

	grounded := resolver.Grounded()
	switch character.State {
	case components.StateGround:
		if !grounded {
			character.WalkOff()
		}
	case components.StateAir:
		if grounded {
			character.Land()
		}
	}
}

func handleGroundMovement(character *components.CharacterData, physics *components.ActorPhysicsData, input *components.InputData, deltaSeconds float64) {
	handleHorizontalMovement(character, physics, input, deltaSeconds)
}

func handleAirMovement(character *components.CharacterData, physics *components.ActorPhysicsData, input *components.InputData, deltaSeconds float64) {
	handleHorizontalMovement(character, physics, input, deltaSeconds)
}

// handleHorizontalMovement accelerates the character toward the velocity
// the player is asking for on the horizontal plane.
func handleHorizontalMovement(character *components.CharacterData, physics *components.ActorPhysicsData, input *components.InputData, deltaSeconds float64) {
	// Player controls and strength for movement on the horizontal plane.
	controls := mgl64.Vec2{input.MoveX, input.MoveY}

	targetVelocity := character.TargetVelocity(controls)
	acceleration := character.Acceleration()

	AccelerateToVelocity(physics, targetVelocity, acceleration, deltaSeconds)
}

// AccelerateToVelocity queues the force that moves the actor's horizontal
// velocity toward targetVelocity, limited to the given acceleration in
// world units per second squared.
func AccelerateToVelocity(physics *components.ActorPhysicsData, targetVelocity mgl64.Vec2, acceleration, deltaSeconds float64) {
	if deltaSeconds <= 0 {
		return
	}

	// Current velocity on the X/Z plane (horizontal movement).
	currentVelocity := mgl64.Vec2{physics.Velocity.X(), physics.Velocity.Z()}

	// Force that would achieve the target velocity instantly, limited to
	// the maximum acceleration allowed by the caller.
	force := targetVelocity.Sub(currentVelocity).Mul(1.0 / deltaSeconds)
	force = gamemath.ClampMagnitude(force, acceleration)
	force = force.Mul(physics.Mass)

	physics.QueueForce(mgl64.Vec3{force.X(), 0, force.Y()})
}
