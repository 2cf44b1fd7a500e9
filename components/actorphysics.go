package components

import (
	"log"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"

	"github.com/automoto/strider/config"
	"github.com/automoto/strider/gamemath"
)

// velocityEpsilon is the smallest velocity change the recorded velocity can
// be updated by. Compared against squared distances.
const velocityEpsilon = 1e-4

// MotionResolver attempts to move a body by the desired translation and
// returns the displacement actually achieved, clipped and redirected by
// collisions (slide-on-surface semantics). The surface interaction vector
// is the gravity direction, used for slope handling.
type MotionResolver interface {
	ResolveMotion(desired, surfaceInteraction mgl64.Vec3) mgl64.Vec3
}

// ActorPhysicsData simulates an actor's movement in the game world.
//
// Forces, impulses and direct movements queued between physics updates are
// folded into a single translation by Integrate once per tick. The caller
// hands that translation to a MotionResolver and reports the achieved
// movement back via ReconcileVelocity.
type ActorPhysicsData struct {
	// Mass of the actor in kilograms, including carried equipment.
	// Must be positive: the integrator divides by it.
	Mass float64

	// Direction and strength of gravity for the actor. The length of
	// the vector is the strength of gravity.
	GravityVector mgl64.Vec3

	// How much the actor is affected by gravity.
	GravityScale float64

	// If set, gravity is applied as a force automatically before each
	// physics update.
	IsAffectedByGravity bool

	// Maximum step height the actor can traverse without jumping.
	MaximumStepHeight float64

	// Current velocity of the actor. Only reconciliation replaces it
	// wholesale; the integrator reads and additively modifies it.
	Velocity mgl64.Vec3

	// Whether a high quality integrator should be used for physics.
	// Midpoint integration is used when disabled, which is already beyond
	// the effort applied by most games to integrate forces.
	UseHighQualityIntegration bool

	// Force, impulse and movement accumulators since the last update.
	// Cleared at the end of every Integrate call.
	queuedForces   mgl64.Vec3
	queuedImpulses mgl64.Vec3
	queuedMovement mgl64.Vec3

	// Stores half of the acceleration from the last physics update.
	// Midpoint integration applies half of the acceleration into velocity
	// before updating the actor's position and half after.
	midpointVelocity mgl64.Vec3

	// Remaining height of a step the actor will be able to traverse.
	//
	// Careful: the step climbing budget is negative! 0.0 means the budget
	// is full, and it is exhausted at -MaximumStepHeight.
	//
	// The budget allows actors to move across vertical steps up to a
	// certain height. Since steps are traced anew each physics frame,
	// bounding the total keeps an actor from scaling steep walls. The
	// budget is recharged by horizontal movement.
	stepClimbBudget float64

	rk4WarningShown bool
}

var ActorPhysics = donburi.NewComponentType[ActorPhysicsData]()

// NewActorPhysicsData returns actor physics state with the configured
// per-actor attributes and all internal accumulators zeroed.
func NewActorPhysicsData(cfg config.ActorConfig) ActorPhysicsData {
	return ActorPhysicsData{
		Mass:                      cfg.Mass,
		GravityVector:             mgl64.Vec3{cfg.Gravity.X, cfg.Gravity.Y, cfg.Gravity.Z},
		GravityScale:              cfg.GravityScale,
		IsAffectedByGravity:       cfg.AffectedByGravity,
		MaximumStepHeight:         cfg.MaximumStepHeight,
		UseHighQualityIntegration: cfg.HighQualityIntegration,
	}
}

// Reset restores the actor physics state to its configured defaults,
// clearing velocity, accumulators and the step climb budget.
func (a *ActorPhysicsData) Reset(cfg config.ActorConfig) {
	*a = NewActorPhysicsData(cfg)
}

// QueueMovement queues a direct movement for the actor.
//
// This bypasses acceleration/deceleration and attempts to move the actor
// directly by the specified amount during the next physics update. Useful
// to combine physics with animation-driven root motion.
func (a *ActorPhysicsData) QueueMovement(movement mgl64.Vec3) {
	a.queuedMovement = a.queuedMovement.Add(movement)
}

// QueueForce queues a force to affect the actor's velocity.
func (a *ActorPhysicsData) QueueForce(force mgl64.Vec3) {
	a.queuedForces = a.queuedForces.Add(force)
}

// QueueImpulse queues an impulse to affect the actor's velocity.
func (a *ActorPhysicsData) QueueImpulse(impulse mgl64.Vec3) {
	a.queuedImpulses = a.queuedImpulses.Add(impulse)
}

// ApplyGravity applies the force of gravity to the actor.
func (a *ActorPhysicsData) ApplyGravity(gravity mgl64.Vec3) {
	// Times mass b/c w/o friction, a feather falls as fast as a lead weight!
	a.QueueForce(gravity.Mul(a.Mass * a.GravityScale))
}

// Integrate advances the simulation by deltaSeconds and returns the
// translation by which the actor should be moved this tick.
func (a *ActorPhysicsData) Integrate(deltaSeconds float64) mgl64.Vec3 {
	if a.UseHighQualityIntegration {
		return a.integrateRungeKutta4(deltaSeconds)
	}
	return a.integrateMidpoint(deltaSeconds)
}

// integrateMidpoint integrates acceleration and velocity using the
// midpoint method.
func (a *ActorPhysicsData) integrateMidpoint(deltaSeconds float64) mgl64.Vec3 {
	// Apply the other half of the acceleration from the previous update
	// cycle. This is delayed until now to integrate velocity at the midpoint.
	a.Velocity = a.Velocity.Add(a.midpointVelocity)

	// Impulses are momentum, not force: they carry no time dependency
	// and convert to a velocity change directly.
	a.Velocity = a.Velocity.Add(a.queuedImpulses.Mul(1.0 / a.Mass))

	acceleration := a.queuedForces.Mul(1.0 / a.Mass)

	// Halve the acceleration so that one half can be applied now, the other
	// half at the beginning of the next update cycle.
	a.midpointVelocity = acceleration.Mul(0.5 * deltaSeconds)
	a.Velocity = a.Velocity.Add(a.midpointVelocity)

	translation := a.Velocity.Mul(deltaSeconds)

	// Queued movements (root motion, etc.) go directly into translation.
	translation = translation.Add(a.queuedMovement)

	a.queuedForces = mgl64.Vec3{}
	a.queuedImpulses = mgl64.Vec3{}
	a.queuedMovement = mgl64.Vec3{}

	return translation
}

// integrateRungeKutta4 integrates acceleration and velocity using the
// Runge-Kutta 4 method.
func (a *ActorPhysicsData) integrateRungeKutta4(deltaSeconds float64) mgl64.Vec3 {
	if !a.rk4WarningShown {
		log.Printf("Runge-Kutta 4 integration not implemented yet, using midpoint integration")
		a.rk4WarningShown = true
	}
	return a.integrateMidpoint(deltaSeconds)
}

// RechargeStepClimbBudget recharges the step climb budget relative to the
// actor's horizontal movement. Called with the translation the actor
// attempted this tick, before collision response.
//
// Realistically, this budget would also recover by time: an actor could
// walk up very steep stairs by moving only upwards, but the motion resolver
// performs horizontal movement in full and only then adjusts height based
// on obstacles, so it's either this or unlimited stair steepness.
func (a *ActorPhysicsData) RechargeStepClimbBudget(translation mgl64.Vec3) {
	distance := translation.Len()
	if distance == 0 {
		return
	}
	direction := translation.Mul(1.0 / distance)

	// Angle of travel relative to the floor plane defined by the gravity
	// vector. Positive angles mean the actor is climbing, negative angles
	// mean descending.
	directionDotGravity := a.GravityVector.Normalize().Dot(direction)
	angleToFloorPlane := gamemath.HalfPi - math.Acos(directionDotGravity)

	verticalMovement := math.Sin(angleToFloorPlane) * distance
	horizontalMovement := math.Cos(angleToFloorPlane) * distance

	balance := horizontalMovement - verticalMovement
	a.stepClimbBudget = gamemath.Clamp(
		a.stepClimbBudget+balance, -a.MaximumStepHeight, 0.0,
	)
}

// StepClimbBudget returns the current step climb budget in the range
// [-MaximumStepHeight, 0], where 0 means the full budget is available.
func (a *ActorPhysicsData) StepClimbBudget() float64 {
	return a.stepClimbBudget
}

// ConsumeStepClimbBudget spends budget for a step of the given height.
// Called by the motion resolver each time it lifts the actor over a step.
func (a *ActorPhysicsData) ConsumeStepClimbBudget(height float64) {
	a.stepClimbBudget = gamemath.Clamp(
		a.stepClimbBudget-height, -a.MaximumStepHeight, 0.0,
	)
}

// ReconcileVelocity updates the recorded velocity of the actor from the
// velocity at which it actually moved. If updateHorizontalVelocity is
// false, only the vertical axis is replaced (if no collisions happen it's
// often a good idea to keep the horizontal velocity untouched).
//
// The update is filtered so that small errors will not accumulate, like
// when moving at a speed of 5.0 up a slope and the movement logic reports
// that the actor only moved 4.99 units, getting slower every cycle.
func (a *ActorPhysicsData) ReconcileVelocity(newVelocity mgl64.Vec3, updateHorizontalVelocity bool) {
	// Update the velocity only if it has changed by more than the epsilon
	// value. The velocity is scaled by delta time, then descaled and scaled
	// again; blindly updating the recorded velocity would accumulate
	// floating point inaccuracies over time.
	if a.Velocity.Sub(newVelocity).LenSqr() > velocityEpsilon {
		if updateHorizontalVelocity {
			a.Velocity = newVelocity
		} else {
			a.Velocity[1] = newVelocity.Y()
		}
	}

	// If the velocity has been zeroed on any axis, apply that in any case.
	// Otherwise a tiny drift might never be cleared from the velocity
	// vector, very slowly moving the actor around against an obstacle.
	if updateHorizontalVelocity {
		if math.Abs(newVelocity.X()) < velocityEpsilon {
			a.Velocity[0] = 0
		}
		if math.Abs(newVelocity.Z()) < velocityEpsilon {
			a.Velocity[2] = 0
		}
	}
	if math.Abs(newVelocity.Y()) < velocityEpsilon {
		a.Velocity[1] = 0
	}
}
