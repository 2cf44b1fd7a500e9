package systems

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/automoto/strider/components"
	"github.com/automoto/strider/config"
)

// stubResolver scales the desired translation by a fixed factor, standing
// in for collision geometry without a space.
type stubResolver struct {
	factor   float64
	desired  mgl64.Vec3
	received int
}

func (s *stubResolver) ResolveMotion(desired, surfaceInteraction mgl64.Vec3) mgl64.Vec3 {
	s.desired = desired
	s.received++
	return desired.Mul(s.factor)
}

func TestTickActor_FreeFallAccelerates(t *testing.T) {
	physics := components.NewActorPhysicsData(config.Defaults().Actor)
	resolver := &stubResolver{factor: 1}
	dt := 1.0 / 60.0

	TickActor(&physics, resolver, dt)

	// The first midpoint tick applies half the gravity step; the carry
	// lands on the next tick.
	wantVy := physics.GravityVector.Y() * dt / 2
	if math.Abs(physics.Velocity.Y()-wantVy) > 1e-9 {
		t.Errorf("velocity Y after one tick = %v, want %v", physics.Velocity.Y(), wantVy)
	}
	if resolver.received != 1 {
		t.Fatalf("resolver called %d times, want 1", resolver.received)
	}
	if math.Abs(resolver.desired.Y()-wantVy*dt) > 1e-9 {
		t.Errorf("attempted translation Y = %v, want %v", resolver.desired.Y(), wantVy*dt)
	}

	// Tick two: the deferred half step from tick one plus another half of
	// the freshly queued gravity.
	TickActor(&physics, resolver, dt)
	wantVy = physics.GravityVector.Y() * dt * 1.5
	if math.Abs(physics.Velocity.Y()-wantVy) > 1e-9 {
		t.Errorf("velocity Y after two ticks = %v, want %v", physics.Velocity.Y(), wantVy)
	}
}

func TestTickActor_BlockedMovementCancelsVelocity(t *testing.T) {
	physics := components.NewActorPhysicsData(config.Defaults().Actor)
	physics.IsAffectedByGravity = false
	physics.Velocity = mgl64.Vec3{3, 0, 0}
	resolver := &stubResolver{factor: 0}

	TickActor(&physics, resolver, 1.0/60.0)

	if physics.Velocity.X() != 0 {
		t.Errorf("velocity X = %v, want 0 after moving into a blocker", physics.Velocity.X())
	}
}

func TestTickActor_UnblockedMovementKeepsVelocity(t *testing.T) {
	physics := components.NewActorPhysicsData(config.Defaults().Actor)
	physics.IsAffectedByGravity = false
	physics.Velocity = mgl64.Vec3{3, 0, -2}
	resolver := &stubResolver{factor: 1}

	TickActor(&physics, resolver, 1.0/60.0)

	want := mgl64.Vec3{3, 0, -2}
	if physics.Velocity != want {
		t.Errorf("velocity = %v, want unchanged %v", physics.Velocity, want)
	}
}

func TestTickActor_FallingDepletesStepBudget(t *testing.T) {
	physics := components.NewActorPhysicsData(config.Defaults().Actor)
	resolver := &stubResolver{factor: 1}
	dt := 1.0 / 60.0

	for i := 0; i < 120; i++ {
		TickActor(&physics, resolver, dt)
	}

	if physics.StepClimbBudget() != -physics.MaximumStepHeight {
		t.Errorf("budget after sustained falling = %v, want %v",
			physics.StepClimbBudget(), -physics.MaximumStepHeight)
	}
}

func TestTickActor_GravityDisabled(t *testing.T) {
	physics := components.NewActorPhysicsData(config.Defaults().Actor)
	physics.IsAffectedByGravity = false
	resolver := &stubResolver{factor: 1}

	TickActor(&physics, resolver, 1.0/60.0)

	if physics.Velocity != (mgl64.Vec3{}) {
		t.Errorf("velocity = %v, want zero with gravity disabled", physics.Velocity)
	}
}
