package systems

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"

	"github.com/automoto/strider/components"
	"github.com/automoto/strider/config"
	"github.com/automoto/strider/tags"
)

const (
	testPixelsPerUnit = 32.0
	testPlayerW       = 16.0
	testPlayerH       = 28.0
)

// newTestArena builds a space with a flat floor spanning its width and a
// character body standing flush on it at the given X.
func newTestArena(t *testing.T, playerX float64) (*resolv.Space, *resolv.Object, *KinematicResolver, *components.ActorPhysicsData) {
	t.Helper()

	space := resolv.NewSpace(640, 480, 16, 16)

	floor := resolv.NewObject(0, 400, 640, 16, tags.ResolvSolid)
	floor.SetShape(resolv.NewRectangle(0, 0, 640, 16))
	space.Add(floor)

	player := resolv.NewObject(playerX, 400-testPlayerH, testPlayerW, testPlayerH, tags.ResolvCharacter)
	player.SetShape(resolv.NewRectangle(0, 0, testPlayerW, testPlayerH))
	space.Add(player)

	physics := components.NewActorPhysicsData(config.Defaults().Actor)
	resolver := NewKinematicResolver(player, &physics, testPixelsPerUnit)
	return space, player, resolver, &physics
}

func addSolid(space *resolv.Space, x, y, w, h float64, extraTags ...string) *resolv.Object {
	object := resolv.NewObject(x, y, w, h, append([]string{tags.ResolvSolid}, extraTags...)...)
	object.SetShape(resolv.NewRectangle(0, 0, w, h))
	space.Add(object)
	return object
}

func addRamp(space *resolv.Space, x, y, w, h float64, slopeTag string) *resolv.Object {
	object := resolv.NewObject(x, y, w, h, tags.ResolvRamp, slopeTag)
	object.SetShape(resolv.NewRectangle(0, 0, w, h))
	space.Add(object)
	return object
}

var testGravity = mgl64.Vec3{0, -9.80665, 0}

func TestResolveMotion_UnobstructedMovement(t *testing.T) {
	_, player, resolver, _ := newTestArena(t, 100)
	// Lift the body well above the floor so nothing interferes.
	player.Y = 100
	player.Update()

	desired := mgl64.Vec3{0.5, -0.25, 0.75}
	actual := resolver.ResolveMotion(desired, testGravity)

	if math.Abs(actual.X()-desired.X()) > 1e-9 {
		t.Errorf("actual X = %v, want %v", actual.X(), desired.X())
	}
	if math.Abs(actual.Y()-desired.Y()) > 1e-9 {
		t.Errorf("actual Y = %v, want %v", actual.Y(), desired.Y())
	}
	if actual.Z() != desired.Z() {
		t.Errorf("Z should pass through unresolved, got %v", actual.Z())
	}
	if resolver.Grounded() {
		t.Error("body in the air should not be grounded")
	}
}

func TestResolveMotion_SlidesAlongWall(t *testing.T) {
	space, player, resolver, _ := newTestArena(t, 100)
	addSolid(space, 200, 0, 16, 400)

	// 4 world units = 128px, far past the wall at x=200.
	actual := resolver.ResolveMotion(mgl64.Vec3{4, 0, 0}, testGravity)

	wantDx := (200 - (100 + testPlayerW)) / testPixelsPerUnit
	if math.Abs(actual.X()-wantDx) > 1e-9 {
		t.Errorf("actual X = %v, want flush distance %v", actual.X(), wantDx)
	}
	if player.X+player.W != 200 {
		t.Errorf("body right edge = %v, want flush against wall at 200", player.X+player.W)
	}
}

func TestResolveMotion_RestingOnFloorIsGrounded(t *testing.T) {
	_, _, resolver, _ := newTestArena(t, 100)

	actual := resolver.ResolveMotion(mgl64.Vec3{}, testGravity)

	if !resolver.Grounded() {
		t.Error("body flush on the floor should report grounded")
	}
	if actual.Y() != 0 {
		t.Errorf("resting body moved vertically by %v", actual.Y())
	}
}

func TestResolveMotion_LandsOnFloor(t *testing.T) {
	_, player, resolver, _ := newTestArena(t, 100)
	player.Y = 400 - testPlayerH - 10
	player.Update()

	// Fall one world unit (32px), more than the 10px gap.
	actual := resolver.ResolveMotion(mgl64.Vec3{0, -1, 0}, testGravity)

	if !resolver.Grounded() {
		t.Error("body should land and report grounded")
	}
	wantDy := -10.0 / testPixelsPerUnit
	if math.Abs(actual.Y()-wantDy) > 1e-9 {
		t.Errorf("actual Y = %v, want %v", actual.Y(), wantDy)
	}
	if player.Y+player.H != 400 {
		t.Errorf("body bottom = %v, want flush on floor at 400", player.Y+player.H)
	}
}

func TestResolveMotion_ClimbsStepWithinAllowance(t *testing.T) {
	space, player, resolver, physics := newTestArena(t, 100)
	// An 8px ledge is 0.25 world units, exactly the maximum step height.
	addSolid(space, 120, 392, 64, 8)

	actual := resolver.ResolveMotion(mgl64.Vec3{0.25, 0, 0}, testGravity)

	if math.Abs(actual.X()-0.25) > 1e-9 {
		t.Errorf("actual X = %v, want full step traversal 0.25", actual.X())
	}
	if player.Y+player.H != 392 {
		t.Errorf("body bottom = %v, want on top of step at 392", player.Y+player.H)
	}
	if physics.StepClimbBudget() >= 0 {
		t.Error("climbing the step should spend budget")
	}
}

func TestResolveMotion_RefusesStepBeyondAllowance(t *testing.T) {
	space, player, resolver, _ := newTestArena(t, 100)
	// A 20px ledge is 0.625 world units, past the step allowance.
	addSolid(space, 120, 380, 64, 20)

	actual := resolver.ResolveMotion(mgl64.Vec3{0.25, 0, 0}, testGravity)

	wantDx := (120 - (100 + testPlayerW)) / testPixelsPerUnit
	if math.Abs(actual.X()-wantDx) > 1e-9 {
		t.Errorf("actual X = %v, want slide to flush %v", actual.X(), wantDx)
	}
	if player.Y+player.H != 400 {
		t.Errorf("body bottom = %v, want to stay on the floor", player.Y+player.H)
	}
}

func TestResolveMotion_ExhaustedBudgetBlocksRepeatedSteps(t *testing.T) {
	space, _, resolver, physics := newTestArena(t, 100)
	addSolid(space, 120, 392, 64, 8)

	// First climb spends the whole allowance.
	resolver.ResolveMotion(mgl64.Vec3{0.25, 0, 0}, testGravity)
	if physics.StepClimbBudget() != -physics.MaximumStepHeight {
		t.Fatalf("budget = %v, want fully spent", physics.StepClimbBudget())
	}

	// A second identical ledge cannot be climbed until the budget
	// recharges from horizontal travel.
	addSolid(space, 184, 384, 64, 8)
	actual := resolver.ResolveMotion(mgl64.Vec3{2.5, 0, 0}, testGravity)
	if actual.X() >= 2.5 {
		t.Errorf("actual X = %v, expected the second step to block movement", actual.X())
	}
}

func TestResolveMotion_FollowsRampUp(t *testing.T) {
	space, player, resolver, _ := newTestArena(t, 180)
	addRamp(space, 200, 368, 32, 32, tags.Slope45UpRight)

	actual := resolver.ResolveMotion(mgl64.Vec3{0.25, 0, 0}, testGravity)

	if math.Abs(actual.X()-0.25) > 1e-9 {
		t.Errorf("actual X = %v, want full ramp traversal 0.25", actual.X())
	}
	if !resolver.Grounded() {
		t.Error("body on a ramp should report grounded")
	}

	// Walk further up: surface height at the body center must follow the
	// 45 degree incline.
	resolver.ResolveMotion(mgl64.Vec3{0.5, 0, 0}, testGravity)
	centerX := player.X + player.W/2
	wantSurfaceY := 368 + 32*(1-(centerX-200)/32)
	if math.Abs((player.Y+player.H)-(wantSurfaceY+slopeSurfaceOffset)) > 1e-6 {
		t.Errorf("body bottom = %v, want snapped near slope surface %v", player.Y+player.H, wantSurfaceY)
	}
}

func TestResolveMotion_BumpsHeadOnCeiling(t *testing.T) {
	space, player, resolver, _ := newTestArena(t, 100)
	addSolid(space, 0, 360, 640, 4)

	// Jump upward one world unit (32px): the ceiling is 8px above.
	actual := resolver.ResolveMotion(mgl64.Vec3{0, 1, 0}, testGravity)

	wantDy := 8.0 / testPixelsPerUnit
	if math.Abs(actual.Y()-wantDy) > 1e-9 {
		t.Errorf("actual Y = %v, want %v", actual.Y(), wantDy)
	}
	if player.Y != 364 {
		t.Errorf("body top = %v, want flush under ceiling at 364", player.Y)
	}
}
