package systems

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"

	"github.com/automoto/strider/components"
	"github.com/automoto/strider/gamemath"
	"github.com/automoto/strider/tags"
)

// slopeSurfaceOffset keeps the body slightly above a slope surface to
// prevent jitter and ensure stable ground detection.
const slopeSurfaceOffset = 0.1

// stepProbeEpsilon pads the step-up comparison against the remaining climb
// allowance so a ledge exactly at the limit still counts.
const stepProbeEpsilon = 1e-9

// KinematicResolver moves a resolv body by a desired world-space
// translation with slide-on-surface semantics, climbing small steps as
// long as the actor's step climb budget allows it.
//
// World X maps to space X and world Y maps to inverted space Y (resolv's
// Y axis grows downward). The Z axis has no collision geometry in the
// space and passes through unresolved.
type KinematicResolver struct {
	object  *resolv.Object
	physics *components.ActorPhysicsData

	// PixelsPerUnit converts world units to collision space pixels.
	pixelsPerUnit float64

	grounded bool
}

// NewKinematicResolver wires a resolver to the body it moves and the actor
// physics whose step climb budget gates step traversal.
func NewKinematicResolver(object *resolv.Object, physics *components.ActorPhysicsData, pixelsPerUnit float64) *KinematicResolver {
	return &KinematicResolver{
		object:        object,
		physics:       physics,
		pixelsPerUnit: pixelsPerUnit,
	}
}

// Grounded reports whether the body rested on or landed on solid ground
// during the last ResolveMotion call.
func (r *KinematicResolver) Grounded() bool {
	return r.grounded
}

// PixelsPerUnit returns the world-unit to collision-pixel scale.
func (r *KinematicResolver) PixelsPerUnit() float64 {
	return r.pixelsPerUnit
}

// ResolveMotion attempts to move the body by the desired world-space
// translation and returns the displacement actually achieved. The surface
// interaction vector orients the ground probe (its vertical sign is the
// "down" the body falls toward).
func (r *KinematicResolver) ResolveMotion(desired, surfaceInteraction mgl64.Vec3) mgl64.Vec3 {
	down := 1.0
	if surfaceInteraction.Y() > 0 {
		down = -1.0
	}

	dx := desired.X() * r.pixelsPerUnit
	dy := -desired.Y() * r.pixelsPerUnit * down

	actualDx := r.moveHorizontal(dx, down)
	actualDy := r.moveVertical(dy, down)
	r.object.Update()

	return mgl64.Vec3{
		actualDx / r.pixelsPerUnit,
		-actualDy / r.pixelsPerUnit * down,
		desired.Z(),
	}
}

// moveHorizontal performs the horizontal part of the movement: ramps are
// followed, small steps are climbed against the budget, everything else
// slides along the contact.
func (r *KinematicResolver) moveHorizontal(dx, down float64) float64 {
	if dx == 0 {
		return 0
	}
	object := r.object

	// Ramp in front (walking uphill).
	if check := object.Check(dx, 0, tags.ResolvRamp); check != nil {
		if ramps := check.ObjectsByTags(tags.ResolvRamp); len(ramps) > 0 {
			object.X += dx
			r.snapToSlope(ramps[0])
			return dx
		}
	}

	// Ramp below (walking downhill or staying on a slope).
	if check := object.Check(dx, down, tags.ResolvRamp); check != nil {
		if ramps := check.ObjectsByTags(tags.ResolvRamp); len(ramps) > 0 {
			object.X += dx
			r.snapToSlope(ramps[0])
			return dx
		}
	}

	check := object.Check(dx, 0, tags.ResolvSolid)
	if check == nil {
		object.X += dx
		return dx
	}

	solids := check.ObjectsByTags(tags.ResolvSolid)
	if len(solids) == 0 {
		object.X += dx
		return dx
	}

	// A blocking solid may be a step the actor can climb without jumping.
	if r.tryStepUp(dx, solids) {
		return dx
	}

	// Slide flush along the contact.
	contact := check.ContactWithObject(solids[0])
	object.X += contact.X()
	return contact.X()
}

// tryStepUp lifts the body onto a blocking ledge when the ledge height
// fits the remaining step climb allowance, spending budget for the climb.
func (r *KinematicResolver) tryStepUp(dx float64, solids []*resolv.Object) bool {
	object := r.object

	ledge := 0.0
	for _, solid := range solids {
		height := (object.Y + object.H) - solid.Y
		if height > ledge {
			ledge = height
		}
	}
	if ledge <= 0 {
		return false
	}

	ledgeUnits := ledge / r.pixelsPerUnit
	allowance := r.physics.MaximumStepHeight + r.physics.StepClimbBudget()
	if ledgeUnits > allowance+stepProbeEpsilon {
		return false
	}

	// The lifted position must be clear of other geometry.
	if object.Check(dx, -ledge, tags.ResolvSolid) != nil {
		return false
	}

	object.Y -= ledge
	object.X += dx
	object.Update()
	r.physics.ConsumeStepClimbBudget(ledgeUnits)
	return true
}

// moveVertical performs the vertical part of the movement, landing on or
// bumping against solids and ramps.
func (r *KinematicResolver) moveVertical(dy, down float64) float64 {
	r.grounded = false
	object := r.object

	descending := dy*down > 0 || dy == 0
	if descending {
		probe := dy
		if probe == 0 {
			probe = down // rest detection needs a minimal probe
		}
		if check := object.Check(0, probe, tags.ResolvSolid, tags.ResolvRamp); check != nil {
			if ramps := check.ObjectsByTags(tags.ResolvRamp); len(ramps) > 0 {
				before := object.Y
				r.snapToSlope(ramps[0])
				r.grounded = true
				return object.Y - before
			}
			if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
				contact := check.ContactWithObject(solids[0])
				object.Y += contact.Y()
				r.grounded = true
				return contact.Y()
			}
		}
		object.Y += dy
		return dy
	}

	// Ascending: bump the head against solids above.
	if check := object.Check(0, dy, tags.ResolvSolid); check != nil {
		if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
			contact := check.ContactWithObject(solids[0])
			object.Y += contact.Y()
			return contact.Y()
		}
	}
	object.Y += dy
	return dy
}

func (r *KinematicResolver) snapToSlope(ramp *resolv.Object) {
	surfaceY := gamemath.SlopeSurfaceY(r.object, ramp, tags.Slope45UpRight, tags.Slope45UpLeft)
	r.object.Y = gamemath.SnapToSlopeY(r.object.H, surfaceY, slopeSurfaceOffset)
	r.object.Update()
}
