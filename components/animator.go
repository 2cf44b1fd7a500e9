package components

import "github.com/yohamta/donburi"

// AnimatorData holds the blend parameters an animation layer reads to pick
// and mix character animations. Filled from the recorded velocity each tick.
type AnimatorData struct {
	// PlanarSpeed is the actor's speed across the horizontal plane.
	PlanarSpeed float64

	// VerticalSpeed is the actor's speed along the gravity axis,
	// positive when moving against gravity.
	VerticalSpeed float64

	// Airborne is set while the character is in the air.
	Airborne bool
}

var Animator = donburi.NewComponentType[AnimatorData]()
