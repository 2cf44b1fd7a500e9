package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData wraps the kinematic body an actor is moved through, plus the
// motion resolver that performs collision-aware movement for it.
type ObjectData struct {
	*resolv.Object

	// Resolver moves the body and reports the achieved displacement.
	// Looked up per tick by the physics system; never cached across it.
	Resolver MotionResolver
}

var Object = donburi.NewComponentType[ObjectData]()
