package components

import (
	cfg "github.com/automoto/strider/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all
// actions plus analog control strengths and raw pointer motion.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool // Current frame's Pressed state
	Previous [cfg.ActionCount]bool // Previous frame's Pressed state

	// Normalized per-axis control strengths on the horizontal plane.
	// X is right minus left, Y is backward minus forward.
	MoveX float64
	MoveY float64

	// Raw pointer motion since the previous frame, in mickeys.
	PointerDeltaX float64
	PointerDeltaY float64

	// Mouse wheel notches turned since the previous frame.
	WheelDelta float64
}

var Input = donburi.NewComponentType[InputData]()

// Action returns the temporal state of a logical action.
func (i *InputData) Action(id cfg.ActionID) ActionState {
	return ActionState{
		Pressed:      i.Current[id],
		JustPressed:  i.Current[id] && !i.Previous[id],
		JustReleased: !i.Current[id] && i.Previous[id],
	}
}
