package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/strider/components"
	cfg "github.com/automoto/strider/config"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Previous cursor position for pointer delta computation
var (
	lastCursorX, lastCursorY int
	cursorTracked            bool
)

// UpdateInput polls raw input and updates the InputComponent.
// Must run BEFORE UpdateCharacters in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	// Get connected gamepads
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	// Poll all actions - only set Pressed state
	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
				}
			}
		}
	}

	input.MoveX, input.MoveY = moveAxes(input, gamepadIDs)
	input.PointerDeltaX, input.PointerDeltaY = pointerDelta()
	_, input.WheelDelta = ebiten.Wheel()
}

// moveAxes merges digital directional actions with the left analog stick
// into normalized per-axis control strengths. X is right minus left, Y is
// backward minus forward.
func moveAxes(input *components.InputData, gamepads []ebiten.GamepadID) (x, y float64) {
	if input.Current[cfg.ActionMoveRight] {
		x += 1
	}
	if input.Current[cfg.ActionMoveLeft] {
		x -= 1
	}
	if input.Current[cfg.ActionMoveBackward] {
		y += 1
	}
	if input.Current[cfg.ActionMoveForward] {
		y -= 1
	}

	deadzone := cfg.Input.AnalogDeadzone
	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}

		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

		if horizontal > deadzone || horizontal < -deadzone {
			x = horizontal
		}
		if vertical > deadzone || vertical < -deadzone {
			y = vertical
		}
	}

	// Keep diagonals from being faster than straight movement.
	if x < -1 {
		x = -1
	} else if x > 1 {
		x = 1
	}
	if y < -1 {
		y = -1
	} else if y > 1 {
		y = 1
	}
	return x, y
}

// pointerDelta returns the cursor movement since the previous frame.
// The first frame reports zero so a late-appearing cursor doesn't spin
// the camera.
func pointerDelta() (dx, dy float64) {
	x, y := ebiten.CursorPosition()
	if cursorTracked {
		dx = float64(x - lastCursorX)
		dy = float64(y - lastCursorY)
	}
	lastCursorX, lastCursorY = x, y
	cursorTracked = true
	return dx, dy
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}
