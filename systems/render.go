package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/strider/components"
	"github.com/automoto/strider/tags"
)

// DrawWorld renders a side view of the collision space, following the
// player horizontally.
func DrawWorld(e *ecs.ECS, screen *ebiten.Image) {
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	// Follow the player; fall back to the space origin before spawn.
	camX, camY := 0.0, 0.0
	if player, ok := LocateNamed(e.World, "Player", components.Object); ok {
		object := components.Object.Get(player)
		camX = float64(width)/2 - (object.X + object.W/2)
		camY = float64(height)/2 - (object.Y + object.H/2)
	}

	viewX := -camX
	viewY := -camY

	for _, obj := range space.Objects() {
		if obj.X+obj.W < viewX || obj.X > viewX+float64(width) ||
			obj.Y+obj.H < viewY || obj.Y > viewY+float64(height) {
			continue
		}

		x := obj.X + camX
		y := obj.Y + camY

		c := color.RGBA{0, 255, 255, 255}
		switch {
		case obj.HasTags(tags.ResolvCharacter):
			c = color.RGBA{0, 128, 255, 255}
		case obj.HasTags(tags.ResolvRamp):
			c = color.RGBA{255, 200, 0, 255}
		case obj.HasTags(tags.ResolvSolid):
			c = color.RGBA{100, 100, 100, 255}
		}

		vector.FillRect(screen, float32(x), float32(y), float32(obj.W), 1, c, false)
		vector.FillRect(screen, float32(x), float32(y+obj.H-1), float32(obj.W), 1, c, false)
		vector.FillRect(screen, float32(x), float32(y), 1, float32(obj.H), c, false)
		vector.FillRect(screen, float32(x+obj.W-1), float32(y), 1, float32(obj.H), c, false)
	}
}

// DrawHUD prints the player and camera state in the screen corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	if player, ok := LocateNamed(e.World, "Player", components.ActorPhysics); ok {
		physics := components.ActorPhysics.Get(player)
		state := "air"
		if player.HasComponent(components.Character) {
			if components.Character.Get(player).State == components.StateGround {
				state = "ground"
			}
		}
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf(
			"vel (%.2f, %.2f, %.2f) m/s  %s",
			physics.Velocity.X(), physics.Velocity.Y(), physics.Velocity.Z(), state,
		), 8, 8)
	}

	if cameraEntry, ok := components.Camera.First(e.World); ok {
		camera := components.Camera.Get(cameraEntry)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf(
			"cam yaw %.1f pitch %.1f dist %.2f",
			camera.YawDegrees, camera.PitchDegrees, camera.Distance,
		), 8, 24)
	}
}
