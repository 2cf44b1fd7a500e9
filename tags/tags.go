package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Wall   = donburi.NewTag().SetName("Wall")
	Ramp   = donburi.NewTag().SetName("Ramp")
)

// Resolv tags for physics collision
const (
	ResolvSolid     = "solid"
	ResolvRamp      = "ramp"
	ResolvCharacter = "character"

	// Slope type tags
	Slope45UpRight = "45_up_right"
	Slope45UpLeft  = "45_up_left"
)
