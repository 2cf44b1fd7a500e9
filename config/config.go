package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Vec3Config is a YAML-friendly 3D vector.
type Vec3Config struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// DisplayConfig contains window settings for the demo scene.
type DisplayConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// ActorConfig contains the physics attributes of a controlled actor.
type ActorConfig struct {
	// Mass of the actor in kilograms, including carried equipment.
	// Rough guide: human 75, athletic hero with gear 85, dog 35, horse 450.
	Mass float64 `yaml:"mass"`

	// Direction and strength of gravity. The length of the vector is
	// the strength of gravity.
	Gravity Vec3Config `yaml:"gravity"`

	// Multiplier on gravity's effect. Raising this above 1.0 makes fast
	// platformer movement feel less floaty when combined with unrealistic
	// jump heights.
	GravityScale float64 `yaml:"gravity_scale"`

	// If set, gravity is applied as a force automatically before each
	// physics update. Only disable this if you do fancy things with gravity.
	AffectedByGravity bool `yaml:"affected_by_gravity"`

	// Maximum step height the actor can traverse without jumping.
	MaximumStepHeight float64 `yaml:"maximum_step_height"`

	// Selects the higher order integrator instead of midpoint integration.
	HighQualityIntegration bool `yaml:"high_quality_integration"`
}

// CharacterConfig contains the movement tuning of the character controller.
type CharacterConfig struct {
	// How fast the character can run in world units per second.
	RunningSpeed float64 `yaml:"running_speed"`

	// How long the character takes to achieve its maximum speed. Balances
	// between tight controls and a more realistic feel where momentum
	// prevents instant running or stopping.
	SecondsToFullSpeed float64 `yaml:"seconds_to_full_speed"`

	// How much control the player has over the character in the air.
	AirControlFactor float64 `yaml:"air_control_factor"`

	// How high the character can jump in world units.
	JumpHeight float64 `yaml:"jump_height"`

	// Number of jumps the character can do after touching ground.
	// 0 means the character can't jump at all, 1 allows jumping off
	// the ground, 2 and up allow air jumps (2 = double-jump). Walking
	// off a cliff counts as one jump.
	MaximumJumpCount int `yaml:"maximum_jump_count"`
}

// CameraConfig contains the third-person orbit camera settings.
type CameraConfig struct {
	// Offset of the camera's pivot from the tracked target.
	Offset Vec3Config `yaml:"offset"`

	// Shortest and longest distance the camera can have from the target.
	MinimumDistance float64 `yaml:"minimum_distance"`
	MaximumDistance float64 `yaml:"maximum_distance"`

	// Camera rotation in degrees per mickey of pointer movement.
	RotationDegreesPerMickeyX float64 `yaml:"rotation_degrees_per_mickey_x"`
	RotationDegreesPerMickeyY float64 `yaml:"rotation_degrees_per_mickey_y"`

	// How much the mouse wheel zooms in or out when turned one notch.
	WheelZoomSensitivity float64 `yaml:"wheel_zoom_sensitivity"`

	// Pitch bounds in degrees, limiting how far the camera can tilt.
	MinimumPitchDegrees float64 `yaml:"minimum_pitch_degrees"`
	MaximumPitchDegrees float64 `yaml:"maximum_pitch_degrees"`

	// Inverts vertical pointer movement.
	InvertY bool `yaml:"invert_y"`
}

// Config is the root configuration document.
type Config struct {
	Display   DisplayConfig   `yaml:"display"`
	Actor     ActorConfig     `yaml:"actor"`
	Character CharacterConfig `yaml:"character"`
	Camera    CameraConfig    `yaml:"camera"`
}

// Global configuration, initialized to defaults. main() may overlay a YAML
// file on top of it before the game starts; nothing mutates it mid-tick.
var C Config

// Actor, Character and Camera alias into C for call-site brevity.
var (
	Actor     *ActorConfig
	Character *CharacterConfig
	Camera    *CameraConfig
)

func init() {
	C = Defaults()
	Actor = &C.Actor
	Character = &C.Character
	Camera = &C.Camera
}

// Defaults returns the built-in configuration values.
func Defaults() Config {
	return Config{
		Display: DisplayConfig{
			Width:  1280,
			Height: 720,
			Title:  "strider demo",
		},
		Actor: ActorConfig{
			Mass:                   85.0,
			Gravity:                Vec3Config{X: 0, Y: -9.80665, Z: 0},
			GravityScale:           1.0,
			AffectedByGravity:      true,
			MaximumStepHeight:      0.25,
			HighQualityIntegration: false,
		},
		Character: CharacterConfig{
			RunningSpeed:       2.5,
			SecondsToFullSpeed: 0.15,
			AirControlFactor:   1.0,
			JumpHeight:         0.5,
			MaximumJumpCount:   1,
		},
		Camera: CameraConfig{
			Offset:                    Vec3Config{X: 0, Y: 1.5, Z: 0},
			MinimumDistance:           1.25,
			MaximumDistance:           10.0,
			RotationDegreesPerMickeyX: 0.5,
			RotationDegreesPerMickeyY: 0.5,
			WheelZoomSensitivity:      1.0,
			MinimumPitchDegrees:       -80.0,
			MaximumPitchDegrees:       80.0,
			InvertY:                   false,
		},
	}
}

// Load overlays the YAML file at path onto the global configuration and
// validates the result. A missing file is not an error: the defaults stand.
func Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &C); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	return Validate(&C)
}

// Validate rejects configurations the physics code cannot run with. The
// integrator divides by mass, so a non-positive mass must never reach it.
func Validate(c *Config) error {
	if c.Actor.Mass <= 0 {
		return fmt.Errorf("actor mass must be positive, got %v", c.Actor.Mass)
	}
	if c.Actor.GravityScale < 0 {
		return fmt.Errorf("gravity scale must not be negative, got %v", c.Actor.GravityScale)
	}
	if c.Actor.MaximumStepHeight <= 0 {
		return fmt.Errorf("maximum step height must be positive, got %v", c.Actor.MaximumStepHeight)
	}
	if c.Character.SecondsToFullSpeed <= 0 {
		return fmt.Errorf("seconds to full speed must be positive, got %v", c.Character.SecondsToFullSpeed)
	}
	if c.Character.MaximumJumpCount < 0 {
		return fmt.Errorf("maximum jump count must not be negative, got %v", c.Character.MaximumJumpCount)
	}
	if c.Camera.MinimumDistance <= 0 || c.Camera.MaximumDistance < c.Camera.MinimumDistance {
		return fmt.Errorf(
			"camera distance bounds invalid: min %v, max %v",
			c.Camera.MinimumDistance, c.Camera.MaximumDistance,
		)
	}
	return nil
}
