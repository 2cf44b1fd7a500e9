package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"

	"github.com/automoto/strider/config"
)

// CameraData orbits a camera around a tracked target and rotates it from
// pointer motion.
type CameraData struct {
	// Name of the target entity the camera tracks, resolved through the
	// scene locator every frame (entities can be despawned externally,
	// so the reference is never cached).
	TargetName string

	// Offset of the camera's pivot from the target's position.
	Offset mgl64.Vec3

	// Orbit angles in degrees. Yaw spins around the gravity axis, pitch
	// tilts toward/away from it.
	YawDegrees   float64
	PitchDegrees float64

	// Pitch bounds in degrees.
	MinimumPitchDegrees float64
	MaximumPitchDegrees float64

	// Camera rotation amount per mickey of pointer movement.
	RotationDegreesPerMickey mgl64.Vec2

	// How much the mouse wheel zooms in or out when turned one notch.
	WheelZoomSensitivity float64

	// Distance bounds from the target.
	MinimumDistance float64
	MaximumDistance float64

	// Inverts vertical pointer movement.
	InvertY bool

	// Distance is the current (smoothed) orbit distance; TargetDistance
	// is where the wheel zoom is heading. ZoomTween eases between them.
	Distance       float64
	TargetDistance float64
	ZoomTween      *gween.Tween

	// Position and LookAt are recomputed every frame from the target.
	Position mgl64.Vec3
	LookAt   mgl64.Vec3
}

var Camera = donburi.NewComponentType[CameraData]()

// NewCameraData returns orbit camera state with the configured settings,
// tracking the named target from halfway between the distance bounds.
func NewCameraData(cfg config.CameraConfig, targetName string) CameraData {
	distance := (cfg.MinimumDistance + cfg.MaximumDistance) / 2
	return CameraData{
		TargetName:               targetName,
		Offset:                   mgl64.Vec3{cfg.Offset.X, cfg.Offset.Y, cfg.Offset.Z},
		MinimumPitchDegrees:      cfg.MinimumPitchDegrees,
		MaximumPitchDegrees:      cfg.MaximumPitchDegrees,
		RotationDegreesPerMickey: mgl64.Vec2{cfg.RotationDegreesPerMickeyX, cfg.RotationDegreesPerMickeyY},
		WheelZoomSensitivity:     cfg.WheelZoomSensitivity,
		MinimumDistance:          cfg.MinimumDistance,
		MaximumDistance:          cfg.MaximumDistance,
		InvertY:                  cfg.InvertY,
		Distance:                 distance,
		TargetDistance:           distance,
	}
}
