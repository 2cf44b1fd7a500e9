package systems

import (
	"log"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/strider/components"
	"github.com/automoto/strider/gamemath"
)

// zoomTweenSeconds is how long the camera takes to settle on a new wheel
// zoom distance.
const zoomTweenSeconds = 0.25

// UpdateCameras orbits each camera around its tracked target, rotating it
// from pointer motion and zooming it from the mouse wheel.
func UpdateCameras(e *ecs.ECS) {
	deltaSeconds := 1.0 / float64(ebiten.TPS())
	input, ok := components.Input.First(e.World)
	if !ok {
		return
	}
	inputData := components.Input.Get(input)

	components.Camera.Each(e.World, func(entry *donburi.Entry) {
		camera := components.Camera.Get(entry)

		target, ok := LocateNamed(e.World, camera.TargetName, components.ActorPhysics)
		if !ok {
			log.Printf("camera could not find its target %q, skipping frame", camera.TargetName)
			return
		}

		rotateCamera(camera, inputData)
		zoomCamera(camera, inputData, deltaSeconds)

		targetPosition := actorWorldPosition(target)
		camera.LookAt = targetPosition.Add(camera.Offset)
		camera.Position = OrbitPosition(
			targetPosition, camera.Offset,
			camera.YawDegrees, camera.PitchDegrees, camera.Distance,
		)
	})
}

// rotateCamera applies pointer motion to the orbit angles, keeping pitch
// inside its bounds.
func rotateCamera(camera *components.CameraData, input *components.InputData) {
	dy := input.PointerDeltaY
	if camera.InvertY {
		dy = -dy
	}

	camera.YawDegrees += input.PointerDeltaX * camera.RotationDegreesPerMickey.X()
	camera.PitchDegrees = gamemath.Clamp(
		camera.PitchDegrees+dy*camera.RotationDegreesPerMickey.Y(),
		camera.MinimumPitchDegrees, camera.MaximumPitchDegrees,
	)

	// Keep yaw in a sane range so it doesn't grow without bound.
	camera.YawDegrees = math.Mod(camera.YawDegrees, 360)
}

// zoomCamera retargets the distance tween on wheel movement and advances
// it toward the target distance.
func zoomCamera(camera *components.CameraData, input *components.InputData, deltaSeconds float64) {
	if input.WheelDelta != 0 {
		camera.TargetDistance = gamemath.Clamp(
			camera.TargetDistance-input.WheelDelta*camera.WheelZoomSensitivity,
			camera.MinimumDistance, camera.MaximumDistance,
		)
		camera.ZoomTween = gween.New(
			float32(camera.Distance), float32(camera.TargetDistance),
			zoomTweenSeconds, ease.OutQuad,
		)
	}

	if camera.ZoomTween != nil {
		current, finished := camera.ZoomTween.Update(float32(deltaSeconds))
		camera.Distance = float64(current)
		if finished {
			camera.ZoomTween = nil
		}
	}
}

// OrbitPosition computes the camera position orbiting a target: the pivot
// is the target plus offset, and the camera sits at the given distance
// along the view direction defined by yaw and pitch.
func OrbitPosition(target, offset mgl64.Vec3, yawDegrees, pitchDegrees, distance float64) mgl64.Vec3 {
	pivot := target.Add(offset)

	yaw := gamemath.DegToRad(yawDegrees)
	pitch := gamemath.DegToRad(pitchDegrees)

	direction := mgl64.Vec3{
		math.Cos(pitch) * math.Sin(yaw),
		math.Sin(pitch),
		math.Cos(pitch) * math.Cos(yaw),
	}
	return pivot.Sub(direction.Mul(distance))
}

// actorWorldPosition converts an actor's collision-space placement into
// world coordinates (feet center, world Y up).
func actorWorldPosition(entry *donburi.Entry) mgl64.Vec3 {
	if !entry.HasComponent(components.Object) {
		return mgl64.Vec3{}
	}
	object := components.Object.Get(entry)
	resolver, ok := object.Resolver.(*KinematicResolver)
	if !ok || object.Object == nil {
		return mgl64.Vec3{}
	}

	scale := resolver.PixelsPerUnit()
	return mgl64.Vec3{
		(object.X + object.W/2) / scale,
		-(object.Y + object.H) / scale,
		0,
	}
}
