package factory

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/strider/archetypes"
	"github.com/automoto/strider/components"
	cfg "github.com/automoto/strider/config"
	"github.com/automoto/strider/levels"
	"github.com/automoto/strider/systems"
	"github.com/automoto/strider/tags"
)

// Player collision body size in pixels.
const (
	playerWidth  = 16
	playerHeight = 28
)

// PixelsPerUnit converts world units (meters) to collision space pixels.
const PixelsPerUnit = 32.0

// CreatePlayer spawns the controllable character at a position in pixels,
// wiring its kinematic body and motion resolver into the given space.
func CreatePlayer(e *ecs.ECS, space *resolv.Space, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(e)

	object := resolv.NewObject(x, y, playerWidth, playerHeight, tags.ResolvCharacter)
	object.SetShape(resolv.NewRectangle(0, 0, playerWidth, playerHeight))
	object.Data = player
	space.Add(object)

	components.Name.SetValue(player, components.NameData{Value: "Player"})
	components.ActorPhysics.SetValue(player, components.NewActorPhysicsData(*cfg.Actor))
	components.Character.SetValue(player, components.NewCharacterData(*cfg.Character))
	components.Animator.SetValue(player, components.AnimatorData{})

	physics := components.ActorPhysics.Get(player)
	components.Object.SetValue(player, components.ObjectData{
		Object:   object,
		Resolver: systems.NewKinematicResolver(object, physics, PixelsPerUnit),
	})

	return player
}

// CreateWall spawns a static collision rectangle.
func CreateWall(e *ecs.ECS, space *resolv.Space, object *resolv.Object) *donburi.Entry {
	wall := archetypes.Wall.Spawn(e)
	object.Data = wall
	components.Object.SetValue(wall, components.ObjectData{Object: object})
	return wall
}

// CreateRamp spawns a sloped collision surface.
func CreateRamp(e *ecs.ECS, space *resolv.Space, object *resolv.Object) *donburi.Entry {
	ramp := archetypes.Ramp.Spawn(e)
	object.Data = ramp
	components.Object.SetValue(ramp, components.ObjectData{Object: object})
	return ramp
}

// CreateCamera spawns the orbit camera tracking the named target.
func CreateCamera(e *ecs.ECS, targetName string) *donburi.Entry {
	camera := archetypes.Camera.Spawn(e)
	components.Camera.SetValue(camera, components.NewCameraData(*cfg.Camera, targetName))
	return camera
}

// CreateLevel spawns the entity holding the loaded level data.
func CreateLevel(e *ecs.ECS, level *levels.Level) *donburi.Entry {
	entry := archetypes.Level.Spawn(e)
	components.Level.SetValue(entry, components.LevelData{CurrentLevel: level})
	return entry
}

// CreateSpace builds the collision space for a level, populates it with
// the level geometry and spawns the entity holding it. Solids and ramps
// also get their own entities so systems can iterate them.
func CreateSpace(e *ecs.ECS, level *levels.Level) (*donburi.Entry, *resolv.Space) {
	space := levels.BuildSpace(level)

	for _, object := range space.Objects() {
		if object.HasTags(tags.ResolvRamp) {
			CreateRamp(e, space, object)
		} else {
			CreateWall(e, space, object)
		}
	}

	entry := archetypes.Space.Spawn(e)
	components.Space.SetValue(entry, components.SpaceData{Space: space})
	return entry, space
}
