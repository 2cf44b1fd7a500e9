package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/strider/assets"
	cfg "github.com/automoto/strider/config"
	"github.com/automoto/strider/levels"
	"github.com/automoto/strider/systems"
	"github.com/automoto/strider/systems/factory"
)

// SceneChanger switches the running game to another scene.
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// WorldScene runs the character movement sandbox: one level, one
// controllable character, one orbit camera.
type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	levelPath    string
	once         sync.Once
}

// NewWorldScene creates the world scene for the given embedded level.
func NewWorldScene(sc SceneChanger, levelPath string) *WorldScene {
	return &WorldScene{sceneChanger: sc, levelPath: levelPath}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear to prevent flashes from the OS window background.
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	level, err := levels.Load(assets.LevelFS(), ws.levelPath)
	if err != nil {
		panic("failed to load level: " + err.Error())
	}

	e := ecs.NewECS(donburi.NewWorld())

	// Input feeds characters, characters queue forces, physics integrates
	// and resolves, the camera and animators read the results.
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateCharacters)
	e.AddSystem(systems.UpdateActorPhysics)
	e.AddSystem(systems.UpdateCameras)
	e.AddSystem(systems.UpdateAnimators)
	e.AddSystem(systems.UpdateSettingsHotkeys)

	e.AddRenderer(cfg.Default, systems.DrawWorld)
	e.AddRenderer(cfg.Default, systems.DrawHUD)

	ws.ecs = e

	factory.CreateLevel(e, level)
	_, space := factory.CreateSpace(e, level)

	if len(level.SpawnPoints) == 0 {
		panic("no player spawn points defined in level " + ws.levelPath)
	}
	spawn := level.SpawnPoints[0]
	factory.CreatePlayer(e, space, spawn.X, spawn.Y)

	factory.CreateCamera(e, "Player")
}
