package main

import (
	"flag"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/automoto/strider/config"
	"github.com/automoto/strider/scenes"
	"github.com/automoto/strider/systems"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(levelPath string) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewWorldScene(g, levelPath)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Display.Width, config.C.Display.Height)
	return config.C.Display.Width, config.C.Display.Height
}

func main() {
	configPath := flag.String("config", "strider.yaml", "path to the YAML configuration overlay")
	levelPath := flag.String("level", "levels/arena.tmx", "embedded level to run")
	flag.Parse()

	if err := config.Load(*configPath); err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ebiten.SetWindowSize(config.C.Display.Width, config.C.Display.Height)
	ebiten.SetWindowTitle(config.C.Display.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySettings(saved, config.Camera)
	}

	if err := ebiten.RunGame(NewGame(*levelPath)); err != nil {
		log.Fatal(err)
	}
}
