package systems

import (
	"encoding/json"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/strider/components"
	cfg "github.com/automoto/strider/config"
)

// SavedSettings represents the control settings data stored on disk
type SavedSettings struct {
	RotationDegreesPerMickeyX float64 `json:"rotationDegreesPerMickeyX"`
	RotationDegreesPerMickeyY float64 `json:"rotationDegreesPerMickeyY"`
	WheelZoomSensitivity      float64 `json:"wheelZoomSensitivity"`
	InvertY                   bool    `json:"invertY"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "strider",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads saved control settings from disk. Returns nil when
// nothing has been saved yet.
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if data == nil {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves control settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return gdataManager.SaveItem("settings", data)
}

// UpdateSettingsHotkeys handles runtime control tweaks: F2 toggles
// inverted vertical camera rotation. Changes apply to live cameras and
// persist across runs.
func UpdateSettingsHotkeys(e *ecs.ECS) {
	if !inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		return
	}

	cfg.Camera.InvertY = !cfg.Camera.InvertY
	components.Camera.Each(e.World, func(entry *donburi.Entry) {
		components.Camera.Get(entry).InvertY = cfg.Camera.InvertY
	})

	if err := SaveSettings(&SavedSettings{
		RotationDegreesPerMickeyX: cfg.Camera.RotationDegreesPerMickeyX,
		RotationDegreesPerMickeyY: cfg.Camera.RotationDegreesPerMickeyY,
		WheelZoomSensitivity:      cfg.Camera.WheelZoomSensitivity,
		InvertY:                   cfg.Camera.InvertY,
	}); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
	}
}

// ApplySettings overlays saved settings onto the camera configuration.
func ApplySettings(s *SavedSettings, camera *cfg.CameraConfig) {
	if s == nil {
		return
	}
	camera.RotationDegreesPerMickeyX = s.RotationDegreesPerMickeyX
	camera.RotationDegreesPerMickeyY = s.RotationDegreesPerMickeyY
	camera.WheelZoomSensitivity = s.WheelZoomSensitivity
	camera.InvertY = s.InvertY
}
