package systems

import (
	"encoding/json"
	"log"

	cfg "github.com/dartedfa/SkiFree/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Fullscreen bool   `json:"fullscreen"`
	ScaleIndex int    `json:"scaleIndex"`
	Difficulty string `json:"difficulty"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "skifree",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk
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
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// ApplySavedSettings applies loaded settings at startup, before the first
// scene runs.
func ApplySavedSettings(saved *SavedSettings) {
	if saved == nil {
		return
	}

	if _, ok := cfg.Difficulties[saved.Difficulty]; ok {
		cfg.ActiveDifficulty = saved.Difficulty
	}

	ebiten.SetFullscreen(saved.Fullscreen)
	if !saved.Fullscreen && saved.ScaleIndex >= 0 && saved.ScaleIndex < len(cfg.SettingsMenu.WindowScales) {
		scale := cfg.SettingsMenu.WindowScales[saved.ScaleIndex].Factor
		ebiten.SetWindowSize(cfg.C.Width*scale, cfg.C.Height*scale)
	}
}
