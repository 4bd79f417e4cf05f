package config

// WindowScale represents a window scale option
type WindowScale struct {
	Factor int
	Label  string
}

// SettingsMenuConfig contains settings screen configuration
type SettingsMenuConfig struct {
	WindowScales      []WindowScale
	DefaultScaleIndex int
	Difficulties      []string
}

// SettingsMenu is the global settings menu configuration
var SettingsMenu SettingsMenuConfig

func init() {
	SettingsMenu = SettingsMenuConfig{
		WindowScales: []WindowScale{
			{Factor: 1, Label: "640 x 480"},
			{Factor: 2, Label: "1280 x 960"},
			{Factor: 3, Label: "1920 x 1440"},
		},
		DefaultScaleIndex: 1,
		Difficulties:      DifficultyNames,
	}
}
