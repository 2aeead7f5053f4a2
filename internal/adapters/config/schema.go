package config

// Manifest represents the structure of the handler.yaml file.
type Manifest struct {
	Base      string        `yaml:"base"`
	Emitter   EmitterDTO    `yaml:"emitter"`
	Listeners []ListenerDTO `yaml:"listeners"`
	Settings  SettingsDTO   `yaml:"settings"`
}

// EmitterDTO holds the construct-level listener defaults.
type EmitterDTO struct {
	UseOnceByDefault     bool `yaml:"useOnceByDefault"`
	BindThis             bool `yaml:"bindThis"`
	BindEmitterParameter bool `yaml:"bindEmitterParameter"`
}

// ListenerDTO represents a listener definition. Pointer flags distinguish
// an omitted option from an explicit false.
type ListenerDTO struct {
	ID                   string `yaml:"id"`
	Event                string `yaml:"event"`
	Module               string `yaml:"module"`
	Symbol               string `yaml:"symbol"`
	Once                 *bool  `yaml:"once"`
	BindThis             *bool  `yaml:"bindThis"`
	BindEmitterParameter *bool  `yaml:"bindEmitterParameter"`
}

// SettingsDTO selects the settings store.
type SettingsDTO struct {
	Driver   string         `yaml:"driver"`
	Path     string         `yaml:"path"`
	Defaults map[string]any `yaml:"defaults"`
}
