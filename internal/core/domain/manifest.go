package domain

// ManifestFileName is the default manifest looked up in the working directory.
const ManifestFileName = "handler.yaml"

// Settings drivers.
const (
	DriverMemory = "memory"
	DriverFile   = "file"
	DriverSQLite = "sqlite"
)

// DefaultListenerSymbol is the exported function looked up when a listener
// does not name one.
const DefaultListenerSymbol = "Listener"

// Manifest is the validated description of a handler setup.
type Manifest struct {
	// Path is the absolute path of the manifest file.
	Path string
	// Dir is the directory containing the manifest.
	Dir string
	// Base is the base URL relative module specifiers resolve against.
	Base      string
	Emitter   EmitterDefaults
	Listeners []ListenerSpec
	Settings  SettingsSpec
}

// EmitterDefaults are the construct-level listener defaults.
type EmitterDefaults struct {
	UseOnceByDefault     bool
	BindThis             bool
	BindEmitterParameter bool
}

// ListenerSpec describes one listener to load from a module.
type ListenerSpec struct {
	// ID is empty when the manifest leaves it to the id generator.
	ID     string
	Event  string
	Module string
	Symbol string

	Once                 TriState
	BindThis             TriState
	BindEmitterParameter TriState
}

// SettingsSpec selects and configures the settings store.
type SettingsSpec struct {
	Driver   string
	Path     string
	Defaults map[string]any
}
