package domain

import "go.trai.ch/zerr"

var (
	// ErrConfiguration is returned when a required construction input is missing.
	ErrConfiguration = zerr.New("configuration error")

	// ErrValidation is returned when a value passed to an operation is rejected.
	ErrValidation = zerr.New("validation error")

	// ErrModuleLoad is returned when the module-loading primitive fails to load a module.
	ErrModuleLoad = zerr.New("module load error")

	// ErrMissingEmitter is returned when a listener construct is created without an emitter.
	ErrMissingEmitter = zerr.Wrap(ErrConfiguration, "an event emitter must be supplied")

	// ErrMissingEvent is returned when a listener block is created without an event name.
	ErrMissingEvent = zerr.Wrap(ErrConfiguration, "event must be a non-empty string")

	// ErrMissingListener is returned when a listener block is created without a listener function.
	ErrMissingListener = zerr.Wrap(ErrConfiguration, "a listener function must be supplied")

	// ErrMissingBase is returned when a relative module is resolved without any base.
	ErrMissingBase = zerr.Wrap(ErrConfiguration, "cannot load relative modules without a base")

	// ErrMissingSpecifier is returned when a module load is requested without a specifier.
	ErrMissingSpecifier = zerr.Wrap(ErrConfiguration, "a module specifier is required")

	// ErrInvalidBase is returned when a base cannot be parsed as a URL.
	ErrInvalidBase = zerr.Wrap(ErrConfiguration, "invalid module base")

	// ErrMissingAdapter is returned when a store is created without a key/value adapter.
	ErrMissingAdapter = zerr.Wrap(ErrConfiguration, "a key/value adapter must be supplied")

	// ErrFalsyValue is returned when a nil value is passed to a store set.
	ErrFalsyValue = zerr.Wrap(ErrValidation, "value cannot be falsy")

	// ErrUnsupportedScheme is returned when a module specifier uses a scheme the loader cannot read.
	ErrUnsupportedScheme = zerr.Wrap(ErrModuleLoad, "unsupported module specifier scheme")

	// ErrSymbolNotFound is returned when a module does not export a requested symbol.
	ErrSymbolNotFound = zerr.New("symbol not found in module")

	// ErrSymbolType is returned when an exported symbol has an unexpected type.
	ErrSymbolType = zerr.New("symbol has unexpected type")

	// ErrStoreReadFailed is returned when a key/value adapter cannot read its backing storage.
	ErrStoreReadFailed = zerr.New("failed to read key/value store")

	// ErrStoreWriteFailed is returned when a key/value adapter cannot write its backing storage.
	ErrStoreWriteFailed = zerr.New("failed to write key/value store")

	// ErrStoreMarshalFailed is returned when stored data cannot be encoded.
	ErrStoreMarshalFailed = zerr.New("failed to marshal stored data")

	// ErrStoreUnmarshalFailed is returned when stored data cannot be decoded.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal stored data")

	// ErrConfigReadFailed is returned when the manifest cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigNotFound is returned when no manifest exists in a directory or its parents.
	ErrConfigNotFound = zerr.New("could not find " + ManifestFileName)

	// ErrConfigParseFailed is returned when the manifest cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrUnknownDriver is returned when the manifest names an unknown settings driver.
	ErrUnknownDriver = zerr.New("unknown settings driver")

	// ErrInvalidManifest is returned when the manifest parses but describes an unusable setup.
	ErrInvalidManifest = zerr.Wrap(ErrConfiguration, "invalid manifest")

	// ErrInvalidAssignment is returned when a settings argument is not a key=value pair.
	ErrInvalidAssignment = zerr.Wrap(ErrValidation, "expected key=value")

	// ErrUnknownEvent is returned when an emit request names an event with no listeners.
	ErrUnknownEvent = zerr.New("no listeners for event")
)
