package domain

import "go.trai.ch/zerr"

var (
	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidConfig is returned when a config value is out of range or malformed.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrProjectNotFound is returned when no project root can be found from the working directory.
	ErrProjectNotFound = zerr.New("could not find libsync.yaml or a packrat directory")

	// ErrFailedToGetRoot is returned when the project root path cannot be determined.
	ErrFailedToGetRoot = zerr.New("failed to get absolute path of project root")

	// ErrFileReadFailed is returned when a tracked artifact cannot be read.
	ErrFileReadFailed = zerr.New("failed to read file")

	// ErrStoreOpenFailed is returned when the state store cannot be opened.
	ErrStoreOpenFailed = zerr.New("failed to open state store")

	// ErrStoreCreateFailed is returned when the state store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create state store directory")

	// ErrStoreReadFailed is returned when a value cannot be read from the state store.
	ErrStoreReadFailed = zerr.New("failed to read project state")

	// ErrStoreWriteFailed is returned when a value cannot be written to the state store.
	ErrStoreWriteFailed = zerr.New("failed to write project state")

	// ErrStoreUnmarshalFailed is returned when persisted state cannot be decoded.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal project state")

	// ErrStoreMarshalFailed is returned when state cannot be encoded.
	ErrStoreMarshalFailed = zerr.New("failed to marshal project state")

	// ErrUnknownStoreBackend is returned when the configured state backend is not supported.
	ErrUnknownStoreBackend = zerr.New("unknown state store backend, expected 'bolt' or 'file'")

	// ErrEmptyCommand is returned when a configured command has no arguments.
	ErrEmptyCommand = zerr.New("command is empty")

	// ErrCommandStartFailed is returned when an external command cannot be started.
	ErrCommandStartFailed = zerr.New("failed to start command")

	// ErrCommandFailed is returned when an external command exits with a non-zero status.
	ErrCommandFailed = zerr.New("command failed")

	// ErrRestoreActionsParseFailed is returned when pending restore actions cannot be decoded.
	ErrRestoreActionsParseFailed = zerr.New("failed to parse pending restore actions")

	// ErrNotPackified is returned when an operation requires a packified project.
	ErrNotPackified = zerr.New("project does not use packrat")

	// ErrPackageUnavailable is returned when the package manager is not installed.
	ErrPackageUnavailable = zerr.New("required packrat version is not installed")

	// ErrWatcherStartFailed is returned when the file watcher cannot be started.
	ErrWatcherStartFailed = zerr.New("failed to start file watcher")

	// ErrBootstrapFailed is returned when bootstrapping a project fails.
	ErrBootstrapFailed = zerr.New("failed to bootstrap project")

	// ErrInstallFailed is returned when installing the package manager fails.
	ErrInstallFailed = zerr.New("failed to install packrat")
)
