package domain

import "go.trai.ch/zerr"

var (
	// ErrConfigNotFound is returned when neither a workfile nor a unit file can be found.
	ErrConfigNotFound = zerr.New("could not find splice.work.yaml or splice.yaml")

	// ErrConfigReadFailed is returned when a config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when a config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrUnsupportedVersion is returned when a config file declares an unknown version.
	ErrUnsupportedVersion = zerr.New("unsupported config version, expected \"1\"")

	// ErrDuplicateUnit is returned when two units share the same path.
	ErrDuplicateUnit = zerr.New("duplicate build unit")

	// ErrDuplicateOutputGroup is returned when a unit declares the same output group twice.
	ErrDuplicateOutputGroup = zerr.New("duplicate output group")

	// ErrInvalidArtifact is returned when a published artifact or selector has no name.
	ErrInvalidArtifact = zerr.New("invalid artifact, name is required")

	// ErrInvalidDependency is returned when a dependency is missing its group or name.
	ErrInvalidDependency = zerr.New("invalid dependency, group and name are required")

	// ErrInvalidDependencyNotation is returned when a dependency string cannot be parsed.
	ErrInvalidDependencyNotation = zerr.New("invalid dependency notation, expected group:name[:version[:classifier]][@extension]")

	// ErrUnitNotFound is returned when a referenced build unit does not exist.
	ErrUnitNotFound = zerr.New("build unit not found")

	// ErrOutputGroupNotFound is returned when a referenced output group does not exist.
	ErrOutputGroupNotFound = zerr.New("output group not found")

	// ErrUnitAlreadyEvaluated is returned when a unit is evaluated a second time.
	ErrUnitAlreadyEvaluated = zerr.New("build unit already evaluated")

	// ErrLocalReferenceFailed is returned when the target of a selected exporting entry
	// vanished between index build and substitution.
	ErrLocalReferenceFailed = zerr.New("failed to create local reference for exporting entry")

	// ErrEvaluationFailed is returned when a build unit cannot be evaluated.
	ErrEvaluationFailed = zerr.New("failed to evaluate build unit")

	// ErrResolutionFailed is returned when a resolution run is aborted.
	ErrResolutionFailed = zerr.New("dependency resolution failed")

	// ErrInvalidMode is returned when an unknown lifecycle mode is requested.
	ErrInvalidMode = zerr.New("invalid mode, expected 'staged' or 'listener'")

	// ErrInvalidFormat is returned when an unknown report format is requested.
	ErrInvalidFormat = zerr.New("invalid format, expected 'text', 'json' or 'yaml'")

	// ErrWatchFailed is returned when the config watcher cannot be started.
	ErrWatchFailed = zerr.New("failed to watch workspace")
)
