package domain

const (
	// UnitFileName is the name of the per-unit configuration file.
	UnitFileName = "splice.yaml"

	// WorkFileName is the name of the workspace configuration file.
	WorkFileName = "splice.work.yaml"

	// ConfigVersion is the only supported configuration version.
	ConfigVersion = "1"

	// RootUnitPath is the path identifier of a unit living at the workspace root.
	RootUnitPath = "/"

	// PathSeparator separates segments of a unit path identifier.
	PathSeparator = "/"
)
