package domain

// UnitDeclaration is the declared content of a build unit, as read from its unit file.
// Evaluation turns it into output groups, published artifacts and dependencies.
type UnitDeclaration struct {
	Group   string
	Policy  *PolicyDeclaration
	Outputs []OutputDeclaration
}

// PolicyDeclaration is the declared export policy of a unit.
// A nil ExportedConfigurations keeps the policy defaults.
type PolicyDeclaration struct {
	ExportedConfigurations []string
}

// OutputDeclaration is the declared content of one output group.
type OutputDeclaration struct {
	Name         string
	Artifacts    []PublishedArtifact
	Dependencies []*ExternalDependency
}
