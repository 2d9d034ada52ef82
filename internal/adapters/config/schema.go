package config

import (
	"go.trai.ch/splice/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Workfile represents the structure of the splice.work.yaml configuration file.
type Workfile struct {
	Version string   `yaml:"version"`
	Root    string   `yaml:"root"`
	Mode    string   `yaml:"mode"`
	Units   []string `yaml:"units"`
}

// UnitFile represents the structure of the splice.yaml configuration file.
type UnitFile struct {
	Version   string                `yaml:"version"`
	Group     string                `yaml:"group"`
	Workspace *PolicyDTO            `yaml:"workspace"`
	Outputs   map[string]*OutputDTO `yaml:"outputs"`
}

// PolicyDTO represents the export policy of a unit. A nil ExportedConfigurations keeps the defaults.
type PolicyDTO struct {
	ExportedConfigurations []string `yaml:"exportedConfigurations"`
}

// OutputDTO represents one output group of a unit.
type OutputDTO struct {
	Artifacts    []ArtifactDTO   `yaml:"artifacts"`
	Dependencies []DependencyDTO `yaml:"dependencies"`
}

// ArtifactDTO represents a published artifact or an artifact selector.
type ArtifactDTO struct {
	Name       string `yaml:"name"`
	Type       string `yaml:"type"`
	Extension  string `yaml:"extension"`
	Classifier string `yaml:"classifier"`
}

// DependencyDTO represents an external dependency, written either as a notation string
// or as a mapping.
type DependencyDTO struct {
	Group     string        `yaml:"group"`
	Name      string        `yaml:"name"`
	Version   string        `yaml:"version"`
	Artifacts []ArtifactDTO `yaml:"artifacts"`
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *DependencyDTO) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		parsed, err := ParseNotation(node.Value)
		if err != nil {
			return zerr.With(err, "line", node.Line)
		}
		*d = parsed
		return nil
	}

	type plain DependencyDTO
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*d = DependencyDTO(p)
	return nil
}

func (a ArtifactDTO) toPublished() domain.PublishedArtifact {
	return domain.PublishedArtifact{
		Name:       a.Name,
		Type:       defaultString(a.Type, domain.DefaultArtifactType),
		Extension:  defaultString(a.Extension, domain.DefaultArtifactExtension),
		Classifier: a.Classifier,
	}
}

func (a ArtifactDTO) toSelector() domain.ArtifactSelector {
	return domain.ArtifactSelector{
		Name:       a.Name,
		Type:       defaultString(a.Type, domain.DefaultArtifactType),
		Extension:  defaultString(a.Extension, domain.DefaultArtifactExtension),
		Classifier: a.Classifier,
	}
}

func defaultString(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
