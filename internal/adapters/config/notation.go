package config

import (
	"strings"

	"go.trai.ch/splice/internal/core/domain"
	"go.trai.ch/zerr"
)

// ParseNotation parses a dependency written as group:name[:version[:classifier]][@extension].
//
// An extension selects one artifact named after the dependency with type and extension set
// to it. A classifier without an extension selects the classified jar.
func ParseNotation(s string) (DependencyDTO, error) {
	notation := strings.TrimSpace(s)
	coords, ext, hasExt := strings.Cut(notation, "@")
	if hasExt && (ext == "" || strings.ContainsAny(ext, "@:")) {
		return DependencyDTO{}, zerr.With(domain.ErrInvalidDependencyNotation, "notation", s)
	}

	parts := strings.Split(coords, ":")
	if len(parts) < 2 || len(parts) > 4 || parts[0] == "" || parts[1] == "" {
		return DependencyDTO{}, zerr.With(domain.ErrInvalidDependencyNotation, "notation", s)
	}

	dep := DependencyDTO{Group: parts[0], Name: parts[1]}
	if len(parts) > 2 {
		dep.Version = parts[2]
	}
	var classifier string
	if len(parts) > 3 {
		classifier = parts[3]
	}

	switch {
	case hasExt:
		dep.Artifacts = []ArtifactDTO{{Name: dep.Name, Type: ext, Extension: ext, Classifier: classifier}}
	case classifier != "":
		dep.Artifacts = []ArtifactDTO{{Name: dep.Name, Classifier: classifier}}
	}
	return dep, nil
}
