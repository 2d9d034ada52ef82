// Package config provides the configuration loader for splice.
package config

import (
	"fmt"
	"path/filepath"
	"slices"

	"go.trai.ch/splice/internal/core/domain"
	"go.trai.ch/splice/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using YAML files.
type Loader struct {
	Logger ports.Logger
	FS     FileSystem
}

// NewLoader creates a new Loader reading from the OS filesystem.
func NewLoader(logger ports.Logger) *Loader {
	return NewLoaderWithFS(logger, NewOSFS())
}

// NewLoaderWithFS creates a new Loader reading from fsys.
func NewLoaderWithFS(logger ports.Logger, fsys FileSystem) *Loader {
	return &Loader{Logger: logger, FS: fsys}
}

// Mode represents the configuration mode of splice.
type Mode string

const (
	// ModeWorkspace indicates that splice has a workfile.
	ModeWorkspace Mode = "workspace"
	// ModeStandalone indicates that splice has only one unit file.
	ModeStandalone Mode = "standalone"
)

// Load finds the configuration reachable from cwd and returns the declared workspace.
// No unit is evaluated.
func (l *Loader) Load(cwd string) (*domain.Workspace, error) {
	configPath, mode, err := l.findConfiguration(cwd)
	if err != nil {
		return nil, err
	}

	switch mode {
	case ModeStandalone:
		return l.loadStandalone(configPath)
	case ModeWorkspace:
		return l.loadWorkfile(configPath)
	default:
		return nil, zerr.With(domain.ErrConfigNotFound, "mode", mode)
	}
}

// DiscoverRoot walks up from cwd and returns the directory holding the configuration.
func (l *Loader) DiscoverRoot(cwd string) (string, error) {
	configPath, _, err := l.findConfiguration(cwd)
	if err != nil {
		return "", err
	}
	return filepath.Dir(configPath), nil
}

// findConfiguration prefers the nearest workfile. A unit file is only used when no workfile
// exists in any parent directory.
func (l *Loader) findConfiguration(cwd string) (string, Mode, error) {
	currentDir, err := filepath.Abs(cwd)
	if err != nil {
		return "", "", zerr.With(zerr.Wrap(err, "failed to resolve working directory"), "cwd", cwd)
	}
	var standaloneCandidate string

	for {
		workfilePath := filepath.Join(currentDir, domain.WorkFileName)
		if _, err := l.FS.Stat(workfilePath); err == nil {
			return workfilePath, ModeWorkspace, nil
		}

		if standaloneCandidate == "" {
			unitFilePath := filepath.Join(currentDir, domain.UnitFileName)
			if _, err := l.FS.Stat(unitFilePath); err == nil {
				standaloneCandidate = unitFilePath
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	if standaloneCandidate != "" {
		return standaloneCandidate, ModeStandalone, nil
	}

	return "", "", zerr.With(domain.ErrConfigNotFound, "cwd", cwd)
}

func (l *Loader) loadStandalone(configPath string) (*domain.Workspace, error) {
	root := filepath.Dir(configPath)
	ws := domain.NewWorkspace(root)

	unit, err := l.loadUnit(root, root)
	if err != nil {
		return nil, err
	}
	if err := ws.AddUnit(unit); err != nil {
		return nil, err
	}
	return ws, nil
}

func (l *Loader) loadWorkfile(configPath string) (*domain.Workspace, error) {
	var workfile Workfile
	if err := l.readAndUnmarshalYAML(configPath, &workfile); err != nil {
		return nil, err
	}
	if err := validateVersion(workfile.Version, configPath); err != nil {
		return nil, err
	}

	mode, err := domain.ParseMode(workfile.Mode)
	if err != nil {
		return nil, zerr.With(err, "file", configPath)
	}

	root := resolveRoot(configPath, workfile.Root)
	ws := domain.NewWorkspace(root)
	ws.SetMode(mode)

	unitDirs, err := l.resolveUnitDirs(root, workfile.Units)
	if err != nil {
		return nil, err
	}

	for _, dir := range unitDirs {
		unitFilePath := filepath.Join(dir, domain.UnitFileName)
		if _, statErr := l.FS.Stat(unitFilePath); statErr != nil {
			l.Logger.Warn(fmt.Sprintf("%s missing in %s, skipping", domain.UnitFileName, unitPath(root, dir)))
			continue
		}

		unit, err := l.loadUnit(root, dir)
		if err != nil {
			return nil, err
		}
		if err := ws.AddUnit(unit); err != nil {
			return nil, err
		}
	}

	return ws, nil
}

// resolveUnitDirs expands the unit patterns in declaration order. Matches of one pattern are
// sorted, and a directory matched twice keeps its first position.
func (l *Loader) resolveUnitDirs(root string, patterns []string) ([]string, error) {
	seen := make(map[string]struct{})
	var dirs []string

	for _, pattern := range patterns {
		absPattern := filepath.Join(root, pattern)

		matches, err := l.FS.Glob(absPattern)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "glob pattern failed"), "pattern", pattern)
		}
		slices.Sort(matches)

		for _, match := range matches {
			if _, ok := seen[match]; ok {
				continue
			}
			isDir, err := l.FS.IsDir(match)
			if err != nil || !isDir {
				continue
			}
			seen[match] = struct{}{}
			dirs = append(dirs, match)
		}
	}

	return dirs, nil
}

func (l *Loader) loadUnit(root, dir string) (*domain.BuildUnit, error) {
	path := unitPath(root, dir)
	configPath := filepath.Join(dir, domain.UnitFileName)

	var unitFile UnitFile
	if err := l.readAndUnmarshalYAML(configPath, &unitFile); err != nil {
		return nil, zerr.With(err, "unit", path)
	}
	if err := validateVersion(unitFile.Version, configPath); err != nil {
		return nil, err
	}

	decl, err := buildDeclaration(&unitFile)
	if err != nil {
		return nil, zerr.With(err, "unit", path)
	}
	return domain.NewBuildUnit(path, dir, decl), nil
}

func buildDeclaration(unitFile *UnitFile) (*domain.UnitDeclaration, error) {
	decl := &domain.UnitDeclaration{Group: unitFile.Group}
	if unitFile.Workspace != nil {
		decl.Policy = &domain.PolicyDeclaration{
			ExportedConfigurations: unitFile.Workspace.ExportedConfigurations,
		}
	}

	names := make([]string, 0, len(unitFile.Outputs))
	for name := range unitFile.Outputs {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		out, err := buildOutput(name, unitFile.Outputs[name])
		if err != nil {
			return nil, zerr.With(err, "output", name)
		}
		decl.Outputs = append(decl.Outputs, out)
	}
	return decl, nil
}

func buildOutput(name string, dto *OutputDTO) (domain.OutputDeclaration, error) {
	out := domain.OutputDeclaration{Name: name}
	if dto == nil {
		return out, nil
	}

	for _, a := range dto.Artifacts {
		if a.Name == "" {
			return out, domain.ErrInvalidArtifact
		}
		out.Artifacts = append(out.Artifacts, a.toPublished())
	}

	for _, d := range dto.Dependencies {
		if d.Group == "" || d.Name == "" {
			return out, zerr.With(domain.ErrInvalidDependency, "dependency", d.Group+":"+d.Name)
		}
		dep := &domain.ExternalDependency{Group: d.Group, Name: d.Name, Version: d.Version}
		for _, a := range d.Artifacts {
			if a.Name == "" {
				return out, zerr.With(domain.ErrInvalidArtifact, "dependency", d.Group+":"+d.Name)
			}
			dep.Artifacts = append(dep.Artifacts, a.toSelector())
		}
		out.Dependencies = append(out.Dependencies, dep)
	}
	return out, nil
}

// unitPath returns the path identifier of the unit in dir: "/" followed by the slash separated
// directory relative to root.
func unitPath(root, dir string) string {
	rel, err := filepath.Rel(root, dir)
	if err != nil || rel == "." {
		return domain.RootUnitPath
	}
	return domain.PathSeparator + filepath.ToSlash(rel)
}

func validateVersion(version, configPath string) error {
	if version != "" && version != domain.ConfigVersion {
		err := zerr.With(domain.ErrUnsupportedVersion, "version", version)
		return zerr.With(err, "file", configPath)
	}
	return nil
}

func resolveRoot(configPath, configuredRoot string) string {
	configDir := filepath.Dir(configPath)
	if configuredRoot == "" {
		return filepath.Clean(configDir)
	}
	if filepath.IsAbs(configuredRoot) {
		return filepath.Clean(configuredRoot)
	}
	return filepath.Clean(filepath.Join(configDir, configuredRoot))
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func (l *Loader) readAndUnmarshalYAML(configPath string, target any) error {
	configFile, err := l.FS.ReadFile(configPath)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "file", configPath)
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.With(zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error()), "file", configPath)
	}

	return nil
}
