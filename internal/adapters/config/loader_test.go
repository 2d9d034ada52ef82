package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/splice/internal/adapters/config"
	"go.trai.ch/splice/internal/core/domain"
	"go.trai.ch/splice/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

const coreUnitFile = `
version: "1"
group: acme
workspace: {}
outputs:
  runtime:
    artifacts:
      - name: utils
`

const appUnitFile = `
version: "1"
group: acme
workspace:
  exportedConfigurations: [runtime]
outputs:
  runtime:
    dependencies:
      - "acme:utils:1.0"
      - group: acme
        name: io
        artifacts:
          - name: io
            classifier: sources
  testRuntime:
    dependencies:
      - "org.junit:junit:5.10@pom"
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func newLoader(t *testing.T) (*config.Loader, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	return config.NewLoader(logger), logger
}

func TestLoad_Workspace(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "splice.work.yaml"), `
version: "1"
mode: listener
units:
  - "libs/*"
  - "apps/*"
`)
	writeFile(t, filepath.Join(tmpDir, "libs", "core", "splice.yaml"), coreUnitFile)
	writeFile(t, filepath.Join(tmpDir, "apps", "app", "splice.yaml"), appUnitFile)

	loader, _ := newLoader(t)
	ws, err := loader.Load(filepath.Join(tmpDir, "apps", "app"))
	require.NoError(t, err)

	assert.Equal(t, tmpDir, ws.Root())
	assert.Equal(t, domain.ModeListener, ws.Mode())

	paths := make([]string, 0, ws.Len())
	for _, u := range ws.Units() {
		paths = append(paths, u.Path())
		assert.False(t, u.Evaluated())
	}
	assert.Equal(t, []string{"/libs/core", "/apps/app"}, paths, "declaration order follows the unit patterns")

	core, ok := ws.Unit("/libs/core")
	require.True(t, ok)
	assert.Equal(t, "acme", core.Group())
	assert.Equal(t, filepath.Join(tmpDir, "libs", "core"), core.Dir())
	decl := core.Declaration()
	require.NotNil(t, decl.Policy)
	assert.Nil(t, decl.Policy.ExportedConfigurations)
	require.Len(t, decl.Outputs, 1)
	assert.Equal(t, []domain.PublishedArtifact{{Name: "utils", Type: "jar", Extension: "jar"}}, decl.Outputs[0].Artifacts)

	app, ok := ws.Unit("/apps/app")
	require.True(t, ok)
	decl = app.Declaration()
	assert.Equal(t, []string{"runtime"}, decl.Policy.ExportedConfigurations)
	require.Len(t, decl.Outputs, 2)
	assert.Equal(t, "runtime", decl.Outputs[0].Name)
	assert.Equal(t, "testRuntime", decl.Outputs[1].Name)

	deps := decl.Outputs[0].Dependencies
	require.Len(t, deps, 2)
	assert.Equal(t, &domain.ExternalDependency{Group: "acme", Name: "utils", Version: "1.0"}, deps[0])
	assert.Equal(t, []domain.ArtifactSelector{{Name: "io", Type: "jar", Extension: "jar", Classifier: "sources"}}, deps[1].Artifacts)

	junit := decl.Outputs[1].Dependencies[0]
	assert.Equal(t, []domain.ArtifactSelector{{Name: "junit", Type: "pom", Extension: "pom"}}, junit.Artifacts)
}

func TestLoad_Standalone(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "splice.yaml"), coreUnitFile)

	loader, _ := newLoader(t)
	ws, err := loader.Load(tmpDir)
	require.NoError(t, err)

	require.Equal(t, 1, ws.Len())
	assert.Equal(t, "/", ws.Units()[0].Path())
	assert.Equal(t, domain.ModeStaged, ws.Mode())

	root, err := loader.DiscoverRoot(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, tmpDir, root)
}

func TestLoad_WorkfileWinsOverNearerUnitFile(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "splice.work.yaml"), "version: \"1\"\nunits: [\"core\"]\n")
	writeFile(t, filepath.Join(tmpDir, "core", "splice.yaml"), coreUnitFile)

	loader, _ := newLoader(t)
	root, err := loader.DiscoverRoot(filepath.Join(tmpDir, "core"))
	require.NoError(t, err)
	assert.Equal(t, tmpDir, root)
}

func TestLoad_MissingUnitFileIsSkipped(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "splice.work.yaml"), "version: \"1\"\nunits: [\"libs/*\"]\n")
	writeFile(t, filepath.Join(tmpDir, "libs", "core", "splice.yaml"), coreUnitFile)
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "libs", "docs"), 0o750))
	writeFile(t, filepath.Join(tmpDir, "libs", "README.md"), "not a unit")

	loader, logger := newLoader(t)
	logger.EXPECT().Warn("splice.yaml missing in /libs/docs, skipping")

	ws, err := loader.Load(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, 1, ws.Len())
}

func TestLoad_RootUnitInWorkspace(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "splice.work.yaml"), "version: \"1\"\nunits: [\".\", \"*\", \"core\"]\n")
	writeFile(t, filepath.Join(tmpDir, "splice.yaml"), "version: \"1\"\ngroup: acme\n")
	writeFile(t, filepath.Join(tmpDir, "core", "splice.yaml"), coreUnitFile)

	loader, _ := newLoader(t)
	ws, err := loader.Load(tmpDir)
	require.NoError(t, err)

	paths := make([]string, 0, ws.Len())
	for _, u := range ws.Units() {
		paths = append(paths, u.Path())
	}
	assert.Equal(t, []string{"/", "/core"}, paths)
}

func TestLoad_NotFound(t *testing.T) {
	loader, _ := newLoader(t)

	_, err := loader.Load(t.TempDir())

	require.Error(t, err)
	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T", err)
	assert.Equal(t, domain.ErrConfigNotFound.Error(), zErr.Error())
	assert.NotEmpty(t, zErr.Metadata()["cwd"])
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name     string
		workfile string
		unitFile string
		want     string
	}{
		{
			name:     "unsupported workfile version",
			workfile: "version: \"2\"\nunits: [\"core\"]\n",
			unitFile: coreUnitFile,
			want:     "unsupported config version",
		},
		{
			name:     "unsupported unit version",
			workfile: "version: \"1\"\nunits: [\"core\"]\n",
			unitFile: "version: \"3\"\n",
			want:     "unsupported config version",
		},
		{
			name:     "unknown mode",
			workfile: "version: \"1\"\nmode: eager\nunits: [\"core\"]\n",
			unitFile: coreUnitFile,
			want:     "invalid mode",
		},
		{
			name:     "malformed yaml",
			workfile: "version: \"1\"\nunits: [\"core\"]\n",
			unitFile: "outputs: [",
			want:     "failed to parse config file",
		},
		{
			name:     "artifact without name",
			workfile: "version: \"1\"\nunits: [\"core\"]\n",
			unitFile: "outputs:\n  runtime:\n    artifacts:\n      - type: jar\n",
			want:     "invalid artifact",
		},
		{
			name:     "selector without name",
			workfile: "version: \"1\"\nunits: [\"core\"]\n",
			unitFile: "outputs:\n  runtime:\n    dependencies:\n      - group: g\n        name: n\n        artifacts:\n          - type: jar\n",
			want:     "invalid artifact",
		},
		{
			name:     "dependency without group",
			workfile: "version: \"1\"\nunits: [\"core\"]\n",
			unitFile: "outputs:\n  runtime:\n    dependencies:\n      - name: n\n",
			want:     "invalid dependency",
		},
		{
			name:     "bad notation",
			workfile: "version: \"1\"\nunits: [\"core\"]\n",
			unitFile: "outputs:\n  runtime:\n    dependencies:\n      - \"just-a-name\"\n",
			want:     "invalid dependency notation",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			writeFile(t, filepath.Join(tmpDir, "splice.work.yaml"), tt.workfile)
			writeFile(t, filepath.Join(tmpDir, "core", "splice.yaml"), tt.unitFile)

			loader, _ := newLoader(t)
			_, err := loader.Load(tmpDir)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoad_ErrorMetadataNamesUnit(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "splice.work.yaml"), "version: \"1\"\nunits: [\"core\"]\n")
	writeFile(t, filepath.Join(tmpDir, "core", "splice.yaml"), "outputs:\n  api:\n    artifacts:\n      - {}\n")

	loader, _ := newLoader(t)
	_, err := loader.Load(tmpDir)

	require.Error(t, err)
	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T", err)
	assert.Equal(t, "/core", zErr.Metadata()["unit"])
	assert.Equal(t, "api", zErr.Metadata()["output"])
}

func TestLoad_ConfiguredRootAboveWorkfile(t *testing.T) {
	tmpDir := t.TempDir()
	buildDir := filepath.Join(tmpDir, "build")
	writeFile(t, filepath.Join(buildDir, "splice.work.yaml"), "version: \"1\"\nroot: \"..\"\nunits: [\"libs/*\"]\n")
	writeFile(t, filepath.Join(tmpDir, "libs", "core", "splice.yaml"), coreUnitFile)

	loader, _ := newLoader(t)
	ws, err := loader.Load(buildDir)
	require.NoError(t, err)

	assert.Equal(t, tmpDir, ws.Root())
	require.Equal(t, 1, ws.Len())
	assert.Equal(t, "/libs/core", ws.Units()[0].Path())

	root, err := loader.DiscoverRoot(buildDir)
	require.NoError(t, err)
	assert.Equal(t, buildDir, root)
}

func TestLoad_RelativeWorkingDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "splice.work.yaml"), "version: \"1\"\nunits: [\"core\"]\n")
	writeFile(t, filepath.Join(tmpDir, "core", "splice.yaml"), coreUnitFile)
	t.Chdir(filepath.Join(tmpDir, "core"))

	loader, _ := newLoader(t)
	root, err := loader.DiscoverRoot(".")
	require.NoError(t, err)
	assert.Equal(t, tmpDir, root)

	ws, err := loader.Load(".")
	require.NoError(t, err)
	assert.Equal(t, 1, ws.Len())
}
