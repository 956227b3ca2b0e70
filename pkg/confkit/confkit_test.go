package confkit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolvePath(t *testing.T) {
	require.Equal(t, filepath.Join("/etc/fintab", "fundamentals.yaml"),
		ResolvePath("/etc/fintab", "fundamentals.yaml"))
	require.Equal(t, "/abs/fundamentals.yaml", ResolvePath("/etc/fintab", "/abs/fundamentals.yaml"))

	t.Setenv("CONF_DIR", "nested")
	require.Equal(t, filepath.Join("/base", "nested", "f.yaml"),
		ResolvePath("/base", "$CONF_DIR/f.yaml"))
}

func TestBaseDir(t *testing.T) {
	require.Equal(t, "/etc/fintab", BaseDir("/etc/fintab/fintab.yaml"))
}

func TestLoadFile(t *testing.T) {
	type target struct {
		Name  string
		Count int `json:",default=3"`
	}

	path := filepath.Join(t.TempDir(), "target.yaml")
	require.NoError(t, os.WriteFile(path, []byte("Name: demo\n"), 0o644))

	cfg, err := LoadFile[target](path, false)
	require.NoError(t, err)
	require.Equal(t, "demo", cfg.Name)
	require.Equal(t, 3, cfg.Count)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile[struct{}](filepath.Join(t.TempDir(), "absent.yaml"), false)
	require.Error(t, err)
}

func TestSectionHydrate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "section.yaml")
	require.NoError(t, os.WriteFile(path, []byte("value: 42\n"), 0o644))

	type payload struct{ Value int }
	loader := func(p string) (*payload, error) {
		cfg, err := LoadFile[payload](p, false)
		return cfg, err
	}

	s := Section[payload]{File: "section.yaml"}
	require.NoError(t, s.Hydrate(dir, loader))
	require.NotNil(t, s.Value)
	require.Equal(t, 42, s.Value.Value)
	require.Equal(t, path, s.File)
}

func TestSectionHydrateEmptyFileNoop(t *testing.T) {
	s := Section[struct{}]{}
	require.NoError(t, s.Hydrate(t.TempDir(), func(string) (*struct{}, error) {
		t.Fatal("loader must not run for an empty section")
		return nil, nil
	}))
	require.Nil(t, s.Value)
}

func TestProjectRootFindsGoMod(t *testing.T) {
	root, err := ProjectRoot()
	require.NoError(t, err)
	require.True(t, fileExists(filepath.Join(root, "go.mod")) || fileExists(filepath.Join(root, ".git")),
		"expected a repository marker under %s", root)
}

func TestMustProjectPath(t *testing.T) {
	p := MustProjectPath("etc")
	require.True(t, filepath.IsAbs(p))
}
