package discovery

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketvet.ai/cli/internal/core/domain"
	"marketvet.ai/cli/internal/infrastructure/config"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	cfg, err := config.Load()
	require.NoError(t, err)
	cfg.Root = t.TempDir()
	return cfg
}

func addPlugin(t *testing.T, cfg config.Config, name string, withManifest bool) {
	t.Helper()
	dir := filepath.Join(cfg.PluginsRoot(), name)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	if withManifest {
		manifest := cfg.ManifestFile(dir)
		require.NoError(t, os.MkdirAll(filepath.Dir(manifest), 0o755))
		require.NoError(t, os.WriteFile(manifest, []byte(`{"name":"`+name+`"}`), 0o644))
	}
}

func addSkill(t *testing.T, cfg config.Config, plugin, skill string, withDoc bool) {
	t.Helper()
	dir := filepath.Join(cfg.PluginsRoot(), plugin, cfg.SkillsDir, skill)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	if withDoc {
		require.NoError(t, os.WriteFile(filepath.Join(dir, cfg.SkillFile), []byte("---\nname: "+skill+"\n---\nbody\n"), 0o644))
	}
}

// TestScanner_Plugins tests manifest-gated plugin discovery with stable
// ordering
func TestScanner_Plugins(t *testing.T) {
	cfg := testConfig(t)
	addPlugin(t, cfg, "zeta", true)
	addPlugin(t, cfg, "alpha", true)
	addPlugin(t, cfg, "no-manifest", false)
	// a stray file in the plugins root is ignored
	require.NoError(t, os.WriteFile(filepath.Join(cfg.PluginsRoot(), "notes.txt"), []byte("x"), 0o644))

	plugins := NewScanner(cfg).Plugins()

	require.Len(t, plugins, 2)
	assert.Equal(t, "alpha", plugins[0].Name)
	assert.Equal(t, "zeta", plugins[1].Name)
	assert.Equal(t, filepath.Join(cfg.PluginsRoot(), "alpha"), plugins[0].Dir)
}

// TestScanner_Skills tests skill discovery across plugins, gated on the
// skill document
func TestScanner_Skills(t *testing.T) {
	cfg := testConfig(t)
	addPlugin(t, cfg, "beta", true)
	addPlugin(t, cfg, "alpha", false) // skills discovered even without a manifest
	addSkill(t, cfg, "beta", "writer", true)
	addSkill(t, cfg, "beta", "analyzer", true)
	addSkill(t, cfg, "alpha", "helper", true)
	addSkill(t, cfg, "beta", "empty", false)

	skills := NewScanner(cfg).Skills()

	require.Len(t, skills, 3)
	assert.Equal(t, domain.SkillUnit{Plugin: "alpha", Name: "helper", Dir: skills[0].Dir}, skills[0])
	assert.Equal(t, "analyzer", skills[1].Name)
	assert.Equal(t, "writer", skills[2].Name)
	assert.Equal(t, "alpha/helper", skills[0].Label())
}

// TestScanner_MissingRootYieldsEmpty tests the empty-tree behavior
func TestScanner_MissingRootYieldsEmpty(t *testing.T) {
	cfg := testConfig(t) // plugins dir never created

	scanner := NewScanner(cfg)
	assert.Empty(t, scanner.Plugins())
	assert.Empty(t, scanner.Skills())
}

// TestScanner_Idempotent tests that repeated queries over an unchanged
// tree return identical ordered results
func TestScanner_Idempotent(t *testing.T) {
	cfg := testConfig(t)
	for _, name := range []string{"c-plugin", "a-plugin", "b-plugin"} {
		addPlugin(t, cfg, name, true)
		addSkill(t, cfg, name, "skill-one", true)
		addSkill(t, cfg, name, "skill-two", true)
	}

	scanner := NewScanner(cfg)

	assert.Equal(t, scanner.Plugins(), scanner.Plugins())
	assert.Equal(t, scanner.Skills(), scanner.Skills())
}
