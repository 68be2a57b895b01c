package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketvet.ai/cli/internal/infrastructure/config"
)

// passingRefValidator approves every skill bundle.
type passingRefValidator struct{}

func (passingRefValidator) Ready(ctx context.Context) error                { return nil }
func (passingRefValidator) Validate(ctx context.Context, dir string) error { return nil }

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func newTestContainer(t *testing.T, out *bytes.Buffer) *Container {
	t.Helper()
	cfg, err := config.Load()
	require.NoError(t, err)
	return &Container{Config: cfg, RefValidator: passingRefValidator{}, Out: out}
}

// TestValidateCommand_CleanTreeExitsZero tests a fully consistent tree
// through the cobra surface
func TestValidateCommand_CleanTreeExitsZero(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		".claude-plugin/marketplace.json": `{"name":"m","owner":"o","metadata":{"version":"1.0.0","description":"d"},"plugins":[{"name":"foo","source":"plugins/foo","version":"1.0.0"}]}`,
		"plugins/foo/.claude-plugin/plugin.json": `{"name":"foo","version":"1.0.0","description":"Validates marketplace plugin trees before publication.","author":"A"}`,
	})

	var out bytes.Buffer
	cmd := NewRootCommand(newTestContainer(t, &out))
	cmd.SetArgs([]string{"validate", "--root", root, "--no-color"})

	err := cmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Layer 1: Skill bundles")
	assert.Contains(t, out.String(), "Results: ")
	assert.Contains(t, out.String(), "0 failed")
}

// TestValidateCommand_FailureMapsToSentinel tests the exit-1 path and
// that the full report is still printed
func TestValidateCommand_FailureMapsToSentinel(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		// registry missing entirely; plugin manifest is valid
		"plugins/foo/.claude-plugin/plugin.json": `{"name":"foo","version":"1.0.0","description":"Validates marketplace plugin trees before publication.","author":"A"}`,
	})

	var out bytes.Buffer
	cmd := NewRootCommand(newTestContainer(t, &out))
	cmd.SetArgs([]string{"validate", "--root", root, "--no-color"})

	err := cmd.Execute()

	assert.ErrorIs(t, err, ErrValidationFailed)
	assert.Contains(t, out.String(), "FAIL")
	assert.Contains(t, out.String(), "Failures:")
	assert.Contains(t, out.String(), "marketplace.json")
}

// TestReportRenderer_PlainOutput tests the structured report layout
func TestReportRenderer_PlainOutput(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		".claude-plugin/marketplace.json": `{"name":"m","owner":"o","metadata":{"version":"1.0.0","description":"d"},"plugins":[]}`,
		"plugins/.keep":                   "",
	})

	var out bytes.Buffer
	cmd := NewRootCommand(newTestContainer(t, &out))
	cmd.SetArgs([]string{"validate", "--root", root, "--no-color"})
	require.NoError(t, cmd.Execute())

	report := out.String()
	assert.Contains(t, report, "run ")
	assert.Contains(t, report, "============")
	assert.Contains(t, report, "  PASS     valid JSON")
	assert.Contains(t, report, "Results: 7 passed, 0 failed, 0 warning(s)")
}
