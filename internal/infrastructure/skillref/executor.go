// Package skillref runs the external reference-validator binary against
// skill directories. The binary is looked up on PATH, then in the
// fallback checkout's virtualenv, with one install attempt in between.
package skillref

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"marketvet.ai/cli/internal/core/ports"
	"marketvet.ai/cli/internal/infrastructure/config"
)

// Executor invokes the reference validator as a subprocess. It
// implements ports.ReferenceValidator.
type Executor struct {
	binary    string
	sourceDir string
	timeout   time.Duration

	once     sync.Once
	resolved string
	readyErr error
}

// NewExecutor creates an executor from the run configuration.
func NewExecutor(cfg config.Config) *Executor {
	return &Executor{
		binary:    cfg.RefValidatorBin,
		sourceDir: cfg.RefValidatorSource(),
		timeout:   cfg.RefTimeout,
	}
}

// Ready locates the validator binary, attempting a one-shot install
// from the fallback checkout when it is missing. The result is cached
// for the lifetime of the executor.
func (e *Executor) Ready(ctx context.Context) error {
	e.once.Do(func() {
		path, found := e.locate()
		if !found && e.tryInstall(ctx) {
			path, found = e.locate()
		}
		if !found {
			e.readyErr = fmt.Errorf("%w: %s not found on PATH or in %s; run: uv pip install -e %s",
				ports.ErrValidatorUnavailable, e.binary, e.sourceDir, e.sourceDir)
			return
		}
		e.resolved = path
	})
	return e.readyErr
}

// Validate runs "<binary> validate <skillDir>" and converts a non-zero
// exit into a ValidationFailure carrying the combined output.
func (e *Executor) Validate(ctx context.Context, skillDir string) error {
	if err := e.Ready(ctx); err != nil {
		return err
	}

	runCtx := ctx
	if e.timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(runCtx, e.resolved, "validate", skillDir)
	out, err := cmd.CombinedOutput()
	if err == nil {
		return nil
	}

	output := strings.TrimSpace(string(out))
	if output == "" {
		output = err.Error()
	}
	return &ports.ValidationFailure{Output: output}
}

// locate checks PATH first, then the fallback checkout's virtualenv.
func (e *Executor) locate() (string, bool) {
	if path, err := exec.LookPath(e.binary); err == nil {
		return path, true
	}
	venvBin := filepath.Join(e.sourceDir, ".venv", "bin", e.binary)
	if info, err := os.Stat(venvBin); err == nil && !info.IsDir() {
		return venvBin, true
	}
	return "", false
}

// tryInstall performs one editable install from the fallback checkout.
func (e *Executor) tryInstall(ctx context.Context) bool {
	info, err := os.Stat(e.sourceDir)
	if err != nil || !info.IsDir() {
		return false
	}
	cmd := exec.CommandContext(ctx, "uv", "pip", "install", "-e", e.sourceDir)
	return cmd.Run() == nil
}
