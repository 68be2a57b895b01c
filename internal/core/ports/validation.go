// Package ports defines the interfaces the validation layers depend
// on, keeping the layer code independent of filesystem and subprocess
// concerns.
package ports

import (
	"context"
	"errors"

	"marketvet.ai/cli/internal/core/domain"
)

// ErrValidatorUnavailable indicates the external reference validator
// could not be located or installed. Layer 1 reports this as a single
// hard failure; it must never read as "all skills valid".
var ErrValidatorUnavailable = errors.New("reference validator unavailable")

// ValidationFailure is returned by a ReferenceValidator when a skill is
// rejected; Output carries the tool's combined stdout/stderr verbatim.
type ValidationFailure struct {
	Output string
}

func (e *ValidationFailure) Error() string {
	if e.Output == "" {
		return "skill failed reference validation"
	}
	return e.Output
}

// ReferenceValidator checks a skill directory against the reference
// skill specification.
type ReferenceValidator interface {
	// Ready locates (or installs) the backing tool. A non-nil error
	// wraps ErrValidatorUnavailable and carries remediation hints.
	Ready(ctx context.Context) error

	// Validate checks one skill directory. nil means valid; a
	// *ValidationFailure carries the tool's diagnostics.
	Validate(ctx context.Context, skillDir string) error
}

// UnitScanner enumerates the validatable units of a marketplace tree.
// Both queries are side-effect-free and return stable sorted results.
type UnitScanner interface {
	Plugins() []domain.PluginUnit
	Skills() []domain.SkillUnit
}
