// Package services orchestrates the five-layer validation pipeline over
// a discovered marketplace tree.
package services

import (
	"context"

	"marketvet.ai/cli/internal/core/ports"
	"marketvet.ai/cli/internal/core/result"
	"marketvet.ai/cli/internal/infrastructure/config"
)

// ValidationService runs all validation layers and accumulates their
// outcomes in a single append-only result log. Layers never return
// errors; every problem, including an unreadable file, becomes a log
// entry so one bad unit cannot abort the run.
type ValidationService struct {
	cfg     config.Config
	scanner ports.UnitScanner
	refval  ports.ReferenceValidator
}

// NewValidationService wires the pipeline's collaborators.
func NewValidationService(cfg config.Config, scanner ports.UnitScanner, refval ports.ReferenceValidator) *ValidationService {
	return &ValidationService{cfg: cfg, scanner: scanner, refval: refval}
}

// Run executes layers 1 through 5 in order and returns the completed
// log. Layer 4 consumes the parsed manifests from layer 2 and the
// parsed registry from layer 3; the other layers are independent.
func (s *ValidationService) Run(ctx context.Context) *result.Log {
	log := result.New()

	plugins := s.scanner.Plugins()
	skills := s.scanner.Skills()

	s.checkSkillBundles(ctx, log, skills)
	manifests := s.checkManifests(log, plugins)
	registry := s.checkRegistry(log, plugins)
	s.checkConsistency(log, registry, plugins, manifests, skills)
	s.checkQuality(log, skills)

	return log
}
