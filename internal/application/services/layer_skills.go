package services

import (
	"context"
	"errors"

	"marketvet.ai/cli/internal/core/domain"
	"marketvet.ai/cli/internal/core/ports"
	"marketvet.ai/cli/internal/core/result"
)

// checkSkillBundles is layer 1: each discovered skill directory is
// handed to the external reference validator. A missing validator is a
// single hard failure for the layer, never a silent skip.
func (s *ValidationService) checkSkillBundles(ctx context.Context, log *result.Log, skills []domain.SkillUnit) {
	log.Section("Layer 1: Skill bundles (" + s.cfg.RefValidatorBin + " validate)")

	if err := s.refval.Ready(ctx); err != nil {
		log.Fail(s.cfg.RefValidatorBin, err.Error())
		return
	}

	for _, sk := range skills {
		err := s.refval.Validate(ctx, sk.Dir)
		if err == nil {
			log.Pass(sk.Label())
			continue
		}
		detail := err.Error()
		var failure *ports.ValidationFailure
		if errors.As(err, &failure) {
			detail = failure.Output
		}
		log.Fail(sk.Label(), detail)
	}
}
