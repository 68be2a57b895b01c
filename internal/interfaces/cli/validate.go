package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"marketvet.ai/cli/internal/application/services"
	"marketvet.ai/cli/internal/core/ports"
	"marketvet.ai/cli/internal/infrastructure/discovery"
	"marketvet.ai/cli/internal/infrastructure/skillref"
)

// ErrValidationFailed signals a completed run with at least one FAIL
// entry. It carries no message of its own: the report is the message,
// the exit code is the signal.
var ErrValidationFailed = errors.New("validation failed")

// ValidateFlags holds command-line flags for the validate command.
type ValidateFlags struct {
	Root        string
	Interactive bool
	NoColor     bool
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(container *Container) *cobra.Command {
	flags := &ValidateFlags{}

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Run the five-layer marketplace validation pipeline",
		Long: `Validate the marketplace tree and print a full report.

Layers:
  1. Skill bundles    - delegated to the external reference validator
  2. Plugin manifests - plugin.json field and shape rules
  3. Registry         - marketplace.json structure and entries
  4. Consistency      - registry vs. manifest vs. disk reconciliation
  5. Skill quality    - advisory best-practice checks (WARN only)

All layers always run to completion; a malformed file degrades to a
FAIL entry for that unit. The exit code is 0 when no check failed
(warnings never block) and 1 otherwise.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, container, flags)
		},
	}

	cmd.Flags().StringVar(&flags.Root, "root", "", "Marketplace repository root (default: configured root or '.')")
	cmd.Flags().BoolVar(&flags.Interactive, "interactive", false, "Browse findings in an interactive viewer before the report")
	cmd.Flags().BoolVar(&flags.NoColor, "no-color", false, "Disable colored output")

	return cmd
}

// runValidate wires the pipeline, prints the report and maps failures
// to the exit status.
func runValidate(cmd *cobra.Command, container *Container, flags *ValidateFlags) error {
	cfg := container.Config
	if flags.Root != "" {
		cfg.Root = flags.Root
	}

	var refval ports.ReferenceValidator = container.RefValidator
	if refval == nil {
		refval = skillref.NewExecutor(cfg)
	}

	scanner := discovery.NewScanner(cfg)
	service := services.NewValidationService(cfg, scanner, refval)
	log := service.Run(cmd.Context())

	if flags.Interactive {
		if err := browseFindings(log); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "interactive viewer failed: %v\n", err)
		}
	}

	// The report is always printed in full before any exit decision.
	NewReportRenderer(container.stdout(), flags.NoColor).Render(log)

	if !log.OK() {
		return ErrValidationFailed
	}
	return nil
}
