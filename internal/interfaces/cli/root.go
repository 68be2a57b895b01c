package cli

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
	"marketvet.ai/cli/internal/core/ports"
	"marketvet.ai/cli/internal/infrastructure/config"
)

var (
	Version   = "dev"     // Overridden by ldflags
	BuildTime = "unknown" // Overridden by ldflags
)

// Container holds the dependencies CLI commands run with. RefValidator
// is optional; when nil the validate command builds the real subprocess
// executor from the configuration.
type Container struct {
	Config       config.Config
	RefValidator ports.ReferenceValidator
	Out          io.Writer
}

func (c *Container) stdout() io.Writer {
	if c.Out != nil {
		return c.Out
	}
	return os.Stdout
}

// NewRootCommand builds the base command.
func NewRootCommand(container *Container) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "marketvet",
		Short: "Marketvet - static validation for plugin/skill marketplaces",
		Long: `Marketvet statically validates a plugin marketplace repository:
skill bundles, plugin manifests, the marketplace registry, the
consistency between all three, and skill-authoring best practices.

Nothing in the tree is executed; the validator only reads files and
delegates skill bundles to the external reference validator.`,
		Version: Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf("{{.Name}} version {{.Version}}\nBuild time: %s\nGo version: %s\nPlatform: %s/%s\n",
		BuildTime, goVersion(), runtime.GOOS, runtime.GOARCH))

	rootCmd.AddCommand(NewValidateCommand(container))

	return rootCmd
}

// Execute runs the CLI and returns the process exit code. A failed
// validation maps to exit 1 with no extra error noise, since the report
// has already been printed in full.
func Execute(container *Container) int {
	rootCmd := NewRootCommand(container)

	if err := rootCmd.Execute(); err != nil {
		if err == ErrValidationFailed {
			return 1
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func goVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		return info.GoVersion
	}
	return runtime.Version()
}
