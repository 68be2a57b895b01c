package main

import (
	"fmt"
	"os"

	"marketvet.ai/cli/internal/infrastructure/config"
	"marketvet.ai/cli/internal/interfaces/cli"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	os.Exit(cli.Execute(&cli.Container{Config: cfg}))
}
