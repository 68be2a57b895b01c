// Package config carries the paths and thresholds the validator runs
// with. Defaults mirror the canonical marketplace layout; every value
// can be overridden through MARKETVET_* environment variables, and the
// root additionally through the --root flag.
package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const envPrefix = "marketvet"

// Config is the resolved runtime configuration for one validation run.
type Config struct {
	// Root is the marketplace repository root.
	Root string `envconfig:"ROOT" default:"."`

	// RegistryPath is the registry file, relative to Root.
	RegistryPath string `envconfig:"REGISTRY_PATH" default:".claude-plugin/marketplace.json"`

	// PluginsDir is the plugins directory name under Root.
	PluginsDir string `envconfig:"PLUGINS_DIR" default:"plugins"`

	// ManifestPath is the manifest file, relative to a plugin directory.
	ManifestPath string `envconfig:"MANIFEST_PATH" default:".claude-plugin/plugin.json"`

	// SkillsDir is the skills directory name under a plugin directory.
	SkillsDir string `envconfig:"SKILLS_DIR" default:"skills"`

	// SkillFile is the skill document name inside a skill directory.
	SkillFile string `envconfig:"SKILL_FILE" default:"SKILL.md"`

	// RefValidatorBin is the reference-validator binary looked up on PATH.
	RefValidatorBin string `envconfig:"REF_VALIDATOR" default:"skills-ref"`

	// RefValidatorDir is the fallback source checkout (relative to Root
	// unless absolute) that the binary can be installed from.
	RefValidatorDir string `envconfig:"REF_VALIDATOR_DIR" default:"deps/agentskills/skills-ref"`

	// RefTimeout bounds each reference-validator invocation.
	RefTimeout time.Duration `envconfig:"REF_TIMEOUT" default:"60s"`

	// DescriptionMin/DescriptionMax bound the advisory manifest
	// description length window.
	DescriptionMin int `envconfig:"DESCRIPTION_MIN" default:"50"`
	DescriptionMax int `envconfig:"DESCRIPTION_MAX" default:"200"`

	// BodyLineLimit is the advisory skill document body size ceiling.
	BodyLineLimit int `envconfig:"BODY_LINE_LIMIT" default:"500"`
}

// Load builds a Config from defaults and MARKETVET_* overrides.
func Load() (Config, error) {
	var c Config
	if err := envconfig.Process(envPrefix, &c); err != nil {
		return Config{}, fmt.Errorf("failed to load environment configuration: %w", err)
	}
	return c, nil
}

// RegistryFile returns the absolute-ish path to the registry file.
func (c Config) RegistryFile() string {
	return filepath.Join(c.Root, c.RegistryPath)
}

// PluginsRoot returns the path to the plugins directory.
func (c Config) PluginsRoot() string {
	return filepath.Join(c.Root, c.PluginsDir)
}

// ManifestFile returns a plugin directory's manifest path.
func (c Config) ManifestFile(pluginDir string) string {
	return filepath.Join(pluginDir, filepath.FromSlash(c.ManifestPath))
}

// RefValidatorSource returns the fallback checkout the reference
// validator can be installed from.
func (c Config) RefValidatorSource() string {
	if filepath.IsAbs(c.RefValidatorDir) {
		return c.RefValidatorDir
	}
	return filepath.Join(c.Root, c.RefValidatorDir)
}
