// Package discovery enumerates plugins and skills by walking the
// marketplace tree. Results are sorted by name so repeated runs over an
// unchanged tree produce byte-identical reports.
package discovery

import (
	"os"
	"path/filepath"
	"sort"

	"marketvet.ai/cli/internal/core/domain"
	"marketvet.ai/cli/internal/infrastructure/config"
)

// Scanner discovers validatable units under a configured root.
type Scanner struct {
	cfg config.Config
}

// NewScanner creates a filesystem scanner for the configured tree.
func NewScanner(cfg config.Config) *Scanner {
	return &Scanner{cfg: cfg}
}

// Plugins returns every immediate child directory of the plugins root
// that carries a manifest file, sorted by directory name. Directories
// without a manifest are silently excluded; a missing plugins root
// yields an empty list.
func (s *Scanner) Plugins() []domain.PluginUnit {
	root := s.cfg.PluginsRoot()
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil
	}

	var plugins []domain.PluginUnit
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := filepath.Join(root, entry.Name())
		if _, err := os.Stat(s.cfg.ManifestFile(dir)); err != nil {
			continue
		}
		plugins = append(plugins, domain.PluginUnit{Name: entry.Name(), Dir: dir})
	}

	sort.Slice(plugins, func(i, j int) bool { return plugins[i].Name < plugins[j].Name })
	return plugins
}

// Skills returns every skill directory (a child of a plugin's skills
// directory containing the skill document), sorted by plugin name then
// skill name. Skills are discovered for every plugin directory, even
// ones without a manifest, so layer 1 still sees their bundles.
func (s *Scanner) Skills() []domain.SkillUnit {
	root := s.cfg.PluginsRoot()
	pluginDirs, err := os.ReadDir(root)
	if err != nil {
		return nil
	}

	var skills []domain.SkillUnit
	for _, pd := range pluginDirs {
		if !pd.IsDir() {
			continue
		}
		skillsRoot := filepath.Join(root, pd.Name(), s.cfg.SkillsDir)
		skillDirs, err := os.ReadDir(skillsRoot)
		if err != nil {
			continue
		}
		for _, sd := range skillDirs {
			if !sd.IsDir() {
				continue
			}
			dir := filepath.Join(skillsRoot, sd.Name())
			if _, err := os.Stat(filepath.Join(dir, s.cfg.SkillFile)); err != nil {
				continue
			}
			skills = append(skills, domain.SkillUnit{Plugin: pd.Name(), Name: sd.Name(), Dir: dir})
		}
	}

	sort.Slice(skills, func(i, j int) bool {
		if skills[i].Plugin != skills[j].Plugin {
			return skills[i].Plugin < skills[j].Plugin
		}
		return skills[i].Name < skills[j].Name
	})
	return skills
}
