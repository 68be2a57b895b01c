package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"marketvet.ai/cli/internal/core/domain"
	"marketvet.ai/cli/internal/core/result"
)

// checkManifests is layer 2: every plugin manifest is validated against
// the field and shape rules, one entry per rule so a single missing
// field does not mask other problems. Returns the manifests that parsed
// for layer 4; plugins whose manifest failed to parse are absent.
func (s *ValidationService) checkManifests(log *result.Log, plugins []domain.PluginUnit) map[string]*domain.Manifest {
	log.Section("Layer 2: Plugin manifests (plugin.json)")

	parsed := make(map[string]*domain.Manifest)
	for _, p := range plugins {
		path := s.cfg.ManifestFile(p.Dir)

		data, err := os.ReadFile(path)
		if err != nil {
			log.Fail(p.Name+": file exists", path+" not found")
			continue
		}
		log.Pass(p.Name + ": file exists")

		m, err := domain.ParseManifest(data)
		if err != nil {
			log.Fail(p.Name+": valid JSON", err.Error())
			continue
		}
		log.Pass(p.Name + ": valid JSON")
		parsed[p.Name] = m

		s.checkManifestName(log, p, m)
		s.checkManifestVersion(log, p, m)
		s.checkManifestDescription(log, p, m)
		s.checkManifestAuthor(log, p, m)
		s.checkComponentPaths(log, p, m)
	}
	return parsed
}

func (s *ValidationService) checkManifestName(log *result.Log, p domain.PluginUnit, m *domain.Manifest) {
	if m.Name == "" {
		log.Fail(p.Name+": required field 'name'", "name is missing")
		return
	}
	log.Pass(p.Name + ": required field 'name'")

	if !domain.IsKebabCase(m.Name) {
		log.Fail(p.Name+": name kebab-case",
			fmt.Sprintf("%q does not match %s", m.Name, domain.KebabCasePattern()))
	} else {
		log.Pass(p.Name + ": name kebab-case")
	}

	if m.Name != p.Name {
		log.Fail(p.Name+": name matches dir",
			fmt.Sprintf("manifest name %q != directory %q", m.Name, p.Name))
	} else {
		log.Pass(p.Name + ": name matches dir")
	}
}

func (s *ValidationService) checkManifestVersion(log *result.Log, p domain.PluginUnit, m *domain.Manifest) {
	switch {
	case m.Version == "":
		log.Fail(p.Name+": version present", "version field is missing")
	case !domain.IsSemVer(m.Version):
		log.Fail(p.Name+": semver version", fmt.Sprintf("%q is not valid semver", m.Version))
	default:
		log.Pass(p.Name + ": semver version")
	}
}

// Description length is advisory: present-but-short (or long) is a
// WARN, only absence is a FAIL.
func (s *ValidationService) checkManifestDescription(log *result.Log, p domain.PluginUnit, m *domain.Manifest) {
	if m.Description == "" {
		log.Fail(p.Name+": description present", "description is missing")
		return
	}
	n := len(m.Description)
	if n < s.cfg.DescriptionMin || n > s.cfg.DescriptionMax {
		log.Warn(fmt.Sprintf("%s: description length (%d chars)", p.Name, n),
			fmt.Sprintf("recommended %d-%d chars, got %d", s.cfg.DescriptionMin, s.cfg.DescriptionMax, n))
	} else {
		log.Pass(p.Name + ": description length")
	}
}

func (s *ValidationService) checkManifestAuthor(log *result.Log, p domain.PluginUnit, m *domain.Manifest) {
	switch {
	case m.Author == nil:
		log.Fail(p.Name+": author present", "author field is missing")
	case m.Author.IsObject && m.Author.Name == "":
		log.Fail(p.Name+": author.name present", "author object missing 'name'")
	case !m.Author.Valid():
		log.Fail(p.Name+": author present", "author field is empty")
	default:
		log.Pass(p.Name + ": author present")
	}
}

// checkComponentPaths validates every declared component path on its
// own line: relative-prefix marker, no parent traversal (checked before
// any filesystem resolution), then existence under the plugin dir.
func (s *ValidationService) checkComponentPaths(log *result.Log, p domain.PluginUnit, m *domain.Manifest) {
	for _, decl := range m.Components() {
		for _, rel := range decl.Paths {
			label := fmt.Sprintf("%s: %s path '%s'", p.Name, decl.Field, rel)
			switch {
			case !strings.HasPrefix(rel, "./"):
				log.Fail(label, "component paths must start with './'")
			case strings.Contains(rel, ".."):
				log.Fail(label, "component paths must not contain '..'")
			default:
				resolved := filepath.Join(p.Dir, filepath.FromSlash(rel))
				if _, err := os.Stat(resolved); err != nil {
					log.Fail(label+" exists", resolved+" not found on disk")
				} else {
					log.Pass(label + " exists")
				}
			}
		}
	}
}
