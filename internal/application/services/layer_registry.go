package services

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"marketvet.ai/cli/internal/core/domain"
	"marketvet.ai/cli/internal/core/result"
)

// checkRegistry is layer 3: the registry file's own shape, every
// entry's fields, and the orphan-on-disk check — a plugin directory
// absent from the registry is unpublishable and fails here, because the
// registry is the tool-of-record. Returns the parsed registry for layer
// 4, or nil when it could not be read or parsed.
func (s *ValidationService) checkRegistry(log *result.Log, plugins []domain.PluginUnit) *domain.Marketplace {
	log.Section("Layer 3: Marketplace registry (marketplace.json)")

	path := s.cfg.RegistryFile()
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fail("file exists", path+" not found")
		return nil
	}
	log.Pass("file exists")

	mp, err := domain.ParseMarketplace(data)
	if err != nil {
		log.Fail("valid JSON", err.Error())
		return nil
	}
	log.Pass("valid JSON")

	for _, field := range []string{"name", "owner", "plugins"} {
		if !mp.Has(field) {
			log.Fail("field: "+field, fmt.Sprintf("'%s' missing from marketplace.json", field))
		} else {
			log.Pass("field: " + field)
		}
	}

	switch version := mp.MetadataVersion(); {
	case version == "":
		log.Fail("field: metadata.version", "metadata.version missing")
	case !domain.IsSemVer(version):
		log.Fail("field: metadata.version", fmt.Sprintf("%q is not valid semver", version))
	default:
		log.Pass("field: metadata.version")
	}

	if mp.MetadataDescription() == "" {
		log.Fail("field: metadata.description", "metadata.description missing")
	} else {
		log.Pass("field: metadata.description")
	}

	entries, isArray := mp.Entries()
	if !isArray {
		log.Fail("plugins is array", "plugins key is not an array")
		return mp
	}

	seen := make(map[string]bool)
	for _, entry := range entries {
		name := entry.Name
		if name == "" {
			name = "<unnamed>"
		}

		switch {
		case entry.Name == "":
			log.Fail(name+": name present", "missing 'name'")
		case !domain.IsKebabCase(entry.Name):
			log.Fail(name+": name kebab-case", fmt.Sprintf("%q does not match kebab-case", entry.Name))
		case seen[entry.Name]:
			log.Fail(name+": unique name", fmt.Sprintf("duplicate registry entry for %q", entry.Name))
		default:
			log.Pass(name + ": name kebab-case")
		}
		seen[entry.Name] = true

		if entry.Source == "" {
			log.Fail(name+": source present", "missing 'source'")
			continue
		}
		sourcePath := filepath.Join(s.cfg.Root, filepath.FromSlash(entry.Source))
		if info, err := os.Stat(sourcePath); err != nil || !info.IsDir() {
			log.Fail(name+": source path exists", sourcePath+" not found")
		} else {
			log.Pass(name + ": source path exists")
		}
	}

	diskNames := make([]string, 0, len(plugins))
	for _, p := range plugins {
		diskNames = append(diskNames, p.Name)
	}
	sort.Strings(diskNames)
	for _, dname := range diskNames {
		if seen[dname] {
			log.Pass(dname + ": listed in marketplace")
		} else {
			log.Fail(dname+": listed in marketplace",
				fmt.Sprintf("plugin directory %q exists on disk but is not in marketplace.json", dname))
		}
	}

	return mp
}
