package services

import (
	"fmt"

	"marketvet.ai/cli/internal/core/domain"
	"marketvet.ai/cli/internal/core/result"
)

// checkConsistency is layer 4: the registry and the manifests are
// authored independently and drift; this layer compares them directly
// instead of trusting either side. Version disagreement is tri-state:
// both present and equal is a PASS, both present and different is a
// FAIL, either absent is a WARN — a missing version is deliberately
// softer than a wrong one.
func (s *ValidationService) checkConsistency(
	log *result.Log,
	registry *domain.Marketplace,
	plugins []domain.PluginUnit,
	manifests map[string]*domain.Manifest,
	skills []domain.SkillUnit,
) {
	log.Section("Layer 4: Cross-consistency")

	if registry == nil {
		log.Fail("marketplace data", "skipped: marketplace.json missing or invalid")
		return
	}

	entries := registry.EntryNames()
	for _, p := range plugins {
		entry, listed := entries[p.Name]
		if !listed {
			// orphan already reported by layer 3 within its own scope
			continue
		}

		var manifestName, manifestVersion string
		if m := manifests[p.Name]; m != nil {
			manifestName = m.Name
			manifestVersion = m.Version
		}

		// Malformed versions were already failed by layers 2/3; here
		// they count as absent so the same defect is not failed twice.
		if !domain.IsSemVer(manifestVersion) {
			manifestVersion = ""
		}
		entryVersion := entry.Version
		if !domain.IsSemVer(entryVersion) {
			entryVersion = ""
		}

		if manifestName == entry.Name {
			log.Pass(p.Name + ": name matches plugin.json")
		} else {
			log.Fail(p.Name+": name matches plugin.json",
				fmt.Sprintf("marketplace %q != plugin.json %q", entry.Name, manifestName))
		}

		switch {
		case manifestVersion != "" && entryVersion != "" && manifestVersion == entryVersion:
			log.Pass(p.Name + ": version matches plugin.json")
		case manifestVersion != "" && entryVersion != "":
			log.Fail(p.Name+": version matches plugin.json",
				fmt.Sprintf("marketplace %q != plugin.json %q", entryVersion, manifestVersion))
		default:
			log.Warn(p.Name+": version comparison", "version missing in one or both locations")
		}
	}

	// A skill whose owning plugin is not listed cannot be reached from
	// the published registry, regardless of how layer 1 judged it.
	for _, sk := range skills {
		if _, listed := entries[sk.Plugin]; listed {
			log.Pass(sk.Label() + ": reachable")
		} else {
			log.Fail(sk.Label()+": reachable",
				fmt.Sprintf("skill belongs to plugin %q which is not in the marketplace", sk.Plugin))
		}
	}
}
