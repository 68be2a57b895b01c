package domain

import (
	"encoding/json"
	"fmt"
)

// Marketplace is the parsed registry file. Top-level fields stay as raw
// messages where layer 3 needs to distinguish "key absent" from "key
// present but empty or mistyped".
type Marketplace struct {
	Name     json.RawMessage      `json:"name"`
	Owner    json.RawMessage      `json:"owner"`
	Metadata *MarketplaceMetadata `json:"metadata"`
	Plugins  json.RawMessage      `json:"plugins"`
}

// MarketplaceMetadata is the registry's nested metadata block.
type MarketplaceMetadata struct {
	Version     string `json:"version"`
	Description string `json:"description"`
}

// RegistryEntry is one plugin listing inside the registry.
type RegistryEntry struct {
	Name    string `json:"name"`
	Source  string `json:"source"`
	Version string `json:"version"`
}

// ParseMarketplace decodes a marketplace.json document.
func ParseMarketplace(data []byte) (*Marketplace, error) {
	var m Marketplace
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse registry JSON: %w", err)
	}
	return &m, nil
}

// Has reports whether a top-level key was present in the document.
func (m *Marketplace) Has(field string) bool {
	switch field {
	case "name":
		return m.Name != nil
	case "owner":
		return m.Owner != nil
	case "plugins":
		return m.Plugins != nil
	default:
		return false
	}
}

// MetadataVersion returns metadata.version, or "" when the metadata
// block or the field is absent.
func (m *Marketplace) MetadataVersion() string {
	if m.Metadata == nil {
		return ""
	}
	return m.Metadata.Version
}

// MetadataDescription returns metadata.description, or "" when absent.
func (m *Marketplace) MetadataDescription() string {
	if m.Metadata == nil {
		return ""
	}
	return m.Metadata.Description
}

// Entries decodes the plugin list. The second result is false when the
// plugins key holds something other than an array (or is absent), which
// layer 3 reports as its own failure.
func (m *Marketplace) Entries() ([]RegistryEntry, bool) {
	if m.Plugins == nil {
		return nil, false
	}
	var entries []RegistryEntry
	if err := json.Unmarshal(m.Plugins, &entries); err != nil {
		return nil, false
	}
	return entries, true
}

// EntryNames returns the set of entry names; entries without a name are
// skipped.
func (m *Marketplace) EntryNames() map[string]RegistryEntry {
	byName := make(map[string]RegistryEntry)
	entries, ok := m.Entries()
	if !ok {
		return byName
	}
	for _, e := range entries {
		if e.Name == "" {
			continue
		}
		if _, dup := byName[e.Name]; dup {
			continue
		}
		byName[e.Name] = e
	}
	return byName
}
