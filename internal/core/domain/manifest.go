package domain

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Manifest is a plugin's parsed plugin.json. Component fields are kept
// as declared-path collections so each path can be checked individually.
type Manifest struct {
	Name        string          `json:"name"`
	Version     string          `json:"version"`
	Description string          `json:"description"`
	Author      *Author         `json:"author"`
	Commands    *ComponentPaths `json:"commands"`
	Hooks       *ComponentPaths `json:"hooks"`
	MCPServers  *ComponentPaths `json:"mcpServers"`
	Agents      *ComponentPaths `json:"agents"`
}

// ParseManifest decodes a plugin.json document into a typed record.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest JSON: %w", err)
	}
	return &m, nil
}

// ComponentDecl pairs a component field name with the relative paths it
// declares, in a stable order.
type ComponentDecl struct {
	Field string
	Paths []string
}

// Components returns the declared component-path fields in manifest
// field order, omitting fields that are absent.
func (m *Manifest) Components() []ComponentDecl {
	fields := []struct {
		name  string
		paths *ComponentPaths
	}{
		{"commands", m.Commands},
		{"hooks", m.Hooks},
		{"mcpServers", m.MCPServers},
		{"agents", m.Agents},
	}

	var decls []ComponentDecl
	for _, f := range fields {
		if f.paths == nil {
			continue
		}
		decls = append(decls, ComponentDecl{Field: f.name, Paths: f.paths.Paths})
	}
	return decls
}

// Author accepts either a bare string or an object carrying at least a
// name. IsObject distinguishes the two shapes so validation can require
// a non-empty name key on the object form.
type Author struct {
	Name     string
	IsObject bool
}

// UnmarshalJSON implements the string-or-object manifest author shape.
func (a *Author) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		a.Name = s
		a.IsObject = false
		return nil
	}

	var obj struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("author must be a string or an object: %w", err)
	}
	a.Name = obj.Name
	a.IsObject = true
	return nil
}

// Valid reports whether the author carries a usable name: any non-empty
// string, or an object with a non-empty name key.
func (a *Author) Valid() bool {
	return a != nil && a.Name != ""
}

// ComponentPaths collects the relative path strings declared by one
// component field. The wire shape may be a single path string, a map
// whose values are paths, or a map of maps; map-sourced paths are
// sorted so repeated parses yield identical order.
type ComponentPaths struct {
	Paths []string
}

// UnmarshalJSON flattens the three accepted component shapes into a
// path list. Nested map values only count as paths when they look like
// one (a "./" prefix or an embedded slash), matching how loosely the
// manifests in the wild declare them.
func (c *ComponentPaths) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		c.Paths = []string{s}
		return nil
	}

	var m map[string]json.RawMessage
	if err := json.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("component field must be a path string or an object: %w", err)
	}

	var paths []string
	for _, raw := range m {
		var v string
		if err := json.Unmarshal(raw, &v); err == nil {
			paths = append(paths, v)
			continue
		}
		var nested map[string]string
		if err := json.Unmarshal(raw, &nested); err != nil {
			continue
		}
		for _, nv := range nested {
			if strings.HasPrefix(nv, "./") || strings.Contains(nv, "/") {
				paths = append(paths, nv)
			}
		}
	}
	sort.Strings(paths)
	c.Paths = paths
	return nil
}
