// Package frontmatter extracts the "---" delimited key/value header
// from a skill document.
//
// The accepted grammar is a deliberately narrow YAML subset: flat
// string scalars plus folded (">", ">-") and literal ("|", "|-") block
// scalars, with both block styles folded to space-joined lines.
// Anchors, aliases, tags, quoting escapes, nested mappings, sequences
// and multi-document streams are not supported. Malformed headers never
// produce an error; the worst case is a smaller field map, which
// callers treat as "field missing".
package frontmatter

import (
	"regexp"
	"strings"
)

const delimiter = "---"

// Top-level fields start at column 0 as "key: value".
var keyExpr = regexp.MustCompile(`^([a-z][\w-]*):\s*(.*)`)

// Parse splits a document into its frontmatter fields and body. A
// document that does not open with the delimiter, or whose header is
// never closed, comes back untouched with an empty field map.
func Parse(text string) (map[string]string, string) {
	fields := make(map[string]string)
	if !strings.HasPrefix(text, delimiter) {
		return fields, text
	}
	idx := strings.Index(text[len(delimiter):], "\n"+delimiter)
	if idx == -1 {
		return fields, text
	}
	end := idx + len(delimiter)

	var raw string
	if end > len(delimiter)+1 {
		raw = text[len(delimiter)+1 : end]
	}
	body := strings.TrimLeft(text[end+len(delimiter)+1:], "\n")

	currentKey := ""
	var pending []string
	inBlock := false

	flush := func() {
		if currentKey == "" {
			return
		}
		var parts []string
		for _, l := range pending {
			if t := strings.TrimSpace(l); t != "" {
				parts = append(parts, t)
			}
		}
		fields[currentKey] = strings.Join(parts, " ")
	}

	for _, line := range strings.Split(raw, "\n") {
		m := keyExpr.FindStringSubmatch(line)
		if m != nil && !(inBlock && strings.HasPrefix(line, " ")) {
			flush()
			currentKey = m[1]
			val := strings.TrimSpace(m[2])
			inBlock = isBlockIndicator(val)
			if inBlock {
				pending = nil
			} else {
				pending = []string{val}
			}
			continue
		}
		pending = append(pending, line)
	}
	flush()

	return fields, body
}

func isBlockIndicator(val string) bool {
	switch val {
	case ">", "|", ">-", "|-":
		return true
	}
	return false
}
