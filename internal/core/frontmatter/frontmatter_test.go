package frontmatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// TestParse_HeaderVariants tests the supported header grammar
func TestParse_HeaderVariants(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantFields map[string]string
		wantBody   string
	}{
		{
			name:       "SimpleScalars",
			text:       "---\nname: my-skill\ndescription: Does a thing\n---\n# Body\n",
			wantFields: map[string]string{"name": "my-skill", "description": "Does a thing"},
			wantBody:   "# Body\n",
		},
		{
			name:       "FoldedBlockScalar",
			text:       "---\ndescription: >\n  first line\n  second line\n---\nbody",
			wantFields: map[string]string{"description": "first line second line"},
			wantBody:   "body",
		},
		{
			name:       "LiteralBlockScalar",
			text:       "---\ndescription: |\n  alpha\n  beta\n---\nbody",
			wantFields: map[string]string{"description": "alpha beta"},
			wantBody:   "body",
		},
		{
			name:       "StrippedFoldIndicator",
			text:       "---\ndescription: >-\n  one\n  two\nname: x\n---\n",
			wantFields: map[string]string{"description": "one two", "name": "x"},
			wantBody:   "",
		},
		{
			name:       "StrippedLiteralIndicator",
			text:       "---\nnotes: |-\n  keep\n---\n",
			wantFields: map[string]string{"notes": "keep"},
			wantBody:   "",
		},
		{
			name:       "BlankLinesInsideBlockDropped",
			text:       "---\ndescription: >\n  a\n\n  b\n---\n",
			wantFields: map[string]string{"description": "a b"},
			wantBody:   "",
		},
		{
			name:       "EmptyInlineValue",
			text:       "---\nname:\ndescription: d\n---\n",
			wantFields: map[string]string{"name": "", "description": "d"},
			wantBody:   "",
		},
		{
			name:       "KeyLikeLineInsideBlockBelongsToBlock",
			text:       "---\ndescription: >\n  use when: needed\n---\n",
			wantFields: map[string]string{"description": "use when: needed"},
			wantBody:   "",
		},
		{
			name:       "EmptyHeader",
			text:       "---\n---\nbody here",
			wantFields: map[string]string{},
			wantBody:   "body here",
		},
		{
			name:       "LeadingBlankLinesStrippedFromBody",
			text:       "---\nname: x\n---\n\n\nbody",
			wantFields: map[string]string{"name": "x"},
			wantBody:   "body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields, body := Parse(tt.text)
			assert.Equal(t, tt.wantFields, fields)
			assert.Equal(t, tt.wantBody, body)
		})
	}
}

// TestParse_MalformedInput tests that malformed headers degrade to the
// identity result instead of erroring
func TestParse_MalformedInput(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "Empty", text: ""},
		{name: "NoDelimiter", text: "# just markdown\n"},
		{name: "UnclosedHeader", text: "---\nname: x\nno closing delimiter"},
		{name: "DelimiterMidDocument", text: "text first\n---\nname: x\n---\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields, body := Parse(tt.text)
			assert.Empty(t, fields)
			assert.Equal(t, tt.text, body, "malformed input must come back unchanged")
		})
	}
}

// TestParse_IdentityProperty verifies that any document not opening
// with the delimiter round-trips untouched
func TestParse_IdentityProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := rapid.String().
			Filter(func(s string) bool { return !strings.HasPrefix(s, "---") }).
			Draw(t, "text")

		fields, body := Parse(text)

		if len(fields) != 0 {
			t.Fatalf("expected no fields, got %v", fields)
		}
		if body != text {
			t.Fatalf("body mutated: %q -> %q", text, body)
		}
	})
}

// TestParse_FoldJoinProperty verifies that a folded block scalar of N
// indented lines parses to those lines' trimmed content joined with
// single spaces, in order
func TestParse_FoldJoinProperty(t *testing.T) {
	lineGen := rapid.StringMatching(`[a-z][a-z0-9 ]{0,30}[a-z0-9]`)

	rapid.Check(t, func(t *rapid.T) {
		lines := rapid.SliceOfN(lineGen, 1, 8).Draw(t, "lines")
		indicator := rapid.SampledFrom([]string{">", ">-", "|", "|-"}).Draw(t, "indicator")

		var b strings.Builder
		b.WriteString("---\ndescription: ")
		b.WriteString(indicator)
		b.WriteString("\n")
		for _, l := range lines {
			b.WriteString("  ")
			b.WriteString(l)
			b.WriteString("\n")
		}
		b.WriteString("---\nbody\n")

		fields, body := Parse(b.String())

		trimmed := make([]string, len(lines))
		for i, l := range lines {
			trimmed[i] = strings.TrimSpace(l)
		}
		want := strings.Join(trimmed, " ")

		if fields["description"] != want {
			t.Fatalf("folded value %q, want %q", fields["description"], want)
		}
		if body != "body\n" {
			t.Fatalf("body %q, want %q", body, "body\n")
		}
	})
}

// TestParse_DeterministicAcrossCalls ensures repeated parses of the
// same document agree
func TestParse_DeterministicAcrossCalls(t *testing.T) {
	text := "---\nname: demo\ndescription: >\n  a\n  b\n---\nbody\n"

	fields1, body1 := Parse(text)
	fields2, body2 := Parse(text)

	require.Equal(t, fields1, fields2)
	require.Equal(t, body1, body2)
}
