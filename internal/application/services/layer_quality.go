package services

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"marketvet.ai/cli/internal/core/domain"
	"marketvet.ai/cli/internal/core/frontmatter"
	"marketvet.ai/cli/internal/core/result"
)

var (
	// Sentence openings in first or second person, anchored at the
	// start of the description or after a sentence terminator.
	firstSecondPersonExpr = regexp.MustCompile(`(?m)(?:^|\.\s)\s*(?:I|You|We|My|Your) `)

	// Trigger-context language a skill description should carry so the
	// runtime knows when to load it.
	triggerContextExpr = regexp.MustCompile(`(?i)\b(?:whenever|when|use when|triggers?\s+(?:on|when))\b`)

	// Fenced code blocks, stripped before scanning reference documents
	// so example snippets cannot produce false positives.
	fencedBlockExpr = regexp.MustCompile("(?s)```.*?```")
)

// extraneousFiles are stray documents that do not belong next to a
// skill document.
var extraneousFiles = []string{"CHANGELOG.md", "INSTALLATION_GUIDE.md", "README.md"}

// checkQuality is layer 5: advisory style and size checks on skill
// documents. Everything here is WARN-only and never fails the run.
func (s *ValidationService) checkQuality(log *result.Log, skills []domain.SkillUnit) {
	log.Section("Layer 5: Skill quality (best practices)")

	for _, sk := range skills {
		label := sk.Label()

		raw, err := os.ReadFile(filepath.Join(sk.Dir, s.cfg.SkillFile))
		if err != nil {
			log.Warn(label+": skill document", "could not read "+s.cfg.SkillFile+": "+err.Error())
			continue
		}
		fields, body := frontmatter.Parse(string(raw))
		desc := fields["description"]

		s.checkDescriptionVoice(log, label, desc)
		s.checkTriggerContext(log, label, desc)
		s.checkBodySize(log, label, body)
		s.checkReferenceDepth(log, label, sk.Dir)
		s.checkExtraneousFiles(log, label, sk.Dir)
	}
}

func (s *ValidationService) checkDescriptionVoice(log *result.Log, label, desc string) {
	if desc != "" && firstSecondPersonExpr.MatchString(desc) {
		log.Warn(label+": description voice",
			"description contains a first/second-person sentence start")
		return
	}
	log.Pass(label + ": description voice")
}

func (s *ValidationService) checkTriggerContext(log *result.Log, label, desc string) {
	switch {
	case desc == "":
		log.Warn(label+": description trigger context", "no description found in frontmatter")
	case triggerContextExpr.MatchString(desc):
		log.Pass(label + ": description trigger context")
	default:
		log.Warn(label+": description trigger context",
			"description lacks 'when'/'use when' trigger context")
	}
}

func (s *ValidationService) checkBodySize(log *result.Log, label, body string) {
	lines := strings.Count(body, "\n")
	if body != "" && !strings.HasSuffix(body, "\n") {
		lines++
	}
	if lines > s.cfg.BodyLineLimit {
		log.Warn(fmt.Sprintf("%s: body size (%d lines)", label, lines),
			fmt.Sprintf("exceeds %d-line recommended maximum", s.cfg.BodyLineLimit))
	} else {
		log.Pass(fmt.Sprintf("%s: body size (%d lines)", label, lines))
	}
}

// Reference documents linking back into references/ indicate the skill
// has been fragmented one level too deep.
func (s *ValidationService) checkReferenceDepth(log *result.Log, label, skillDir string) {
	refsDir := filepath.Join(skillDir, "references")
	entries, err := os.ReadDir(refsDir)
	if err != nil {
		return
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".md") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		content, err := os.ReadFile(filepath.Join(refsDir, name))
		if err != nil {
			continue
		}
		stripped := fencedBlockExpr.ReplaceAllString(string(content), "")
		if strings.Contains(stripped, "](references/") {
			log.Warn(label+": reference depth", name+" contains nested references/ links")
			return
		}
	}
	log.Pass(label + ": reference depth")
}

func (s *ValidationService) checkExtraneousFiles(log *result.Log, label, skillDir string) {
	var found []string
	for _, name := range extraneousFiles {
		if info, err := os.Stat(filepath.Join(skillDir, name)); err == nil && !info.IsDir() {
			found = append(found, name)
		}
	}
	if len(found) > 0 {
		log.Warn(label+": no extraneous files", "found: "+strings.Join(found, ", "))
	} else {
		log.Pass(label + ": no extraneous files")
	}
}
