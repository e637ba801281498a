package domain

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
)

// minEntityLen filters out labels too short to link safely ("me", "it").
const minEntityLen = 3

var wikilinkRe = regexp.MustCompile(`\[\[([^\[\]]*?)\]\]`)

// WikilinkLabels returns the displayed label of every wikilink in text:
// [[Target]] yields "Target", [[Target|Display]] yields "Display".
// Labels are trimmed; empty labels are dropped.
func WikilinkLabels(text string) []string {
	matches := wikilinkRe.FindAllStringSubmatch(text, -1)
	var labels []string
	for _, m := range matches {
		label := m[1]
		if i := strings.Index(label, "|"); i >= 0 {
			label = label[i+1:]
		}
		label = strings.TrimSpace(label)
		if label == "" {
			continue
		}
		labels = append(labels, label)
	}
	return labels
}

// WikilinkTargets returns the deduplicated link targets in text, normalising
// aliases: [[Target|Display]] yields "Target".
func WikilinkTargets(text string) []string {
	matches := wikilinkRe.FindAllStringSubmatch(text, -1)
	seen := make(map[string]struct{}, len(matches))
	var out []string
	for _, m := range matches {
		target := m[1]
		if i := strings.Index(target, "|"); i >= 0 {
			target = target[:i]
		}
		target = strings.TrimSpace(target)
		if target == "" {
			continue
		}
		if _, ok := seen[target]; ok {
			continue
		}
		seen[target] = struct{}{}
		out = append(out, target)
	}
	return out
}

// EntityFromFileName converts a note file name into an entity name:
// extension stripped, hyphens replaced by spaces, title-cased.
// "jane-smith.md" becomes "Jane Smith".
func EntityFromFileName(name string) string {
	base := strings.TrimSuffix(name, ".md")
	return titleCase(strings.ReplaceAll(base, "-", " "))
}

func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	startWord := true
	for _, r := range s {
		if startWord {
			b.WriteRune(unicode.ToUpper(r))
		} else {
			b.WriteRune(unicode.ToLower(r))
		}
		startWord = !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}
	return b.String()
}

// BuildEntityIndex derives the ordered list of known entity names from the
// NOW note text and the note file names of each category folder (supplied in
// CategoryFolders order). Names are deduplicated exactly and sorted by
// descending length so longer entities are matched before their substrings;
// ties keep discovery order.
func BuildEntityIndex(nowNote string, categoryNotes [][]string) []string {
	seen := make(map[string]struct{})
	var entities []string

	admit := func(name string) {
		if len(name) < minEntityLen {
			return
		}
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		entities = append(entities, name)
	}

	for _, label := range WikilinkLabels(nowNote) {
		admit(label)
	}
	for _, names := range categoryNotes {
		for _, name := range names {
			admit(EntityFromFileName(name))
		}
	}

	sort.SliceStable(entities, func(i, j int) bool {
		return len(entities[i]) > len(entities[j])
	})
	return entities
}
