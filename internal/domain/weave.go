package domain

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// linkSpanRe matches a complete wikilink span with no nested brackets.
var linkSpanRe = regexp.MustCompile(`\[\[[^\[\]]*?\]\]`)

// Weave wraps whole-word, case-insensitive occurrences of known entity names
// in wikilink markup, preserving the original casing of the matched text.
// Spans that are already linked are never re-wrapped: they are swapped for
// indexed placeholder tokens before matching and restored afterwards. Each
// freshly inserted link is protected the same way, so a shorter entity can
// never match inside a longer entity's link. Entities must arrive
// longest-first (see BuildEntityIndex).
func Weave(text string, entities []string) string {
	if text == "" || len(entities) == 0 {
		return text
	}

	var spans []string
	protect := func(span string) string {
		// NUL delimiters cannot occur in entity names, so a token can
		// never collide with entity text.
		token := "\x00" + strconv.Itoa(len(spans)) + "\x00"
		spans = append(spans, span)
		return token
	}

	woven := linkSpanRe.ReplaceAllStringFunc(text, protect)

	for _, entity := range entities {
		if entity == "" {
			continue
		}
		re, err := regexp.Compile(entityPattern(entity))
		if err != nil {
			continue
		}
		woven = re.ReplaceAllStringFunc(woven, func(match string) string {
			return protect("[[" + match + "]]")
		})
	}

	for i, span := range spans {
		woven = strings.Replace(woven, "\x00"+strconv.Itoa(i)+"\x00", span, 1)
	}
	return woven
}

// entityPattern builds the case-insensitive whole-word pattern for one entity.
// A \b anchor is emitted only where the entity's edge rune is a word character:
// \b needs a word/non-word transition, so anchoring an edge like "(" or ")"
// would make the pattern unmatchable next to spaces or punctuation.
func entityPattern(entity string) string {
	var sb strings.Builder
	sb.WriteString(`(?i)`)
	if first, _ := utf8.DecodeRuneInString(entity); isWordRune(first) {
		sb.WriteString(`\b`)
	}
	sb.WriteString(regexp.QuoteMeta(entity))
	if last, _ := utf8.DecodeLastRuneInString(entity); isWordRune(last) {
		sb.WriteString(`\b`)
	}
	return sb.String()
}

// isWordRune mirrors the regexp package's ASCII \w class.
func isWordRune(r rune) bool {
	return r == '_' ||
		('0' <= r && r <= '9') ||
		('a' <= r && r <= 'z') ||
		('A' <= r && r <= 'Z')
}
