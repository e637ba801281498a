package domain

import "strings"

const (
	// maxCompressedEvents caps the distilled subset per day.
	maxCompressedEvents = 12
	// fallbackEventCount is kept when no line qualifies as high-signal.
	fallbackEventCount = 6
)

// highSignalKeywords mark an event line as worth keeping long-term. Matched
// as plain case-insensitive substrings, not word-bounded.
var highSignalKeywords = []string{
	"decision", "decided", "deadline", "due", "meeting", "appointment",
	"assessment", "payment", "paid", "moved", "move", "booked", "confirm",
	"urgent", "call",
}

// ExtractEventLines pulls the bullet lines out of the "## Events" section of
// a daily note. A "## " heading toggles the section on only when its text is
// exactly "events" (case-insensitive) and off for any other heading. Bullets
// are returned trimmed, in order. A note without an Events heading yields nil.
func ExtractEventLines(text string) []string {
	var lines []string
	inEvents := false
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if strings.HasPrefix(strings.ToLower(line), "## ") {
			inEvents = strings.EqualFold(line, "## events")
			continue
		}
		if inEvents && strings.HasPrefix(line, "-") {
			lines = append(lines, line)
		}
	}
	return lines
}

// IsHighSignal reports whether an event line should survive compression:
// it already contains a wikilink, or it matches a high-signal keyword.
func IsHighSignal(line string) bool {
	if linkSpanRe.MatchString(line) {
		return true
	}
	lower := strings.ToLower(line)
	for _, kw := range highSignalKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// CompressEventLines filters and deduplicates event lines down to a bounded
// high-signal subset. When no line is high-signal the first six input lines
// are kept instead, so non-empty input never compresses to nothing. The
// result is an in-order subsequence of the input: lines are never rewritten.
func CompressEventLines(lines []string) []string {
	if len(lines) == 0 {
		return nil
	}

	var candidates []string
	for _, line := range lines {
		if IsHighSignal(line) {
			candidates = append(candidates, line)
		}
	}
	if len(candidates) == 0 {
		candidates = lines
		if len(candidates) > fallbackEventCount {
			candidates = candidates[:fallbackEventCount]
		}
	}

	seen := make(map[string]struct{}, len(candidates))
	var kept []string
	for _, line := range candidates {
		key := strings.ToLower(strings.TrimSpace(line))
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, line)
		if len(kept) == maxCompressedEvents {
			break
		}
	}
	return kept
}
