package domain

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// ValidDate reports whether s is a YYYY-MM-DD date.
func ValidDate(s string) bool {
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

// Today returns the current date in daily-note form.
func Today(now time.Time) string {
	return now.Format(dateLayout)
}

// FormatLogLine renders a timestamped daily-note bullet:
//
//	- **14:05** [health] Dentist appointment: root canal #health #money
//
// Details and tags are optional; empty tags are skipped.
func FormatLogLine(now time.Time, category, event, details string, tags []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "- **%s** [%s] %s", now.Format("15:04"), category, event)
	if d := strings.TrimSpace(details); d != "" {
		b.WriteString(": " + d)
	}
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		b.WriteString(" #" + tag)
	}
	return b.String()
}

// ParseTags splits a comma-separated tag list, dropping empties.
func ParseTags(s string) []string {
	var tags []string
	for _, tag := range strings.Split(s, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// FormatDistillBlock renders the dated block appended to the memory file:
// source reference, update timestamp, compression ratio, then the kept lines.
func FormatDistillBlock(date string, now time.Time, kept []string, total int) string {
	block := []string{
		fmt.Sprintf("## Distilled %s", date),
		fmt.Sprintf("- Source: [[%s/%s]]", DailyFolder, date),
		fmt.Sprintf("- Updated: %s", now.Format("2006-01-02 15:04")),
		fmt.Sprintf("- Kept: %d/%d events", len(kept), total),
	}
	block = append(block, kept...)
	return strings.Join(block, "\n")
}
