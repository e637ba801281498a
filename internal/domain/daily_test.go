package domain

import (
	"strings"
	"testing"
	"time"
)

func TestIsDailyNote(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"2025-03-01.md", true},
		{"1999-12-31.md", true},
		{"2025-3-1.md", false},
		{"2025-03-01.txt", false},
		{"MEMORY.md", false},
		{"notes-2025-03-01.md", false},
	}

	for _, tt := range tests {
		if got := IsDailyNote(tt.name); got != tt.want {
			t.Errorf("IsDailyNote(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestValidDate(t *testing.T) {
	if !ValidDate("2025-03-01") {
		t.Error("expected 2025-03-01 to be valid")
	}
	for _, bad := range []string{"2025-3-1", "01-03-2025", "2025-03-32", "yesterday", ""} {
		if ValidDate(bad) {
			t.Errorf("expected %q to be invalid", bad)
		}
	}
}

func TestFormatLogLine(t *testing.T) {
	at := time.Date(2025, 3, 1, 14, 5, 0, 0, time.UTC)

	tests := []struct {
		name     string
		category string
		event    string
		details  string
		tags     []string
		want     string
	}{
		{
			name:     "full line",
			category: "health",
			event:    "Dentist appointment",
			details:  "root canal",
			tags:     []string{"health", "money"},
			want:     "- **14:05** [health] Dentist appointment: root canal #health #money",
		},
		{
			name:     "no details no tags",
			category: "misc",
			event:    "Walked the dog",
			want:     "- **14:05** [misc] Walked the dog",
		},
		{
			name:     "blank details skipped",
			category: "misc",
			event:    "Walked the dog",
			details:  "   ",
			tags:     []string{"", "  ", "pets"},
			want:     "- **14:05** [misc] Walked the dog #pets",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatLogLine(at, tt.category, tt.event, tt.details, tt.tags)
			if got != tt.want {
				t.Errorf("FormatLogLine = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseTags(t *testing.T) {
	got := ParseTags("health, money ,,  ")
	if len(got) != 2 || got[0] != "health" || got[1] != "money" {
		t.Errorf("ParseTags = %v, want [health money]", got)
	}
	if got := ParseTags(""); got != nil {
		t.Errorf("ParseTags(\"\") = %v, want nil", got)
	}
}

func TestFormatDistillBlock(t *testing.T) {
	at := time.Date(2025, 3, 2, 9, 30, 0, 0, time.UTC)
	kept := []string{"- team meeting", "- paid rent"}

	got := FormatDistillBlock("2025-03-01", at, kept, 5)
	want := strings.Join([]string{
		"## Distilled 2025-03-01",
		"- Source: [[Daily/2025-03-01]]",
		"- Updated: 2025-03-02 09:30",
		"- Kept: 2/5 events",
		"- team meeting",
		"- paid rent",
	}, "\n")

	if got != want {
		t.Errorf("FormatDistillBlock =\n%s\nwant\n%s", got, want)
	}
}
