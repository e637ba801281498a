package commands

import (
	"context"
	"fmt"
	"time"

	"lifememory/internal/domain"
	"lifememory/internal/ports"
)

// DistillOutcome distinguishes a day with nothing to keep from a distilled one.
type DistillOutcome int

const (
	DistillDistilled DistillOutcome = iota
	DistillNoEvents
)

// DistillResult reports one distillation run.
type DistillResult struct {
	Outcome    DistillOutcome
	Date       string
	Kept       int
	Total      int
	MemoryPath string
}

// DistillCommand promotes a day's high-signal events into the memory file.
type DistillCommand struct {
	repo ports.VaultRepository
	now  func() time.Time

	Date string // YYYY-MM-DD
}

// NewDistillCommand creates a new DistillCommand.
func NewDistillCommand(repo ports.VaultRepository, date string) *DistillCommand {
	return &DistillCommand{
		repo: repo,
		now:  time.Now,
		Date: date,
	}
}

// Execute extracts, compresses, and appends the dated block. A missing daily
// note is a hard error; a daily note without events is a soft no-op.
func (c *DistillCommand) Execute(ctx context.Context) (*DistillResult, error) {
	if !domain.ValidDate(c.Date) {
		return nil, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", c.Date)
	}

	rel := c.repo.DailyNotePath(c.Date)
	if !c.repo.NoteExists(rel) {
		return nil, fmt.Errorf("daily note not found: %s", rel)
	}
	text, err := c.repo.ReadNote(rel)
	if err != nil {
		return nil, err
	}

	lines := domain.ExtractEventLines(text)
	if len(lines) == 0 {
		return &DistillResult{Outcome: DistillNoEvents, Date: c.Date}, nil
	}

	kept := domain.CompressEventLines(lines)
	block := domain.FormatDistillBlock(c.Date, c.now(), kept, len(lines))
	if err := c.repo.AppendMemory(block); err != nil {
		return nil, fmt.Errorf("failed to update memory file: %w", err)
	}

	return &DistillResult{
		Outcome:    DistillDistilled,
		Date:       c.Date,
		Kept:       len(kept),
		Total:      len(lines),
		MemoryPath: c.repo.MemoryPath(),
	}, nil
}
