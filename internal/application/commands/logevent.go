package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"lifememory/internal/domain"
	"lifememory/internal/ports"
)

// LogEventResult reports how an event was recorded.
type LogEventResult struct {
	Line      string
	Delegated bool // true when the external CLI handled the append
}

// LogEventCommand appends a timestamped, auto-woven event to today's daily
// note, via the external CLI when available.
type LogEventCommand struct {
	repo ports.VaultRepository
	cli  ports.NoteCLI
	now  func() time.Time

	Category string
	Event    string
	Details  string
	Tags     string // comma-separated
}

// NewLogEventCommand creates a new LogEventCommand.
func NewLogEventCommand(repo ports.VaultRepository, cli ports.NoteCLI, category, event, details, tags string) *LogEventCommand {
	return &LogEventCommand{
		repo:     repo,
		cli:      cli,
		now:      time.Now,
		Category: category,
		Event:    event,
		Details:  details,
		Tags:     tags,
	}
}

// Execute weaves entity links into the event text and appends the log line.
func (c *LogEventCommand) Execute(ctx context.Context) (*LogEventResult, error) {
	if strings.TrimSpace(c.Category) == "" {
		return nil, fmt.Errorf("category is required")
	}
	if strings.TrimSpace(c.Event) == "" {
		return nil, fmt.Errorf("event is required")
	}

	entities, err := buildEntityIndex(c.repo)
	if err != nil {
		return nil, fmt.Errorf("failed to build entity index: %w", err)
	}

	event := domain.Weave(c.Event, entities)
	details := domain.Weave(c.Details, entities)

	at := c.now()
	line := domain.FormatLogLine(at, c.Category, event, details, domain.ParseTags(c.Tags))

	if c.cli != nil && c.cli.IsAvailable() {
		if err := c.cli.DailyAppend("\n" + line); err != nil {
			return nil, fmt.Errorf("daily append failed: %w", err)
		}
		return &LogEventResult{Line: line, Delegated: true}, nil
	}

	if err := c.repo.AppendDaily(domain.Today(at), line); err != nil {
		return nil, err
	}
	return &LogEventResult{Line: line}, nil
}
