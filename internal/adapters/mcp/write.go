package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"lifememory/internal/application/commands"
	"lifememory/internal/ports"
)

// RegisterWriteTools adds the mutating vault tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, repo ports.VaultRepository, cli ports.NoteCLI) {
	s.AddTool(logEventTool(), logEventHandler(repo, cli))
	s.AddTool(distillTool(), distillHandler(repo))
}

// --- log_event ---

func logEventTool() mcp.Tool {
	return mcp.NewTool("log_event",
		mcp.WithDescription("Append a timestamped event to today's daily note. Known entity names are auto-linked."),
		mcp.WithString("category",
			mcp.Description("Event category (e.g. work, health, social)"),
			mcp.Required(),
		),
		mcp.WithString("event",
			mcp.Description("Short event description"),
			mcp.Required(),
		),
		mcp.WithString("details",
			mcp.Description("Optional details appended after the event"),
		),
		mcp.WithString("tags",
			mcp.Description("Optional comma-separated tags"),
		),
	)
}

func logEventHandler(repo ports.VaultRepository, cli ports.NoteCLI) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewLogEventCommand(repo, cli,
			req.GetString("category", ""),
			req.GetString("event", ""),
			req.GetString("details", ""),
			req.GetString("tags", ""),
		)

		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText("logged: " + result.Line), nil
	}
}

// --- distill ---

func distillTool() mcp.Tool {
	return mcp.NewTool("distill",
		mcp.WithDescription("Promote a day's high-signal events from its daily note into the long-term memory file."),
		mcp.WithString("date",
			mcp.Description("Day to distill (YYYY-MM-DD)"),
			mcp.Required(),
		),
	)
}

func distillHandler(repo ports.VaultRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewDistillCommand(repo, req.GetString("date", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if result.Outcome == commands.DistillNoEvents {
			return mcp.NewToolResultText("no-events"), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("distilled %s: kept %d/%d events into %s",
			result.Date, result.Kept, result.Total, result.MemoryPath)), nil
	}
}
