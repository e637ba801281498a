package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"lifememory/internal/application/commands"
	"lifememory/internal/ports"
)

// RegisterReadTools adds the read-only vault tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, repo ports.VaultRepository, cli ports.NoteCLI, index ports.LinkIndex) {
	s.AddTool(searchTool(), searchHandler(cli, index))
	s.AddTool(readNoteTool(), readNoteHandler(repo, cli))
	s.AddTool(vaultInfoTool(), vaultInfoHandler(repo))
}

// --- search ---

func searchTool() mcp.Tool {
	return mcp.NewTool("search",
		mcp.WithDescription("Search the memory vault by keyword. Uses the Obsidian CLI when installed, the local link index otherwise."),
		mcp.WithString("query",
			mcp.Description("Search query"),
			mcp.Required(),
		),
	)
}

func searchHandler(cli ports.NoteCLI, index ports.LinkIndex) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := req.GetString("query", "")
		if query == "" {
			return toolError(fmt.Errorf("query is required"))
		}

		report, err := commands.NewSearchCommand(cli, index, query).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(report), nil
	}
}

// --- read_note ---

func readNoteTool() mcp.Tool {
	return mcp.NewTool("read_note",
		mcp.WithDescription("Read one note from the vault. Provide exactly one of file or path."),
		mcp.WithString("file",
			mcp.Description("Note file name (e.g. NOW.md)"),
		),
		mcp.WithString("path",
			mcp.Description("Vault-relative note path (e.g. Daily/2025-03-01.md)"),
		),
	)
}

func readNoteHandler(repo ports.VaultRepository, cli ports.NoteCLI) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		file := req.GetString("file", "")
		path := req.GetString("path", "")

		content, err := commands.NewReadCommand(repo, cli, file, path).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(content), nil
	}
}

// --- vault_info ---

func vaultInfoTool() mcp.Tool {
	return mcp.NewTool("vault_info",
		mcp.WithDescription("Show the vault root, memory file location, and tracked daily notes."),
	)
}

func vaultInfoHandler(repo ports.VaultRepository) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		dailies, err := repo.ListDailyNotes()
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "vault: %s\n", repo.Root())
		fmt.Fprintf(&sb, "memory file: %s\n", repo.MemoryPath())
		fmt.Fprintf(&sb, "daily notes: %d\n", len(dailies))
		if len(dailies) > 0 {
			fmt.Fprintf(&sb, "latest: %s\n", dailies[len(dailies)-1])
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
