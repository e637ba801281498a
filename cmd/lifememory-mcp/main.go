package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"lifememory/internal/adapters/filesystem"
	mcpadapter "lifememory/internal/adapters/mcp"
	"lifememory/internal/adapters/obsidiancli"
	"lifememory/internal/adapters/sqlite"
	"lifememory/internal/config"
	"lifememory/internal/ports"
)

func main() {
	vaultFlag := flag.String("vault", "", "path to the vault (overrides the configured path)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := config.Resolve(config.StatePath())
	if err != nil {
		log.Fatalf("lifememory-mcp: %v", err)
	}
	if *vaultFlag != "" {
		cfg.VaultPath = *vaultFlag
	}
	vaultPath, err := config.ExpandPath(cfg.VaultPath)
	if err != nil {
		log.Fatalf("lifememory-mcp: %v", err)
	}

	repo := filesystem.NewRepository(vaultPath)
	cli := obsidiancli.NewClient(vaultPath, obsidiancli.WithBinary(cfg.Binary))

	// The link index backs search when the external CLI is missing. The
	// server still starts if it cannot be opened; search then reports the
	// failure per call.
	var index ports.LinkIndex
	idx := sqlite.NewIndex()
	if err := idx.Open(vaultPath); err != nil {
		logger.Warn("link index unavailable", "error", err)
	} else {
		defer idx.Close()
		if _, err := idx.Rebuild(); err != nil {
			logger.Warn("link index rebuild failed", "error", err)
		}
		index = idx
	}

	mcpServer := server.NewMCPServer(
		"lifememory-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check — returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, repo, cli, index)
	mcpadapter.RegisterWriteTools(mcpServer, repo, cli)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("lifememory-mcp: %v", err)
	}
}
