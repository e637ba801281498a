package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"lifememory/internal/adapters/filesystem"
	"lifememory/internal/adapters/tui"
	"lifememory/internal/config"
)

func main() {
	cfg, err := config.Resolve(config.StatePath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	vaultPath, err := config.ExpandPath(cfg.VaultPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	repo := filesystem.NewRepository(vaultPath)

	app := tui.NewApp(repo)

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
