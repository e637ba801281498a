package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lifememory/internal/adapters/filesystem"
	"lifememory/internal/adapters/obsidiancli"
	"lifememory/internal/adapters/sqlite"
	"lifememory/internal/config"
	"lifememory/internal/ports"
)

var (
	vaultFlag string
	cfg       *config.Config
	repo      ports.VaultRepository
	noteCLI   ports.NoteCLI
)

var rootCmd = &cobra.Command{
	Use:   "lifememory",
	Short: "CLI for managing a personal memory vault",
	Long: `lifememory manages a personal memory vault of markdown notes.

Events are logged to daily notes with automatic entity linking, and daily
events can be distilled into a long-term memory file. Rich operations
delegate to the Obsidian CLI when installed and fall back to direct
filesystem access otherwise.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		resolved, err := config.Resolve(config.StatePath())
		if err != nil {
			return err
		}
		if vaultFlag != "" {
			resolved.VaultPath = vaultFlag
		}
		vaultPath, err := config.ExpandPath(resolved.VaultPath)
		if err != nil {
			return err
		}

		cfg = resolved
		repo = filesystem.NewRepository(vaultPath)
		noteCLI = obsidiancli.NewClient(vaultPath, obsidiancli.WithBinary(cfg.Binary))
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&vaultFlag, "vault", "v", "", "path to the vault (overrides the configured path)")
}

// openIndex opens the local link index and rebuilds it from the current
// vault contents. The caller must Close it.
func openIndex() (ports.LinkIndex, error) {
	idx := sqlite.NewIndex()
	if err := idx.Open(repo.Root()); err != nil {
		return nil, err
	}
	if _, err := idx.Rebuild(); err != nil {
		idx.Close()
		return nil, err
	}
	return idx, nil
}
