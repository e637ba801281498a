package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"lifememory/internal/application/commands"
	"lifememory/internal/ports"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the vault",
	Long: `Search the vault by keyword. Uses the Obsidian CLI when installed,
the local link index otherwise.

Examples:
  lifememory search plumber
  lifememory search "Jane Smith"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var index ports.LinkIndex
		if !noteCLI.IsAvailable() {
			idx, err := openIndex()
			if err != nil {
				return err
			}
			defer idx.Close()
			index = idx
		}

		report, err := commands.NewSearchCommand(noteCLI, index, args[0]).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(report)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
