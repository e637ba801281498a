package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"lifememory/internal/application/commands"
)

var organizeApply bool

var organizeCmd = &cobra.Command{
	Use:   "organize",
	Short: "Normalize the vault layout",
	Long: `Move root-level identity, context, and daily notes into their folders
and merge the standard rules into .obsidianignore. Dry-run by default;
pass --apply to perform the moves.

Examples:
  lifememory organize
  lifememory organize --apply`,
	RunE: func(cmd *cobra.Command, args []string) error {
		report, err := commands.NewOrganizeCommand(repo, organizeApply).Execute(context.Background())
		if err != nil {
			return err
		}

		action := "DRY-RUN"
		if report.Applied {
			action = "MOVE"
		}
		for _, m := range report.Moves {
			fmt.Printf("[%s] %s -> %s\n", action, m.From, m.To)
		}
		writeAction := "DRY-RUN"
		if report.Applied {
			writeAction = "WRITE"
		}
		fmt.Printf("[%s] .obsidianignore (%d rules)\n", writeAction, report.IgnoreRules)
		return nil
	},
}

func init() {
	organizeCmd.Flags().BoolVar(&organizeApply, "apply", false, "apply changes (default is dry-run)")
	rootCmd.AddCommand(organizeCmd)
}
