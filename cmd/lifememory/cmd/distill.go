package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"lifememory/internal/application/commands"
)

var distillCmd = &cobra.Command{
	Use:   "distill <date>",
	Short: "Promote daily events to the memory file",
	Long: `Extract the Events section of a day's daily note, compress it to the
high-signal subset, and append a dated block to the memory file.

Examples:
  lifememory distill 2025-03-01`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		distillCmd := commands.NewDistillCommand(repo, args[0])
		result, err := distillCmd.Execute(context.Background())
		if err != nil {
			return err
		}

		if result.Outcome == commands.DistillNoEvents {
			fmt.Println("no-events")
			return nil
		}
		fmt.Printf("distilled %s: kept %d/%d events into %s\n",
			result.Date, result.Kept, result.Total, result.MemoryPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(distillCmd)
}
