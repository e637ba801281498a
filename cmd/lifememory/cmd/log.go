package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"lifememory/internal/application/commands"
)

var (
	logCategory string
	logDetails  string
	logTags     string
)

var logCmd = &cobra.Command{
	Use:   "log <event>",
	Short: "Append an event to today's daily note",
	Long: `Append a timestamped event to today's daily note. Known entity names
(people, places, projects, vendors, events, and anything linked from the NOW
note) are automatically wrapped in wikilinks.

Examples:
  lifememory log -c social "Coffee with Jane Smith"
  lifememory log -c money -d "invoice 4411" -t home,urgent "Paid the plumber"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		event := strings.Join(args, " ")

		logCmd := commands.NewLogEventCommand(repo, noteCLI, logCategory, event, logDetails, logTags)
		result, err := logCmd.Execute(context.Background())
		if err != nil {
			return err
		}

		fmt.Println("logged:", result.Line)
		return nil
	},
}

func init() {
	logCmd.Flags().StringVarP(&logCategory, "category", "c", "", "event category (required)")
	logCmd.Flags().StringVarP(&logDetails, "details", "d", "", "details appended after the event")
	logCmd.Flags().StringVarP(&logTags, "tags", "t", "", "comma-separated tags")
	logCmd.MarkFlagRequired("category")
	rootCmd.AddCommand(logCmd)
}
