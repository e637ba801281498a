package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"lifememory/internal/application/commands"
)

var (
	readFile string
	readPath string
)

var readCmd = &cobra.Command{
	Use:   "read",
	Short: "Read a note",
	Long: `Read one note, selected by file name or by vault-relative path.
Exactly one of --file and --path must be given.

Examples:
  lifememory read --file NOW.md
  lifememory read --path Daily/2025-03-01.md`,
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := commands.NewReadCommand(repo, noteCLI, readFile, readPath).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(content)
		return nil
	},
}

func init() {
	readCmd.Flags().StringVar(&readFile, "file", "", "note file name")
	readCmd.Flags().StringVar(&readPath, "path", "", "vault-relative note path")
	rootCmd.AddCommand(readCmd)
}
