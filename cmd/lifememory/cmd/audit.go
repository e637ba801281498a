package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"lifememory/internal/application/commands"
	"lifememory/internal/ports"
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Run graph health checks",
	Long: `Report unresolved links, orphaned notes, and dead-end notes. Uses the
Obsidian CLI when installed, the local link index otherwise. A check that
cannot run is reported as unavailable.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var index ports.LinkIndex
		if !noteCLI.IsAvailable() {
			idx, err := openIndex()
			if err == nil {
				defer idx.Close()
				index = idx
			}
		}

		sections := commands.NewAuditCommand(noteCLI, index).Execute(context.Background())
		for _, s := range sections {
			fmt.Printf("## %s\n", s.Name)
			if !s.Available {
				fmt.Printf("%s: unavailable (%s)\n", s.Name, s.Report)
				continue
			}
			fmt.Println(s.Report)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(auditCmd)
}
