package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"lifememory/internal/config"
)

var setVaultCmd = &cobra.Command{
	Use:   "set-vault <path>",
	Short: "Persist the vault path",
	Long: `Persist the vault path in the state file so future invocations use it.

Examples:
  lifememory set-vault ~/notes/life`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.ExpandPath(args[0])
		if err != nil {
			return err
		}

		if err := config.Save(config.StatePath(), &config.Config{
			VaultPath: path,
			Binary:    cfg.Binary,
		}); err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

var showVaultCmd = &cobra.Command{
	Use:   "show-vault",
	Short: "Print the current vault path",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(repo.Root())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(setVaultCmd)
	rootCmd.AddCommand(showVaultCmd)
}
