package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var branchesCmd = &cobra.Command{
	Use:   "branches <organization/project/repository>",
	Short: "List the branch refs of a repository",
	Args:  cobra.ExactArgs(1),
	RunE: func(command *cobra.Command, args []string) error {
		provCfg, err := resolveProviderConfig()
		if err != nil {
			return err
		}

		service := injectBridgeService()
		branches, err := service.ListBranches(command.Context(), provCfg, args[0])
		if err != nil {
			return err
		}

		for _, branch := range branches {
			fmt.Printf("%s\t%s\n", branch.Name, branch.CommitSHA)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(branchesCmd)
}
