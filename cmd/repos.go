package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var reposCmd = &cobra.Command{
	Use:   "repos",
	Short: "List all repositories reachable with the configured credentials",
	Long: `Walks every organization and project visible to the configured Personal
Access Token and prints the repositories found as organization/project/repository.
The walk is best effort: failing projects or organizations are skipped and
reported, not fatal.`,
	RunE: func(command *cobra.Command, _ []string) error {
		provCfg, err := resolveProviderConfig()
		if err != nil {
			return err
		}

		service := injectBridgeService()
		walk, err := service.ListRepositories(command.Context(), provCfg)
		if err != nil {
			return err
		}

		for _, repo := range walk.Repositories {
			fmt.Println(repo.FullName)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reposCmd)
}
