package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "Suggest open work items assigned to you, correlated to repositories",
	Long: `Queries each project for open work items assigned to the authenticated
user and associates every item with a repository (explicit Git commit link
first, then the project's first repository). Items without any repository
association are dropped.`,
	RunE: func(command *cobra.Command, _ []string) error {
		provCfg, err := resolveProviderConfig()
		if err != nil {
			return err
		}

		service := injectBridgeService()
		walk, err := service.ListSuggestedTasks(command.Context(), provCfg)
		if err != nil {
			return err
		}

		for _, task := range walk.Tasks {
			fmt.Printf("%s\t#%d\t%s\n", task.Repo, task.IssueNumber, task.Title)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tasksCmd)
}
