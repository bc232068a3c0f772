package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Show the authenticated user's profile",
	RunE: func(command *cobra.Command, _ []string) error {
		provCfg, err := resolveProviderConfig()
		if err != nil {
			return err
		}

		service := injectBridgeService()
		user, err := service.CurrentUser(command.Context(), provCfg)
		if err != nil {
			return err
		}

		fmt.Printf("login: %s\n", user.Login)
		fmt.Printf("name:  %s\n", user.Name)
		fmt.Printf("email: %s\n", user.Email)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(userCmd)
}
