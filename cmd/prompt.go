package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/gitbridge/infrastructure/prompt"
)

var (
	promptOutput      string
	promptMarkdown    bool
	promptLineNumbers bool
)

var promptCmd = &cobra.Command{
	Use:   "prompt <file>...",
	Short: "Concatenate files into a single prompt-formatted document",
	Long: `Runs the external files-to-prompt tool over the given files and prints
the combined document. Use --output to also keep the result on disk.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(command *cobra.Command, args []string) error {
		runner := prompt.NewRunnerWithBinary(resolvePromptBinary())

		content, err := runner.Run(command.Context(), args, prompt.Options{
			OutputFile:  promptOutput,
			Markdown:    promptMarkdown,
			LineNumbers: promptLineNumbers,
		})
		if err != nil {
			return err
		}

		fmt.Print(content)
		return nil
	},
}

func init() {
	promptCmd.Flags().StringVarP(&promptOutput, "output", "o", "",
		"Write the document to this file as well")
	promptCmd.Flags().BoolVar(&promptMarkdown, "markdown", false,
		"Output Markdown with fenced code blocks")
	promptCmd.Flags().BoolVar(&promptLineNumbers, "line-numbers", false,
		"Add line numbers to the output")
	rootCmd.AddCommand(promptCmd)
}
