package main

import "github.com/spf13/cobra"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "quizgen",
		Short:         "Generate multiple choice quiz questions",
		Long:          "quizgen renders questions from the built-in template bank without running the server.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newSubjectsCmd())
	return root
}
