package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quizforge/backend/internal/generator"
)

func newSubjectsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "subjects",
		Short: "List subjects, their difficulty tiers and accepted aliases",
		RunE: func(cmd *cobra.Command, args []string) error {
			bank := generator.DefaultBank()
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "%-12s  %-28s  %s\n", "Subject", "Difficulties", "Aliases")
			fmt.Fprintln(out, strings.Repeat("─", 70))
			for _, s := range bank.Subjects() {
				tiers := bank.Difficulties(s)
				names := make([]string, len(tiers))
				for i, d := range tiers {
					names[i] = string(d)
				}
				fmt.Fprintf(out, "%-12s  %-28s  %s\n", s, strings.Join(names, ","), strings.Join(generator.AliasesFor(s), ", "))
			}

			fmt.Fprintf(out, "\n%d templates\n", bank.Size())
			return nil
		},
	}
}
