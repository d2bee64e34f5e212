package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quizforge/backend/internal/generator"
	"github.com/quizforge/backend/internal/models"
)

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a numbered question set",
		RunE: func(cmd *cobra.Command, args []string) error {
			subject, _ := cmd.Flags().GetString("subject")
			difficulty, _ := cmd.Flags().GetString("difficulty")
			count, _ := cmd.Flags().GetInt("count")
			seed, _ := cmd.Flags().GetUint64("seed")
			asJSON, _ := cmd.Flags().GetBool("json")

			if subject == "" || difficulty == "" {
				return fmt.Errorf("--subject and --difficulty are required")
			}
			if count < 1 {
				return fmt.Errorf("--count must be at least 1, got %d", count)
			}

			var opts []generator.Option
			if seed != 0 {
				opts = append(opts, generator.WithSeed(seed))
			}
			questions := generator.New(nil, opts...).GenerateSet(subject, difficulty, count)
			if err := generator.ValidateSet(questions); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(questions)
			}
			printQuestions(out, questions)
			return nil
		},
	}

	cmd.Flags().String("subject", "", "Subject key or alias (e.g. matematik, tarih)")
	cmd.Flags().String("difficulty", "", "Difficulty tier (easy, medium, hard, expert)")
	cmd.Flags().Int("count", 5, "Number of questions")
	cmd.Flags().Uint64("seed", 0, "Seed for a reproducible set (0 = random)")
	cmd.Flags().Bool("json", false, "Print questions as JSON")
	return cmd
}

var optionLetters = [generator.OptionCount]string{"A", "B", "C", "D"}

func printQuestions(w io.Writer, questions []models.GeneratedQuestion) {
	for _, q := range questions {
		fmt.Fprintf(w, "%d. %s\n", q.QuestionNumber, q.Question)
		for i, o := range q.Options {
			marker := " "
			if i == q.CorrectIndex {
				marker = "*"
			}
			fmt.Fprintf(w, "  %s %s) %s\n", marker, optionLetters[i], o)
		}
		fmt.Fprintf(w, "  %s\n\n", q.Explanation)
	}

	dist := generator.IndexDistribution(questions)
	parts := make([]string, len(dist))
	for i, n := range dist {
		parts[i] = fmt.Sprintf("%s=%d", optionLetters[i], n)
	}
	fmt.Fprintf(w, "%d questions, answer positions %s\n", len(questions), strings.Join(parts, " "))
}
