package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aumai/edumentor/internal/assess"
	"github.com/aumai/edumentor/internal/report"
)

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Evaluate learner answers and print an assessment result",
	RunE: func(cmd *cobra.Command, args []string) error {
		learnerID, _ := cmd.Flags().GetString("learner-id")
		subject, _ := cmd.Flags().GetString("subject")
		answersFile, _ := cmd.Flags().GetString("answers")

		raw, err := os.ReadFile(answersFile)
		if err != nil {
			return fmt.Errorf("read answers file: %w", err)
		}
		answers, err := assess.ParseAnswers(raw)
		if err != nil {
			return fmt.Errorf("answers: %w", err)
		}

		result := assess.NewEngine().Evaluate(learnerID, subject, answers)
		fmt.Println(report.Assessment(result))
		return nil
	},
}

func init() {
	assessCmd.Flags().String("learner-id", "", "Learner identifier")
	assessCmd.Flags().String("subject", "", "Subject being assessed")
	assessCmd.Flags().String("answers", "", "Path to JSON file with a list of answer objects")
	_ = assessCmd.MarkFlagRequired("learner-id")
	_ = assessCmd.MarkFlagRequired("subject")
	_ = assessCmd.MarkFlagRequired("answers")
}
