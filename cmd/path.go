package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aumai/edumentor/internal/learner"
	"github.com/aumai/edumentor/internal/pathgen"
	"github.com/aumai/edumentor/internal/report"
)

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Generate a personalised learning path for a learner",
	RunE: func(cmd *cobra.Command, args []string) error {
		learnerFile, _ := cmd.Flags().GetString("learner")
		subject, _ := cmd.Flags().GetString("subject")

		raw, err := os.ReadFile(learnerFile)
		if err != nil {
			return fmt.Errorf("read learner file: %w", err)
		}
		profile, err := learner.ParseProfile(raw)
		if err != nil {
			return fmt.Errorf("learner profile: %w", err)
		}

		lib, err := loadLibrary(cmd)
		if err != nil {
			return err
		}

		path := pathgen.New(lib).Generate(profile, subject)
		fmt.Println(report.Path(path, subject))
		return nil
	},
}

func init() {
	pathCmd.Flags().String("learner", "", "Path to JSON file with the learner profile")
	pathCmd.Flags().String("subject", "", "Subject name (e.g. math, science, hindi)")
	_ = pathCmd.MarkFlagRequired("learner")
	_ = pathCmd.MarkFlagRequired("subject")
}
