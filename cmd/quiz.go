package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aumai/edumentor/internal/catalog"
	"github.com/aumai/edumentor/internal/report"
	"github.com/aumai/edumentor/internal/tui"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Take an interactive quiz from the content library",
	RunE: func(cmd *cobra.Command, args []string) error {
		contentID, _ := cmd.Flags().GetString("content-id")
		subject, _ := cmd.Flags().GetString("subject")
		learnerID, _ := cmd.Flags().GetString("learner-id")

		if contentID == "" && subject == "" {
			return fmt.Errorf("either --content-id or --subject is required")
		}

		lib, err := loadLibrary(cmd)
		if err != nil {
			return err
		}

		c, err := pickQuiz(lib, contentID, subject)
		if err != nil {
			return err
		}

		result, err := tui.Run(c, learnerID)
		if err != nil {
			return err
		}
		if result == nil {
			// Quiz abandoned before the last question.
			return nil
		}
		fmt.Println(report.Assessment(*result))
		return nil
	},
}

// pickQuiz resolves the quiz content unit, either by exact id or the first
// quiz unit found for the subject.
func pickQuiz(lib *catalog.Library, contentID, subject string) (catalog.Content, error) {
	if contentID != "" {
		c, ok := lib.ByID(contentID)
		if !ok {
			return catalog.Content{}, fmt.Errorf("no content with id %q", contentID)
		}
		if c.ContentType != catalog.TypeQuiz {
			return catalog.Content{}, fmt.Errorf("content %q is %s, not a quiz", contentID, c.ContentType)
		}
		return c, nil
	}

	for _, c := range lib.Search(subject, catalog.SearchFilter{}) {
		if c.ContentType == catalog.TypeQuiz {
			return c, nil
		}
	}
	return catalog.Content{}, fmt.Errorf("no quiz content found for subject %q", subject)
}

func init() {
	quizCmd.Flags().String("content-id", "", "Quiz content unit to play")
	quizCmd.Flags().String("subject", "", "Play the first quiz found for this subject")
	quizCmd.Flags().String("learner-id", "local-learner", "Learner identifier for the assessment result")
}
