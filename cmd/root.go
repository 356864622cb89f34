package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aumai/edumentor/internal/catalog"
)

var rootCmd = &cobra.Command{
	Use:   "edumentor",
	Short: "Personalised learning paths aligned with NCF 2023",
	Long:  "EduMentor — personalised learning path recommender for Indian school subjects, aligned with NCF 2023.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("content-dir", "", "Directory of YAML content packs loaded on top of the built-in library (overrides EDUMENTOR_CONTENT_DIR)")

	rootCmd.AddCommand(pathCmd)
	rootCmd.AddCommand(assessCmd)
	rootCmd.AddCommand(subjectsCmd)
	rootCmd.AddCommand(contentCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadLibrary builds the content library using --content-dir (highest
// priority), then the EDUMENTOR_CONTENT_DIR env var, on top of the built-in
// seed content.
func loadLibrary(cmd *cobra.Command) (*catalog.Library, error) {
	lib := catalog.NewLibrary()
	dir, _ := cmd.Flags().GetString("content-dir")
	if dir == "" {
		dir = envContentDir()
	}
	if dir != "" {
		if _, err := lib.AddDir(dir); err != nil {
			return nil, fmt.Errorf("load content packs: %w", err)
		}
	}
	return lib, nil
}

func envContentDir() string {
	return os.Getenv("EDUMENTOR_CONTENT_DIR")
}
