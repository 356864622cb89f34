package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aumai/edumentor/internal/report"
)

var subjectsCmd = &cobra.Command{
	Use:   "subjects",
	Short: "List available subjects in the content library",
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := loadLibrary(cmd)
		if err != nil {
			return err
		}
		fmt.Println(report.Subjects(lib))
		return nil
	},
}
