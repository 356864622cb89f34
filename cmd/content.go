package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/aumai/edumentor/internal/catalog"
	"github.com/aumai/edumentor/internal/report"
)

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Inspect and extend the content library",
}

var contentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List content units, optionally filtered by subject",
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := loadLibrary(cmd)
		if err != nil {
			return err
		}

		subject, _ := cmd.Flags().GetString("subject")
		var contents []catalog.Content
		if subject == "" {
			contents = lib.AllContent()
		} else {
			contents = lib.Search(subject, catalog.SearchFilter{})
		}
		fmt.Println(report.ContentTable(contents))
		return nil
	},
}

var contentAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Validate a content unit from a JSON file (or stdin) and echo it",
	RunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("file")

		var raw []byte
		var err error
		if file == "" || file == "-" {
			raw, err = io.ReadAll(cmd.InOrStdin())
		} else {
			raw, err = os.ReadFile(file)
		}
		if err != nil {
			return fmt.Errorf("read content: %w", err)
		}

		var c catalog.Content
		if err := json.Unmarshal(raw, &c); err != nil {
			return fmt.Errorf("content json: %w", err)
		}
		if c.ContentID == "" {
			c.ContentID = fmt.Sprintf("%s-custom-%s", c.Subject, uuid.NewString()[:8])
		}

		lib, err := loadLibrary(cmd)
		if err != nil {
			return err
		}
		if err := lib.Add(c); err != nil {
			return err
		}

		out, err := json.MarshalIndent(c, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	contentListCmd.Flags().String("subject", "", "Only list content for this subject")
	contentAddCmd.Flags().String("file", "", "Path to JSON file with the content unit (default: stdin)")

	contentCmd.AddCommand(contentListCmd)
	contentCmd.AddCommand(contentAddCmd)
}
