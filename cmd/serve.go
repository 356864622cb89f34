package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aumai/edumentor/internal/api"
)

// educationalDisclaimer is printed before the API server starts.
const educationalDisclaimer = "This tool provides AI-assisted educational recommendations only." +
	" Learning plans should be reviewed by qualified educators." +
	" This tool does not replace professional pedagogical assessment."

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the EduMentor API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		host, _ := cmd.Flags().GetString("host")
		port, _ := cmd.Flags().GetInt("port")

		fmt.Printf("\nDISCLAIMER: %s\n\n", educationalDisclaimer)

		lib, err := loadLibrary(cmd)
		if err != nil {
			return err
		}

		log := slog.New(slog.NewTextHandler(os.Stderr, nil))
		return api.NewServer(lib, log).ListenAndServe(host, port)
	},
}

func init() {
	serveCmd.Flags().String("host", "127.0.0.1", "Host to bind to")
	serveCmd.Flags().Int("port", 8000, "Port to serve on")
}
