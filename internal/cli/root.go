package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var port string

// Execute runs the CLI.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	envPort := os.Getenv("PORT")
	if envPort == "" {
		envPort = "8080"
	}

	cmd := &cobra.Command{
		Use:   "quiz-service",
		Short: "Session-authenticated multiple-choice quiz service",
	}

	cmd.PersistentFlags().StringVar(&port, "port", envPort, "port to listen on")
	cmd.AddCommand(NewServeCmd(&port))
	return cmd
}
