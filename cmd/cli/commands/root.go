package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jobdeck/jobdeck/internal/api/v1/client"
	"github.com/jobdeck/jobdeck/internal/api/v1/routes"
)

// flag names
const (
	flagServerAddress = "server-address"
)

// environment variable names
const (
	envServerAddress = "JOBDECK_SERVER_ADDRESS"
)

var (
	// apiClient is the shared API client instance
	apiClient client.Client
	// serverAddress holds the target API server address. Flag parsing sets this.
	serverAddress string
)

// initClient initializes the API client
func initClient() error {
	var err error
	opts := client.DefaultOptions()
	opts.BaseURL = serverAddress

	apiClient, err = client.NewClient(opts)
	return err
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&serverAddress, flagServerAddress, "s", routes.DefaultBaseURL,
		"Address of the jobdeck API server (env: JOBDECK_SERVER_ADDRESS)")

	RootCmd.AddCommand(GetJobsCmd())
}

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "jobdeck",
	Short: "jobdeck CLI - a command line interface for the jobdeck API",
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		// The env var only applies when the flag was not set explicitly.
		if !cmd.Flags().Changed(flagServerAddress) {
			if envAddr := os.Getenv(envServerAddress); envAddr != "" {
				serverAddress = envAddr
			}
		}
		return initClient()
	},
}
