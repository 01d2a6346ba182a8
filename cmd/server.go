package cmd

import (
	"notevault/server"

	"github.com/spf13/cobra"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the notevault HTTP server",
	Long:  `Start the HTTP server that exposes the library management API and the file upload endpoint.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return server.Start()
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
