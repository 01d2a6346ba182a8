package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "notevault",
	Short: "notevault is a personal media library manager.",
	Long: `notevault manages a JSON-backed library of albums, artists, musics,
playlists and uploaded media files, exposed over a REST-like HTTP API.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
