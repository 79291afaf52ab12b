package cmd

import (
	"github.com/spf13/cobra"

	"camera-control/config"
)

func Root(config *config.Config) *cobra.Command {
	rootCmd := &cobra.Command{Use: "camera-control"}
	rootCmd.AddCommand(server(config))
	return rootCmd
}
