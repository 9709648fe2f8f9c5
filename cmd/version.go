package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is set during build via -ldflags "-X main.Version=...".
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "logdash", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
