package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/patterns"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of vehicles",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "vehicles version %s\n", strings.TrimSpace(patterns.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
