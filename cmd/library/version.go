package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/patterns"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of library",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "library version %s\n", strings.TrimSpace(patterns.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
