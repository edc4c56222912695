package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/rentals"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of rentals",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "rentals version %s\n", strings.TrimSpace(rentals.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
