package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/aretw0/rentals"
	"github.com/aretw0/rentals/internal/logging"
	"github.com/spf13/cobra"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the tools the server exposes",
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")

		// Descriptors do not depend on the catalog.
		core, err := rentals.New(cmdContext(cmd), rentals.WithLogger(logging.NewNop()))
		if err != nil {
			return err
		}

		if asJSON {
			out, err := rentals.Encode(core.Tools())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		for _, t := range core.Tools() {
			required := ""
			for _, f := range t.RequiredFields() {
				required += " <" + f + ">"
			}
			fmt.Fprintf(w, "%s%s\t%s\n", t.Name, required, t.Description)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(toolsCmd)
	toolsCmd.Flags().Bool("json", false, "Print descriptors as JSON")
}
