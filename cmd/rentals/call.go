package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/aretw0/rentals/pkg/domain"
	"github.com/spf13/cobra"
)

var callCmd = &cobra.Command{
	Use:   "call <tool>",
	Short: "Invoke one tool and print its result",
	Long: `Invokes a single tool against the loaded catalog, the same way an MCP client would.

Examples:
  rentals call list_all
  rentals call get_details --arg id=boot-doctors
  rentals call recommend --input '{"need":"delivery to my condo"}'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pairs, _ := cmd.Flags().GetStringArray("arg")
		input, _ := cmd.Flags().GetString("input")

		callArgs, err := parseArgs(pairs)
		if err != nil {
			return err
		}
		if input != "" {
			if len(pairs) > 0 {
				return fmt.Errorf("--input and --arg cannot be combined")
			}
			if err := json.Unmarshal([]byte(input), &callArgs); err != nil {
				return fmt.Errorf("invalid --input: %w", err)
			}
		}

		logger, err := newLogger(cmd)
		if err != nil {
			return err
		}
		core, err := newServer(cmd, logger)
		if err != nil {
			return err
		}

		res := core.Call(cmdContext(cmd), domain.Call{Name: args[0], Arguments: callArgs})
		if res.IsError {
			fmt.Fprintln(cmd.ErrOrStderr(), res.Text())
			os.Exit(2)
		}
		fmt.Fprintln(cmd.OutOrStdout(), res.Text())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(callCmd)
	callCmd.Flags().StringArray("arg", nil, "Tool argument as key=value (repeatable)")
	callCmd.Flags().String("input", "", "Tool arguments as a JSON object")
}
