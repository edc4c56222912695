package main

import (
	"fmt"
	"os"

	"github.com/aretw0/rentals"
	"github.com/aretw0/rentals/internal/presentation/tui"
	redisAdapter "github.com/aretw0/rentals/pkg/adapters/redis"
	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the loaded catalog",
	Long: `Loads the catalog from the configured source and prints it.
On a terminal the records are rendered as styled markdown; otherwise as JSON.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")

		logger, err := newLogger(cmd)
		if err != nil {
			return err
		}
		core, err := newServer(cmd, logger)
		if err != nil {
			return err
		}
		shops := core.Store().GetAll()

		if format == "auto" {
			format = "json"
			if tui.IsTerminal(os.Stdout) {
				format = "markdown"
			}
		}

		switch format {
		case "json":
			out, err := rentals.Encode(shops)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
		case "markdown":
			render, err := tui.NewRenderer()
			if err != nil {
				return err
			}
			out, err := render(tui.CatalogMarkdown(shops))
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
		default:
			return fmt.Errorf("unknown format: %s. Supported: auto, json, markdown", format)
		}
		return nil
	},
}

var catalogPushCmd = &cobra.Command{
	Use:   "push",
	Short: "Publish the loaded catalog to a Redis list",
	Long: `Loads the catalog from --catalog (or the built-in dataset) and replaces the
Redis list --to-key on --to-addr with it, one JSON document per record.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("to-addr")
		key, _ := cmd.Flags().GetString("to-key")

		logger, err := newLogger(cmd)
		if err != nil {
			return err
		}
		core, err := newServer(cmd, logger)
		if err != nil {
			return err
		}
		shops := core.Store().GetAll()

		target := redisAdapter.New(addr, "", 0, redisAdapter.WithKey(key))
		defer target.Close()

		if err := target.Publish(cmdContext(cmd), shops); err != nil {
			return err
		}
		logger.Info("catalog published", "addr", addr, "key", target.Key(), "records", len(shops))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.Flags().String("format", "auto", "Output format: auto, json or markdown")

	catalogCmd.AddCommand(catalogPushCmd)
	catalogPushCmd.Flags().String("to-addr", "localhost:6379", "Redis server to publish to")
	catalogPushCmd.Flags().String("to-key", redisAdapter.DefaultKey, "Redis list to replace")
}
