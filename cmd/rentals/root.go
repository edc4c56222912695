package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/aretw0/rentals"
	"github.com/aretw0/rentals/internal/logging"
	"github.com/aretw0/rentals/pkg/adapters/file"
	loamAdapter "github.com/aretw0/rentals/pkg/adapters/loam"
	redisAdapter "github.com/aretw0/rentals/pkg/adapters/redis"
	"github.com/aretw0/rentals/pkg/catalog"
	"github.com/aretw0/rentals/pkg/observability"
	"github.com/aretw0/rentals/pkg/ports"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rentals",
	Short: "Rentals serves a ski rental shop catalog to AI agents",
	Long: `Rentals exposes a read-only catalog of ski and snowboard rental shops
as four tools (list_all, get_details, search, recommend) over MCP or HTTP.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// stdout may be carrying JSON-RPC
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("catalog", "", "Catalog file (.yaml/.yml/.json) or markdown directory; empty uses the built-in dataset")
	rootCmd.PersistentFlags().String("redis-addr", "", "Load the catalog from this Redis server instead")
	rootCmd.PersistentFlags().String("redis-key", redisAdapter.DefaultKey, "Redis list holding the catalog")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn or error")
}

// newLogger builds the stderr logger from --log-level.
func newLogger(cmd *cobra.Command) (*slog.Logger, error) {
	raw, _ := cmd.Flags().GetString("log-level")
	level, err := logging.ParseLevel(raw)
	if err != nil {
		return nil, err
	}
	logger := logging.New(level)
	slog.SetDefault(logger)
	return logger, nil
}

// newLoader picks the catalog source from the persistent flags.
// The returned close func is never nil.
func newLoader(cmd *cobra.Command) (ports.CatalogLoader, func(), error) {
	noop := func() {}

	if addr, _ := cmd.Flags().GetString("redis-addr"); addr != "" {
		key, _ := cmd.Flags().GetString("redis-key")
		c := redisAdapter.New(addr, "", 0, redisAdapter.WithKey(key))
		return c, func() { _ = c.Close() }, nil
	}

	path, _ := cmd.Flags().GetString("catalog")
	if path == "" {
		return catalog.NewLoader(), noop, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, noop, fmt.Errorf("catalog %s: %w", path, err)
	}
	if info.IsDir() {
		l, err := loamAdapter.Open(path)
		if err != nil {
			return nil, noop, err
		}
		return l, noop, nil
	}
	return file.NewLoader(path), noop, nil
}

// newServer loads the catalog and builds the tool server.
func newServer(cmd *cobra.Command, logger *slog.Logger, opts ...rentals.Option) (*rentals.Server, error) {
	loader, closeLoader, err := newLoader(cmd)
	if err != nil {
		return nil, err
	}
	defer closeLoader()

	opts = append([]rentals.Option{
		rentals.WithLoader(loader),
		rentals.WithLogger(logger),
		rentals.WithLifecycleHooks(observability.LoggingHooks(logger)),
	}, opts...)

	return rentals.New(cmdContext(cmd), opts...)
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// parseArgs turns repeated key=value pairs into call arguments.
func parseArgs(pairs []string) (map[string]any, error) {
	args := make(map[string]any, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid argument %q, expected key=value", p)
		}
		args[k] = v
	}
	return args, nil
}
