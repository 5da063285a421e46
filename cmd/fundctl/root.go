package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/fundvista/fund-api/internal/adapter"
	"github.com/fundvista/fund-api/internal/logger"
)

var (
	apiAddress     string
	requestTimeout time.Duration
)

var rootCmd = &cobra.Command{
	Use:           "fundctl",
	Short:         "Query the fund API from the command line",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&apiAddress, "address", "a", "localhost:8000", "fund API address")
	rootCmd.PersistentFlags().DurationVar(&requestTimeout, "timeout", 15*time.Second, "request timeout")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(customersCmd)
	rootCmd.AddCommand(fundsCmd)
	rootCmd.AddCommand(pricesCmd)
}

// newAPIClient builds the HTTP client from the persistent flags.
func newAPIClient() (adapter.APIClient, error) {
	return adapter.NewHTTPAPIClient(apiAddress, requestTimeout, logger.Nop())
}

// printJSON renders v as indented JSON on stdout.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}

	fmt.Println(string(out))
	return nil
}

// parseID parses a positional numeric identifier argument.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", arg, err)
	}
	return id, nil
}
