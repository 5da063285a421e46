package main

import (
	"github.com/spf13/cobra"
)

var fundsCmd = &cobra.Command{
	Use:   "funds",
	Short: "Inspect funds, their composition and owners",
}

var fundsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all funds",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}

		funds, err := client.Funds(cmd.Context())
		if err != nil {
			return err
		}

		return printJSON(funds)
	},
}

var fundsGetCmd = &cobra.Command{
	Use:   "get <fund-id>",
	Short: "Show one fund",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fundID, err := parseID(args[0])
		if err != nil {
			return err
		}

		client, err := newAPIClient()
		if err != nil {
			return err
		}

		fund, err := client.Fund(cmd.Context(), fundID)
		if err != nil {
			return err
		}

		return printJSON(fund)
	},
}

var fundsAssetsCmd = &cobra.Command{
	Use:   "assets <fund-id>",
	Short: "List a fund's asset composition",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fundID, err := parseID(args[0])
		if err != nil {
			return err
		}

		client, err := newAPIClient()
		if err != nil {
			return err
		}

		composition, err := client.AssetComposition(cmd.Context(), fundID)
		if err != nil {
			return err
		}

		return printJSON(composition)
	},
}

var fundsCompanyCmd = &cobra.Command{
	Use:   "company <fund-id>",
	Short: "Show the asset management company of a fund",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fundID, err := parseID(args[0])
		if err != nil {
			return err
		}

		client, err := newAPIClient()
		if err != nil {
			return err
		}

		name, err := client.ManagementCompany(cmd.Context(), fundID)
		if err != nil {
			return err
		}

		return printJSON(map[string]string{"name": name})
	},
}

func init() {
	fundsCmd.AddCommand(fundsListCmd)
	fundsCmd.AddCommand(fundsGetCmd)
	fundsCmd.AddCommand(fundsAssetsCmd)
	fundsCmd.AddCommand(fundsCompanyCmd)
}
