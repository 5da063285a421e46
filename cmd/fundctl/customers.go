package main

import (
	"github.com/spf13/cobra"
)

var customersCmd = &cobra.Command{
	Use:   "customers",
	Short: "Inspect customers and their portfolios",
}

var customersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all customers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}

		customers, err := client.Customers(cmd.Context())
		if err != nil {
			return err
		}

		return printJSON(customers)
	},
}

var customersGetCmd = &cobra.Command{
	Use:   "get <customer-id>",
	Short: "Show one customer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		customerID, err := parseID(args[0])
		if err != nil {
			return err
		}

		client, err := newAPIClient()
		if err != nil {
			return err
		}

		customer, err := client.Customer(cmd.Context(), customerID)
		if err != nil {
			return err
		}

		return printJSON(customer)
	},
}

var customersRiskCmd = &cobra.Command{
	Use:   "risk <customer-id>",
	Short: "Show a customer's risk tolerance",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		customerID, err := parseID(args[0])
		if err != nil {
			return err
		}

		client, err := newAPIClient()
		if err != nil {
			return err
		}

		riskTolerance, err := client.RiskTolerance(cmd.Context(), customerID)
		if err != nil {
			return err
		}

		return printJSON(map[string]string{"risk_tolerance": riskTolerance})
	},
}

var customersInvestmentsCmd = &cobra.Command{
	Use:   "investments <customer-id>",
	Short: "List a customer's fund holdings",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		customerID, err := parseID(args[0])
		if err != nil {
			return err
		}

		client, err := newAPIClient()
		if err != nil {
			return err
		}

		investments, err := client.Investments(cmd.Context(), customerID)
		if err != nil {
			return err
		}

		return printJSON(investments)
	},
}

func init() {
	customersCmd.AddCommand(customersListCmd)
	customersCmd.AddCommand(customersGetCmd)
	customersCmd.AddCommand(customersRiskCmd)
	customersCmd.AddCommand(customersInvestmentsCmd)
}
