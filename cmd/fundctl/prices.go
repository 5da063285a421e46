package main

import (
	"github.com/spf13/cobra"

	"github.com/fundvista/fund-api/models"
)

var pricesCmd = &cobra.Command{
	Use:   "prices",
	Short: "Inspect fund price history",
}

var pricesLatestCmd = &cobra.Command{
	Use:   "latest <fund-id>",
	Short: "Show the most recent price of a fund",
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

		price, err := client.LatestPrice(cmd.Context(), fundID)
		if err != nil {
			return err
		}

		return printJSON(price)
	},
}

var pricesRangeCmd = &cobra.Command{
	Use:   "range <fund-id> <start-date> <end-date>",
	Short: "List prices within an inclusive date window (YYYY-MM-DD)",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		fundID, err := parseID(args[0])
		if err != nil {
			return err
		}

		start, err := models.ParseDate(args[1])
		if err != nil {
			return err
		}

		end, err := models.ParseDate(args[2])
		if err != nil {
			return err
		}

		client, err := newAPIClient()
		if err != nil {
			return err
		}

		prices, err := client.PricesByPeriod(cmd.Context(), fundID, start, end)
		if err != nil {
			return err
		}

		return printJSON(prices)
	},
}

var pricesAtCmd = &cobra.Command{
	Use:   "at <fund-id> <date>",
	Short: "Show the price of a fund on an exact date (YYYY-MM-DD)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		fundID, err := parseID(args[0])
		if err != nil {
			return err
		}

		date, err := models.ParseDate(args[1])
		if err != nil {
			return err
		}

		client, err := newAPIClient()
		if err != nil {
			return err
		}

		price, err := client.PriceByDate(cmd.Context(), fundID, date)
		if err != nil {
			return err
		}

		return printJSON(price)
	},
}

func init() {
	pricesCmd.AddCommand(pricesLatestCmd)
	pricesCmd.AddCommand(pricesRangeCmd)
	pricesCmd.AddCommand(pricesAtCmd)
}
