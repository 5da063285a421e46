package main

import (
	"github.com/spf13/cobra"

	"github.com/fundvista/fund-api/models"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login --email <email> --password <password>",
	Short: "Check credentials and print the matching customer",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}

		customer, err := client.Login(cmd.Context(), models.LoginRequest{
			Email:    loginEmail,
			Password: loginPassword,
		})
		if err != nil {
			return err
		}

		return printJSON(customer)
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "customer email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "customer password")
	loginCmd.MarkFlagRequired("email")
	loginCmd.MarkFlagRequired("password")
}
