package models

import "time"

// CustomerFund is the join record linking a customer to a fund they hold.
// A customer may hold zero or more funds.
type CustomerFund struct {
	// CustomerID references the investing customer.
	CustomerID int64 `json:"customer_id"`

	// FundID references the held fund.
	FundID int64 `json:"fund_id"`

	// InvestmentPercentage is the share of the customer's portfolio
	// allocated to this fund.
	InvestmentPercentage float64 `json:"investment_percentage"`

	// InvestmentAmount is the invested amount in the account currency.
	InvestmentAmount float64 `json:"investment_amount"`

	// CreatedAt is the timestamp when the holding was recorded.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the CustomerFund model.
func (cf CustomerFund) TableName() string {
	return "customer_fund"
}
