package models

import "time"

// Fund represents an investment vehicle managed by an asset management
// company and tracked with daily price history and asset composition.
type Fund struct {
	// FundID is the unique identifier of the fund.
	FundID int64 `json:"fund_id"`

	// Name is the marketed name of the fund.
	Name string `json:"name"`

	// FundType is a free-form classification (e.g. "equity", "bond").
	FundType string `json:"fund_type"`

	// AssetManagementCompanyID references the company managing this fund.
	AssetManagementCompanyID int64 `json:"asset_management_company_id"`

	// CreatedAt is the timestamp when the fund record was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Fund model.
func (f Fund) TableName() string {
	return "fund"
}
