package models

// AssetManagementCompany represents a company owning zero or more funds.
type AssetManagementCompany struct {
	// AssetManagementCompanyID is the unique identifier of the company.
	AssetManagementCompanyID int64 `json:"asset_management_company_id"`

	// Name is the registered name of the company.
	Name string `json:"name"`
}

// TableName returns the name of the database table
// associated with the AssetManagementCompany model.
func (a AssetManagementCompany) TableName() string {
	return "asset_management_company"
}
