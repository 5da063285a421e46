package models

// AssetComposition is one asset-class line of a fund's holdings breakdown.
// Proportions are stored as fractions of the fund but are not validated to
// sum to one; the administrative process owns that discipline.
type AssetComposition struct {
	// AssetName is the asset class or instrument name.
	AssetName string `json:"asset_name"`

	// Proportion is the fraction of the fund attributable to the asset.
	Proportion float64 `json:"proportion"`
}

// TableName returns the name of the database table
// associated with the AssetComposition model.
func (a AssetComposition) TableName() string {
	return "asset_composition"
}
