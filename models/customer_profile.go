package models

// CustomerProfile holds the investment profile attached to a single customer.
type CustomerProfile struct {
	// CustomerID references the owning customer.
	CustomerID int64 `json:"customer_id"`

	// RiskTolerance is a categorical classification of the customer's
	// appetite for risk (e.g. "conservative", "moderate", "aggressive").
	// The set of values is owned by the administrative process that
	// creates profiles; this service treats it as an opaque string.
	RiskTolerance string `json:"risk_tolerance"`
}

// TableName returns the name of the database table
// associated with the CustomerProfile model.
func (p CustomerProfile) TableName() string {
	return "customer_profile"
}
