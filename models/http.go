package models

// LoginRequest is the JSON body of POST /login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RiskToleranceResponse is the JSON body of
// GET /customers/{id}/risk-tolerance.
type RiskToleranceResponse struct {
	RiskTolerance string `json:"risk_tolerance"`
}

// AssetManagementCompanyResponse is the JSON body of
// GET /funds/{id}/asset-management-company.
type AssetManagementCompanyResponse struct {
	Name string `json:"name"`
}

// FundsResponse wraps the fund list for GET /funds, matching the wire
// shape the API has always produced.
type FundsResponse struct {
	Funds []Fund `json:"funds"`
}

// FundResponse is the success body of GET /funds/{id}.
type FundResponse struct {
	Fund Fund `json:"fund"`
}

// ErrorResponse is a body-level error object. The single-fund endpoint
// returns it with a 200 status for compatibility with historical clients;
// everywhere else errors carry a proper non-2xx status code.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is a generic informational body (e.g. the root route).
type MessageResponse struct {
	Message string `json:"message"`
}
