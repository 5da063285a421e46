package models

// PriceData is one row of a fund's daily price history.
// Rows are uniquely identified by (fund_id, date).
type PriceData struct {
	// PriceID is the synthetic ascending row identifier. It is not part
	// of the wire shape; it exists to make "latest price" deterministic
	// when two rows share the same maximum date.
	PriceID int64 `json:"-"`

	// FundID references the fund this price belongs to.
	FundID int64 `json:"fund_id"`

	// Date is the trading day this row describes.
	Date Date `json:"date"`

	// FundPrice is the fund's own closing price for the day.
	FundPrice float64 `json:"fund_price"`

	// BenchmarkPrice is the reference index price recorded alongside the
	// fund price for the same day.
	BenchmarkPrice float64 `json:"benchmark_price"`
}

// TableName returns the name of the database table
// associated with the PriceData model.
func (p PriceData) TableName() string {
	return "price_data"
}
