package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/fundvista/fund-api/models"
)

// CustomerRepository is the data-access contract for customer records and
// the records hanging off them (profile, holdings).
type CustomerRepository interface {
	// FindAll returns every customer. An empty store yields an empty
	// slice, not an error.
	FindAll(ctx context.Context) ([]models.Customer, error)

	// FindByID returns the customer with the given id or ErrCustomerNotFound.
	FindByID(ctx context.Context, customerID int64) (models.Customer, error)

	// FindByEmail returns the customer with the given email, including the
	// stored password hash, or ErrCustomerNotFound. Used by login.
	FindByEmail(ctx context.Context, email string) (models.Customer, error)

	// GetRiskTolerance returns the customer's risk classification or
	// ErrRiskToleranceNotFound when no profile row exists.
	GetRiskTolerance(ctx context.Context, customerID int64) (string, error)

	// GetInvestments returns the customer's fund holdings or
	// ErrNoInvestmentsFound when the result set is empty.
	GetInvestments(ctx context.Context, customerID int64) ([]models.CustomerFund, error)
}

// FundRepository is the data-access contract for fund records.
type FundRepository interface {
	// FindAll returns every fund. An empty store yields an empty slice.
	FindAll(ctx context.Context) ([]models.Fund, error)

	// FindByID returns the fund with the given id or ErrFundNotFound.
	FindByID(ctx context.Context, fundID int64) (models.Fund, error)

	// GetAssetComposition returns the fund's holdings breakdown in store
	// order, or ErrNoAssetComposition when the result set is empty.
	GetAssetComposition(ctx context.Context, fundID int64) ([]models.AssetComposition, error)

	// GetManagementCompany returns the name of the company managing the
	// fund, or ErrManagementCompanyNotFound.
	GetManagementCompany(ctx context.Context, fundID int64) (string, error)
}

// PriceRepository is the data-access contract for fund price history.
type PriceRepository interface {
	// GetLatest returns the price row with the maximum date for the fund.
	// When two rows share the maximum date the one with the highest
	// synthetic row id wins. Returns ErrPriceNotFound when the fund has no
	// price rows.
	GetLatest(ctx context.Context, fundID int64) (models.PriceData, error)

	// GetRange returns all price rows with start <= date <= end, ascending
	// by date, or ErrNoPricesInPeriod when the result set is empty.
	GetRange(ctx context.Context, fundID int64, start, end models.Date) ([]models.PriceData, error)

	// GetByDate returns the single price row for the exact date or
	// ErrPriceNotFound.
	GetByDate(ctx context.Context, fundID int64, date models.Date) (models.PriceData, error)
}
