package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
//
// The "not found" family is deliberately per-resource: each lookup surfaces
// its own sentinel so the HTTP layer can attach a resource-specific message.
// For filtered multi-row lookups the sentinel covers both "the key does not
// exist" and "the key exists but has no rows" — the two cases are not
// distinguished, which is a long-standing contract of this API.
var (
	// ErrCustomerNotFound is returned when a customer lookup by id or
	// email matches no row.
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrRiskToleranceNotFound is returned when a customer has no
	// investment profile row.
	ErrRiskToleranceNotFound = errors.New("risk tolerance not found for the given customer")

	// ErrNoInvestmentsFound is returned when a customer holds no funds.
	ErrNoInvestmentsFound = errors.New("no investments found for the given customer")

	// ErrFundNotFound is returned when a fund lookup by id matches no row.
	ErrFundNotFound = errors.New("fund not found")

	// ErrPriceNotFound is returned when a fund has no price row for the
	// requested lookup (latest or exact date).
	ErrPriceNotFound = errors.New("fund price not found")

	// ErrNoPricesInPeriod is returned when a date-range price query
	// produces an empty result set.
	ErrNoPricesInPeriod = errors.New("no fund prices found for the given period")

	// ErrNoAssetComposition is returned when a fund has no asset
	// composition rows.
	ErrNoAssetComposition = errors.New("no asset composition found for the given fund")

	// ErrManagementCompanyNotFound is returned when a fund's owning asset
	// management company cannot be resolved.
	ErrManagementCompanyNotFound = errors.New("asset management company not found for the given fund")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrDatabaseUnavailable is returned when the database cannot be
	// reached at all (connection loss, server shutting down). It maps to a
	// service-unavailable response, distinguishable from any not-found
	// condition.
	ErrDatabaseUnavailable = errors.New("database is unavailable")

	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT query against
	// the database fails for a reason other than unavailability.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan result row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan result rows")
)
