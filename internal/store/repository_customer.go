package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/fundvista/fund-api/internal/logger"
	"github.com/fundvista/fund-api/models"
)

// customerRepository is the SQL-backed implementation of [CustomerRepository].
// It serves read-only lookups against the "customers", "customer_profile"
// and "customer_fund" tables.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type customerRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCustomerRepository constructs a [CustomerRepository] backed by the
// provided database connection and logger.
func NewCustomerRepository(db *DB, logger *logger.Logger) CustomerRepository {
	logger.Debug().Msg("creating customer repository")
	return &customerRepository{
		db:     db,
		logger: logger,
	}
}

// FindAll returns every customer record without the password hash.
// An empty table yields an empty slice; the list endpoint is the one lookup
// in this API for which zero rows is not an error.
func (r *customerRepository) FindAll(ctx context.Context) ([]models.Customer, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, findAllCustomers)
	if err != nil {
		log.Err(err).Str("func", "*customerRepository.FindAll").Msg("error: query failed")
		return nil, r.db.classify(err, ErrExecutingQuery)
	}
	defer rows.Close()

	customers := make([]models.Customer, 0)
	for rows.Next() {
		var c models.Customer
		if err := rows.Scan(&c.CustomerID, &c.Name, &c.Email, &c.CreatedAt); err != nil {
			log.Err(err).Str("func", "*customerRepository.FindAll").Msg("error: scanning error")
			return nil, errors.Join(ErrScanningRows, err)
		}
		customers = append(customers, c)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*customerRepository.FindAll").Msg("error: rows iteration failed")
		return nil, r.db.classify(err, ErrScanningRows)
	}

	return customers, nil
}

// FindByID retrieves a single customer by primary key.
//
// Error handling:
//   - sql.ErrNoRows → [ErrCustomerNotFound].
//   - Driver-level connection loss → [ErrDatabaseUnavailable].
//   - Any other failure → wrapped [ErrExecutingQuery].
func (r *customerRepository) FindByID(ctx context.Context, customerID int64) (models.Customer, error) {
	log := logger.FromContext(ctx)

	var c models.Customer
	row := r.db.QueryRowContext(ctx, findCustomerByID, customerID)
	if err := row.Scan(&c.CustomerID, &c.Name, &c.Email, &c.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Customer{}, ErrCustomerNotFound
		}

		log.Err(err).Str("func", "*customerRepository.FindByID").Msg("error: scanning error")
		return models.Customer{}, r.db.classify(err, ErrExecutingQuery)
	}

	return c, nil
}

// FindByEmail retrieves a customer by the unique email column. Unlike the
// other lookups it also scans the stored password hash, because its sole
// caller is the login flow.
func (r *customerRepository) FindByEmail(ctx context.Context, email string) (models.Customer, error) {
	log := logger.FromContext(ctx)

	var c models.Customer
	row := r.db.QueryRowContext(ctx, findCustomerByEmail, email)
	if err := row.Scan(&c.CustomerID, &c.Name, &c.Email, &c.PasswordHash, &c.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Customer{}, ErrCustomerNotFound
		}

		log.Err(err).Str("func", "*customerRepository.FindByEmail").Msg("error: scanning error")
		return models.Customer{}, r.db.classify(err, ErrExecutingQuery)
	}

	return c, nil
}

// GetRiskTolerance returns the risk classification from the customer's
// profile row, or [ErrRiskToleranceNotFound] when the customer has no
// profile (or does not exist — the two cases are not distinguished).
func (r *customerRepository) GetRiskTolerance(ctx context.Context, customerID int64) (string, error) {
	log := logger.FromContext(ctx)

	var riskTolerance string
	row := r.db.QueryRowContext(ctx, getRiskTolerance, customerID)
	if err := row.Scan(&riskTolerance); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrRiskToleranceNotFound
		}

		log.Err(err).Str("func", "*customerRepository.GetRiskTolerance").Msg("error: scanning error")
		return "", r.db.classify(err, ErrExecutingQuery)
	}

	return riskTolerance, nil
}

// GetInvestments returns the customer's fund holdings. An empty result set
// yields [ErrNoInvestmentsFound] whether the customer is unknown or simply
// holds no funds.
func (r *customerRepository) GetInvestments(ctx context.Context, customerID int64) ([]models.CustomerFund, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getCustomerInvestments, customerID)
	if err != nil {
		log.Err(err).Str("func", "*customerRepository.GetInvestments").Msg("error: query failed")
		return nil, r.db.classify(err, ErrExecutingQuery)
	}
	defer rows.Close()

	var investments []models.CustomerFund
	for rows.Next() {
		var cf models.CustomerFund
		if err := rows.Scan(&cf.CustomerID, &cf.FundID, &cf.InvestmentPercentage, &cf.InvestmentAmount, &cf.CreatedAt); err != nil {
			log.Err(err).Str("func", "*customerRepository.GetInvestments").Msg("error: scanning error")
			return nil, errors.Join(ErrScanningRows, err)
		}
		investments = append(investments, cf)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*customerRepository.GetInvestments").Msg("error: rows iteration failed")
		return nil, r.db.classify(err, ErrScanningRows)
	}

	if len(investments) == 0 {
		return nil, ErrNoInvestmentsFound
	}

	return investments, nil
}
