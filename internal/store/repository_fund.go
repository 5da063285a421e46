package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/fundvista/fund-api/internal/logger"
	"github.com/fundvista/fund-api/models"
)

// fundRepository is the SQL-backed implementation of [FundRepository].
// It serves read-only lookups against the "fund", "asset_composition" and
// "asset_management_company" tables.
type fundRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewFundRepository constructs a [FundRepository] backed by the provided
// database connection and logger.
func NewFundRepository(db *DB, logger *logger.Logger) FundRepository {
	logger.Debug().Msg("creating fund repository")
	return &fundRepository{
		db:     db,
		logger: logger,
	}
}

// FindAll returns every fund record. An empty table yields an empty slice.
func (r *fundRepository) FindAll(ctx context.Context) ([]models.Fund, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, findAllFunds)
	if err != nil {
		log.Err(err).Str("func", "*fundRepository.FindAll").Msg("error: query failed")
		return nil, r.db.classify(err, ErrExecutingQuery)
	}
	defer rows.Close()

	funds := make([]models.Fund, 0)
	for rows.Next() {
		var f models.Fund
		if err := rows.Scan(&f.FundID, &f.Name, &f.FundType, &f.AssetManagementCompanyID, &f.CreatedAt); err != nil {
			log.Err(err).Str("func", "*fundRepository.FindAll").Msg("error: scanning error")
			return nil, errors.Join(ErrScanningRows, err)
		}
		funds = append(funds, f)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*fundRepository.FindAll").Msg("error: rows iteration failed")
		return nil, r.db.classify(err, ErrScanningRows)
	}

	return funds, nil
}

// FindByID retrieves a single fund by primary key or [ErrFundNotFound].
func (r *fundRepository) FindByID(ctx context.Context, fundID int64) (models.Fund, error) {
	log := logger.FromContext(ctx)

	var f models.Fund
	row := r.db.QueryRowContext(ctx, findFundByID, fundID)
	if err := row.Scan(&f.FundID, &f.Name, &f.FundType, &f.AssetManagementCompanyID, &f.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Fund{}, ErrFundNotFound
		}

		log.Err(err).Str("func", "*fundRepository.FindByID").Msg("error: scanning error")
		return models.Fund{}, r.db.classify(err, ErrExecutingQuery)
	}

	return f, nil
}

// GetAssetComposition returns the fund's holdings breakdown in store order.
// An empty result yields [ErrNoAssetComposition] whether the fund is
// unknown or simply has no composition rows.
func (r *fundRepository) GetAssetComposition(ctx context.Context, fundID int64) ([]models.AssetComposition, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getAssetComposition, fundID)
	if err != nil {
		log.Err(err).Str("func", "*fundRepository.GetAssetComposition").Msg("error: query failed")
		return nil, r.db.classify(err, ErrExecutingQuery)
	}
	defer rows.Close()

	var composition []models.AssetComposition
	for rows.Next() {
		var a models.AssetComposition
		if err := rows.Scan(&a.AssetName, &a.Proportion); err != nil {
			log.Err(err).Str("func", "*fundRepository.GetAssetComposition").Msg("error: scanning error")
			return nil, errors.Join(ErrScanningRows, err)
		}
		composition = append(composition, a)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*fundRepository.GetAssetComposition").Msg("error: rows iteration failed")
		return nil, r.db.classify(err, ErrScanningRows)
	}

	if len(composition) == 0 {
		return nil, ErrNoAssetComposition
	}

	return composition, nil
}

// GetManagementCompany resolves the name of the company managing the fund
// through the fund's foreign key, or [ErrManagementCompanyNotFound].
func (r *fundRepository) GetManagementCompany(ctx context.Context, fundID int64) (string, error) {
	log := logger.FromContext(ctx)

	var name string
	row := r.db.QueryRowContext(ctx, getManagementCompany, fundID)
	if err := row.Scan(&name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrManagementCompanyNotFound
		}

		log.Err(err).Str("func", "*fundRepository.GetManagementCompany").Msg("error: scanning error")
		return "", r.db.classify(err, ErrExecutingQuery)
	}

	return name, nil
}
