package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/fundvista/fund-api/internal/logger"
	"github.com/fundvista/fund-api/models"
)

// priceRepository is the SQL-backed implementation of [PriceRepository].
// It serves read-only lookups against the "price_data" time series.
type priceRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPriceRepository constructs a [PriceRepository] backed by the provided
// database connection and logger.
func NewPriceRepository(db *DB, logger *logger.Logger) PriceRepository {
	logger.Debug().Msg("creating price repository")
	return &priceRepository{
		db:     db,
		logger: logger,
	}
}

// GetLatest returns the newest price row for the fund. Rows are ordered by
// date and then by the synthetic price_id, so when two rows share the
// maximum date the most recently inserted one wins deterministically.
func (r *priceRepository) GetLatest(ctx context.Context, fundID int64) (models.PriceData, error) {
	log := logger.FromContext(ctx)

	var p models.PriceData
	row := r.db.QueryRowContext(ctx, getLatestPrice, fundID)
	if err := row.Scan(&p.PriceID, &p.FundID, &p.Date, &p.FundPrice, &p.BenchmarkPrice); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.PriceData{}, ErrPriceNotFound
		}

		log.Err(err).Str("func", "*priceRepository.GetLatest").Msg("error: scanning error")
		return models.PriceData{}, r.db.classify(err, ErrExecutingQuery)
	}

	return p, nil
}

// GetRange returns all price rows within the inclusive [start, end] window,
// ascending by date. The query is built with squirrel; an empty result set
// yields [ErrNoPricesInPeriod].
func (r *priceRepository) GetRange(ctx context.Context, fundID int64, start, end models.Date) ([]models.PriceData, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildPriceRangeQuery(fundID, start, end)
	if err != nil {
		log.Err(err).Str("func", "*priceRepository.GetRange").Msg("error: building query failed")
		return nil, errors.Join(ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*priceRepository.GetRange").Msg("error: query failed")
		return nil, r.db.classify(err, ErrExecutingQuery)
	}
	defer rows.Close()

	var prices []models.PriceData
	for rows.Next() {
		var p models.PriceData
		if err := rows.Scan(&p.PriceID, &p.FundID, &p.Date, &p.FundPrice, &p.BenchmarkPrice); err != nil {
			log.Err(err).Str("func", "*priceRepository.GetRange").Msg("error: scanning error")
			return nil, errors.Join(ErrScanningRows, err)
		}
		prices = append(prices, p)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*priceRepository.GetRange").Msg("error: rows iteration failed")
		return nil, r.db.classify(err, ErrScanningRows)
	}

	if len(prices) == 0 {
		return nil, ErrNoPricesInPeriod
	}

	return prices, nil
}

// GetByDate returns the single price row for the exact trading day or
// [ErrPriceNotFound]. (fund_id, date) is unique, so at most one row matches.
func (r *priceRepository) GetByDate(ctx context.Context, fundID int64, date models.Date) (models.PriceData, error) {
	log := logger.FromContext(ctx)

	var p models.PriceData
	row := r.db.QueryRowContext(ctx, getPriceByDate, fundID, date)
	if err := row.Scan(&p.PriceID, &p.FundID, &p.Date, &p.FundPrice, &p.BenchmarkPrice); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.PriceData{}, ErrPriceNotFound
		}

		log.Err(err).Str("func", "*priceRepository.GetByDate").Msg("error: scanning error")
		return models.PriceData{}, r.db.classify(err, ErrExecutingQuery)
	}

	return p, nil
}
