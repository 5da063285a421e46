package service

import (
	"context"
	"fmt"

	"github.com/fundvista/fund-api/internal/logger"
	"github.com/fundvista/fund-api/internal/store"
	"github.com/fundvista/fund-api/models"
)

// priceService is the concrete implementation of PriceService.
type priceService struct {
	priceRepository store.PriceRepository
	logger          *logger.Logger
}

// NewPriceService constructs a PriceService wired to the given
// PriceRepository.
func NewPriceService(priceRepository store.PriceRepository, logger *logger.Logger) PriceService {
	return &priceService{
		priceRepository: priceRepository,
		logger:          logger,
	}
}

func (s *priceService) GetLatestPrice(ctx context.Context, fundID int64) (models.PriceData, error) {
	log := logger.FromContext(ctx)

	price, err := s.priceRepository.GetLatest(ctx, fundID)
	if err != nil {
		log.Err(err).Int64("fund_id", fundID).Msg("latest price lookup failed")
		return models.PriceData{}, fmt.Errorf("latest price lookup failed: %w", err)
	}

	return price, nil
}

// GetPricesByPeriod returns the fund's price rows within the inclusive
// [start, end] window, ascending by date.
//
// A window where start is after end can never match anything, so it is
// rejected up front with ErrInvalidDateRange instead of being reported as
// an empty (not-found) result.
func (s *priceService) GetPricesByPeriod(ctx context.Context, fundID int64, start, end models.Date) ([]models.PriceData, error) {
	log := logger.FromContext(ctx)

	if start.After(end.Time) {
		log.Error().
			Int64("fund_id", fundID).
			Str("start_date", start.String()).
			Str("end_date", end.String()).
			Msg("invalid date range")
		return nil, ErrInvalidDateRange
	}

	prices, err := s.priceRepository.GetRange(ctx, fundID, start, end)
	if err != nil {
		log.Err(err).Int64("fund_id", fundID).Msg("price range lookup failed")
		return nil, fmt.Errorf("price range lookup failed: %w", err)
	}

	return prices, nil
}

func (s *priceService) GetPriceByDate(ctx context.Context, fundID int64, date models.Date) (models.PriceData, error) {
	log := logger.FromContext(ctx)

	price, err := s.priceRepository.GetByDate(ctx, fundID, date)
	if err != nil {
		log.Err(err).Int64("fund_id", fundID).Str("date", date.String()).Msg("price by date lookup failed")
		return models.PriceData{}, fmt.Errorf("price by date lookup failed: %w", err)
	}

	return price, nil
}
