package service

import (
	"context"
	"fmt"

	"github.com/fundvista/fund-api/internal/logger"
	"github.com/fundvista/fund-api/internal/store"
	"github.com/fundvista/fund-api/models"
)

// fundService is the concrete implementation of FundService.
type fundService struct {
	fundRepository store.FundRepository
	logger         *logger.Logger
}

// NewFundService constructs a FundService wired to the given FundRepository.
func NewFundService(fundRepository store.FundRepository, logger *logger.Logger) FundService {
	return &fundService{
		fundRepository: fundRepository,
		logger:         logger,
	}
}

func (s *fundService) GetAllFunds(ctx context.Context) ([]models.Fund, error) {
	log := logger.FromContext(ctx)

	funds, err := s.fundRepository.FindAll(ctx)
	if err != nil {
		log.Err(err).Msg("listing funds failed")
		return nil, fmt.Errorf("listing funds failed: %w", err)
	}

	return funds, nil
}

func (s *fundService) GetFund(ctx context.Context, fundID int64) (models.Fund, error) {
	log := logger.FromContext(ctx)

	fund, err := s.fundRepository.FindByID(ctx, fundID)
	if err != nil {
		log.Err(err).Int64("fund_id", fundID).Msg("fund search by id failed")
		return models.Fund{}, fmt.Errorf("fund search by id failed: %w", err)
	}

	return fund, nil
}

func (s *fundService) GetAssetComposition(ctx context.Context, fundID int64) ([]models.AssetComposition, error) {
	log := logger.FromContext(ctx)

	composition, err := s.fundRepository.GetAssetComposition(ctx, fundID)
	if err != nil {
		log.Err(err).Int64("fund_id", fundID).Msg("asset composition lookup failed")
		return nil, fmt.Errorf("asset composition lookup failed: %w", err)
	}

	return composition, nil
}

func (s *fundService) GetManagementCompanyName(ctx context.Context, fundID int64) (string, error) {
	log := logger.FromContext(ctx)

	name, err := s.fundRepository.GetManagementCompany(ctx, fundID)
	if err != nil {
		log.Err(err).Int64("fund_id", fundID).Msg("management company lookup failed")
		return "", fmt.Errorf("management company lookup failed: %w", err)
	}

	return name, nil
}
