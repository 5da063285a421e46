package service

import (
	"context"
	"fmt"

	"github.com/fundvista/fund-api/internal/logger"
	"github.com/fundvista/fund-api/internal/store"
	"github.com/fundvista/fund-api/models"
)

// customerService is the concrete implementation of CustomerService.
// It is a thin delegation layer: every lookup maps one-to-one onto a
// repository call, with request-scoped logging on failure.
type customerService struct {
	customerRepository store.CustomerRepository
	logger             *logger.Logger
}

// NewCustomerService constructs a CustomerService wired to the given
// CustomerRepository.
func NewCustomerService(customerRepository store.CustomerRepository, logger *logger.Logger) CustomerService {
	return &customerService{
		customerRepository: customerRepository,
		logger:             logger,
	}
}

func (s *customerService) GetAllCustomers(ctx context.Context) ([]models.Customer, error) {
	log := logger.FromContext(ctx)

	customers, err := s.customerRepository.FindAll(ctx)
	if err != nil {
		log.Err(err).Msg("listing customers failed")
		return nil, fmt.Errorf("listing customers failed: %w", err)
	}

	return customers, nil
}

func (s *customerService) GetCustomer(ctx context.Context, customerID int64) (models.Customer, error) {
	log := logger.FromContext(ctx)

	customer, err := s.customerRepository.FindByID(ctx, customerID)
	if err != nil {
		log.Err(err).Int64("customer_id", customerID).Msg("customer search by id failed")
		return models.Customer{}, fmt.Errorf("customer search by id failed: %w", err)
	}

	return customer, nil
}

func (s *customerService) GetRiskTolerance(ctx context.Context, customerID int64) (string, error) {
	log := logger.FromContext(ctx)

	riskTolerance, err := s.customerRepository.GetRiskTolerance(ctx, customerID)
	if err != nil {
		log.Err(err).Int64("customer_id", customerID).Msg("risk tolerance lookup failed")
		return "", fmt.Errorf("risk tolerance lookup failed: %w", err)
	}

	return riskTolerance, nil
}

func (s *customerService) GetInvestments(ctx context.Context, customerID int64) ([]models.CustomerFund, error) {
	log := logger.FromContext(ctx)

	investments, err := s.customerRepository.GetInvestments(ctx, customerID)
	if err != nil {
		log.Err(err).Int64("customer_id", customerID).Msg("investments lookup failed")
		return nil, fmt.Errorf("investments lookup failed: %w", err)
	}

	return investments, nil
}
