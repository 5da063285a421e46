package service

import (
	"context"

	"github.com/fundvista/fund-api/models"
)

// AuthService performs the one-shot credential check for POST /login.
// No session or token is issued; a successful login simply returns the
// customer's public fields.
type AuthService interface {
	Login(ctx context.Context, request models.LoginRequest) (models.Customer, error)
}

// CustomerService serves customer lookups.
type CustomerService interface {
	GetAllCustomers(ctx context.Context) ([]models.Customer, error)
	GetCustomer(ctx context.Context, customerID int64) (models.Customer, error)
	GetRiskTolerance(ctx context.Context, customerID int64) (string, error)
	GetInvestments(ctx context.Context, customerID int64) ([]models.CustomerFund, error)
}

// FundService serves fund lookups.
type FundService interface {
	GetAllFunds(ctx context.Context) ([]models.Fund, error)
	GetFund(ctx context.Context, fundID int64) (models.Fund, error)
	GetAssetComposition(ctx context.Context, fundID int64) ([]models.AssetComposition, error)
	GetManagementCompanyName(ctx context.Context, fundID int64) (string, error)
}

// PriceService serves fund price-history lookups.
type PriceService interface {
	GetLatestPrice(ctx context.Context, fundID int64) (models.PriceData, error)
	GetPricesByPeriod(ctx context.Context, fundID int64, start, end models.Date) ([]models.PriceData, error)
	GetPriceByDate(ctx context.Context, fundID int64, date models.Date) (models.PriceData, error)
}
