package service

import (
	"github.com/fundvista/fund-api/internal/logger"
	"github.com/fundvista/fund-api/internal/store"
)

type Services struct {
	AuthService     AuthService
	CustomerService CustomerService
	FundService     FundService
	PriceService    PriceService
}

func NewServices(repositories *store.Repositories, logger *logger.Logger) *Services {
	return &Services{
		AuthService:     NewAuthService(repositories.Customers, logger),
		CustomerService: NewCustomerService(repositories.Customers, logger),
		FundService:     NewFundService(repositories.Funds, logger),
		PriceService:    NewPriceService(repositories.Prices, logger),
	}
}
