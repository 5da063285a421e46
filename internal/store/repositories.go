package store

import (
	"context"

	"github.com/fundvista/fund-api/internal/config"
	"github.com/fundvista/fund-api/internal/logger"
)

// Repositories bundles the typed data-access interfaces handed to the
// service layer.
type Repositories struct {
	Customers CustomerRepository
	Funds     FundRepository
	Prices    PriceRepository
}

// NewRepositories connects to the configured database, applies pending
// schema migrations, and wires every repository onto the shared handle.
func NewRepositories(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Repositories, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		return nil, err
	}

	return &Repositories{
		Customers: NewCustomerRepository(db, log),
		Funds:     NewFundRepository(db, log),
		Prices:    NewPriceRepository(db, log),
	}, nil
}
