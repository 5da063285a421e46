package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/fundvista/fund-api/internal/logger"
	"github.com/fundvista/fund-api/models"
)

func newTestPriceRepo(t *testing.T) (*priceRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &priceRepository{
		db:     &DB{DB: db, logger: l, errorClassificator: NewPostgresErrorClassifier()},
		logger: l,
	}
	return repo, mock, db
}

func priceColumns() []string {
	return []string{"price_id", "fund_id", "date", "fund_price", "benchmark_price"}
}

func TestGetLatest_Success(t *testing.T) {
	repo, mock, db := newTestPriceRepo(t)
	defer db.Close()

	day := time.Date(2023, time.March, 15, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(priceColumns()).
		AddRow(99, 10, day, 104.5, 101.2)

	mock.ExpectQuery("ORDER BY fp.date DESC, fp.price_id DESC").
		WithArgs(int64(10)).
		WillReturnRows(rows)

	p, err := repo.GetLatest(context.Background(), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.FundID != 10 {
		t.Errorf("expected FundID=10, got %d", p.FundID)
	}
	if p.Date.String() != "2023-03-15" {
		t.Errorf("expected date 2023-03-15, got %s", p.Date)
	}
	if p.FundPrice != 104.5 || p.BenchmarkPrice != 101.2 {
		t.Errorf("unexpected prices: %+v", p)
	}
}

func TestGetLatest_NoRows(t *testing.T) {
	repo, mock, db := newTestPriceRepo(t)
	defer db.Close()

	mock.ExpectQuery("ORDER BY fp.date DESC, fp.price_id DESC").
		WithArgs(int64(10)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetLatest(context.Background(), 10)
	if !errors.Is(err, ErrPriceNotFound) {
		t.Fatalf("expected ErrPriceNotFound, got %v", err)
	}
}

func TestGetRange_AscendingRows(t *testing.T) {
	repo, mock, db := newTestPriceRepo(t)
	defer db.Close()

	start := models.NewDate(2023, time.January, 1)
	end := models.NewDate(2023, time.January, 31)

	rows := sqlmock.NewRows(priceColumns()).
		AddRow(1, 10, time.Date(2023, time.January, 2, 0, 0, 0, 0, time.UTC), 100.0, 99.0).
		AddRow(2, 10, time.Date(2023, time.January, 3, 0, 0, 0, 0, time.UTC), 101.0, 99.5)

	mock.ExpectQuery("ORDER BY fp.date ASC").
		WithArgs(int64(10), "2023-01-01", "2023-01-31").
		WillReturnRows(rows)

	prices, err := repo.GetRange(context.Background(), 10, start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(prices) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(prices))
	}
	if !prices[0].Date.Before(prices[1].Date.Time) {
		t.Errorf("expected ascending dates, got %s then %s", prices[0].Date, prices[1].Date)
	}
}

func TestGetRange_EmptyIsNotFound(t *testing.T) {
	repo, mock, db := newTestPriceRepo(t)
	defer db.Close()

	start := models.NewDate(2023, time.January, 1)
	end := models.NewDate(2023, time.January, 31)

	mock.ExpectQuery("ORDER BY fp.date ASC").
		WithArgs(int64(10), "2023-01-01", "2023-01-31").
		WillReturnRows(sqlmock.NewRows(priceColumns()))

	_, err := repo.GetRange(context.Background(), 10, start, end)
	if !errors.Is(err, ErrNoPricesInPeriod) {
		t.Fatalf("expected ErrNoPricesInPeriod, got %v", err)
	}
}

func TestGetByDate_Success(t *testing.T) {
	repo, mock, db := newTestPriceRepo(t)
	defer db.Close()

	day := time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(priceColumns()).
		AddRow(42, 10, day, 102.3, 100.9)

	mock.ExpectQuery("fp.fund_id = \\$1 AND fp.date = \\$2").
		WithArgs(int64(10), "2023-06-01").
		WillReturnRows(rows)

	p, err := repo.GetByDate(context.Background(), 10, models.NewDate(2023, time.June, 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.FundPrice != 102.3 {
		t.Errorf("expected fund price 102.3, got %f", p.FundPrice)
	}
}

func TestGetByDate_NoRow(t *testing.T) {
	repo, mock, db := newTestPriceRepo(t)
	defer db.Close()

	mock.ExpectQuery("fp.fund_id = \\$1 AND fp.date = \\$2").
		WithArgs(int64(10), "2023-06-01").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByDate(context.Background(), 10, models.NewDate(2023, time.June, 1))
	if !errors.Is(err, ErrPriceNotFound) {
		t.Fatalf("expected ErrPriceNotFound, got %v", err)
	}
}

func TestGetRange_ConnectionFailure(t *testing.T) {
	repo, mock, db := newTestPriceRepo(t)
	defer db.Close()

	start := models.NewDate(2023, time.January, 1)
	end := models.NewDate(2023, time.January, 31)

	mock.ExpectQuery("ORDER BY fp.date ASC").
		WillReturnError(pgError("08000")) // connection_exception

	_, err := repo.GetRange(context.Background(), 10, start, end)
	if !errors.Is(err, ErrDatabaseUnavailable) {
		t.Fatalf("expected ErrDatabaseUnavailable, got %v", err)
	}
}
