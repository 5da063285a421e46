// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 FundVista Authors

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fundvista/fund-api/internal/service"
	"github.com/fundvista/fund-api/internal/store"
	"github.com/fundvista/fund-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func servePrices(t *testing.T, prices service.PriceService, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	h := newTestHandler(t, &service.Services{PriceService: prices})
	router := h.Init()

	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func TestGetLatestPrice(t *testing.T) {
	prices := &mockPriceService{
		getLatestPriceFn: func(_ context.Context, fundID int64) (models.PriceData, error) {
			assert.Equal(t, int64(3), fundID)
			return models.PriceData{
				FundID:         3,
				Date:           models.NewDate(2023, time.March, 15),
				FundPrice:      104.25,
				BenchmarkPrice: 101.80,
			}, nil
		},
	}

	rec := servePrices(t, prices, http.MethodGet, "/funds/3/price")

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody[models.PriceData](t, rec.Body.Bytes())
	assert.Equal(t, "2023-03-15", got.Date.String())
	assert.InDelta(t, 104.25, got.FundPrice, 1e-9)
	assert.NotContains(t, rec.Body.String(), "price_id")
}

func TestGetLatestPrice_NotFound(t *testing.T) {
	prices := &mockPriceService{
		getLatestPriceFn: func(_ context.Context, _ int64) (models.PriceData, error) {
			return models.PriceData{}, store.ErrPriceNotFound
		},
	}

	rec := servePrices(t, prices, http.MethodGet, "/funds/3/price")

	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody[models.ErrorResponse](t, rec.Body.Bytes())
	assert.Equal(t, "Fund price not found", body.Error)
}

func TestGetPricesByPeriod(t *testing.T) {
	prices := &mockPriceService{
		getPricesByPeriodFn: func(_ context.Context, fundID int64, start, end models.Date) ([]models.PriceData, error) {
			assert.Equal(t, int64(3), fundID)
			assert.Equal(t, "2023-01-01", start.String())
			assert.Equal(t, "2023-01-31", end.String())
			return []models.PriceData{
				{FundID: 3, Date: models.NewDate(2023, time.January, 2), FundPrice: 100.0, BenchmarkPrice: 99.1},
				{FundID: 3, Date: models.NewDate(2023, time.January, 3), FundPrice: 100.9, BenchmarkPrice: 99.4},
			}, nil
		},
	}

	rec := servePrices(t, prices, http.MethodGet, "/funds/3/prices?start_date=2023-01-01&end_date=2023-01-31")

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody[[]models.PriceData](t, rec.Body.Bytes())
	require.Len(t, got, 2)
	assert.Equal(t, "2023-01-02", got[0].Date.String())
}

func TestGetPricesByPeriod_EmptyIs404(t *testing.T) {
	prices := &mockPriceService{
		getPricesByPeriodFn: func(_ context.Context, _ int64, _, _ models.Date) ([]models.PriceData, error) {
			return nil, store.ErrNoPricesInPeriod
		},
	}

	rec := servePrices(t, prices, http.MethodGet, "/funds/3/prices?start_date=2023-01-01&end_date=2023-01-31")

	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody[models.ErrorResponse](t, rec.Body.Bytes())
	assert.Equal(t, "No fund prices found for the given period", body.Error)
}

func TestGetPricesByPeriod_InvalidRange(t *testing.T) {
	prices := &mockPriceService{
		getPricesByPeriodFn: func(_ context.Context, _ int64, _, _ models.Date) ([]models.PriceData, error) {
			return nil, service.ErrInvalidDateRange
		},
	}

	rec := servePrices(t, prices, http.MethodGet, "/funds/3/prices?start_date=2023-02-10&end_date=2023-02-01")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody[models.ErrorResponse](t, rec.Body.Bytes())
	assert.Equal(t, "start_date must not be after end_date", body.Error)
}

func TestGetPricesByPeriod_MalformedDates(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{name: "missing start_date", target: "/funds/3/prices?end_date=2023-01-31"},
		{name: "missing end_date", target: "/funds/3/prices?start_date=2023-01-01"},
		{name: "malformed start_date", target: "/funds/3/prices?start_date=01-01-2023&end_date=2023-01-31"},
		{name: "malformed end_date", target: "/funds/3/prices?start_date=2023-01-01&end_date=Jan-31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// the service must not be reached
			rec := servePrices(t, &mockPriceService{}, http.MethodGet, tt.target)

			require.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestGetPriceByDate(t *testing.T) {
	prices := &mockPriceService{
		getPriceByDateFn: func(_ context.Context, fundID int64, date models.Date) (models.PriceData, error) {
			assert.Equal(t, int64(8), fundID)
			assert.Equal(t, "2023-05-04", date.String())
			return models.PriceData{FundID: 8, Date: date, FundPrice: 51.17, BenchmarkPrice: 50.02}, nil
		},
	}

	rec := servePrices(t, prices, http.MethodGet, "/funds/8/price/2023-05-04")

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody[models.PriceData](t, rec.Body.Bytes())
	assert.InDelta(t, 51.17, got.FundPrice, 1e-9)
}

func TestGetPriceByDate_NotFound(t *testing.T) {
	prices := &mockPriceService{
		getPriceByDateFn: func(_ context.Context, _ int64, _ models.Date) (models.PriceData, error) {
			return models.PriceData{}, store.ErrPriceNotFound
		},
	}

	rec := servePrices(t, prices, http.MethodGet, "/funds/8/price/2023-05-04")

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetPriceByDate_MalformedDate(t *testing.T) {
	rec := servePrices(t, &mockPriceService{}, http.MethodGet, "/funds/8/price/04-05-2023")

	require.Equal(t, http.StatusBadRequest, rec.Code)
}
