// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 FundVista Authors

package http

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/fundvista/fund-api/internal/logger"
	"github.com/fundvista/fund-api/internal/service"
	"github.com/fundvista/fund-api/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Service mocks
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	loginFn func(ctx context.Context, request models.LoginRequest) (models.Customer, error)
}

func (m *mockAuthService) Login(ctx context.Context, request models.LoginRequest) (models.Customer, error) {
	return m.loginFn(ctx, request)
}

// mockCustomerService implements service.CustomerService for unit tests.
type mockCustomerService struct {
	getAllCustomersFn  func(ctx context.Context) ([]models.Customer, error)
	getCustomerFn      func(ctx context.Context, customerID int64) (models.Customer, error)
	getRiskToleranceFn func(ctx context.Context, customerID int64) (string, error)
	getInvestmentsFn   func(ctx context.Context, customerID int64) ([]models.CustomerFund, error)
}

func (m *mockCustomerService) GetAllCustomers(ctx context.Context) ([]models.Customer, error) {
	return m.getAllCustomersFn(ctx)
}

func (m *mockCustomerService) GetCustomer(ctx context.Context, customerID int64) (models.Customer, error) {
	return m.getCustomerFn(ctx, customerID)
}

func (m *mockCustomerService) GetRiskTolerance(ctx context.Context, customerID int64) (string, error) {
	return m.getRiskToleranceFn(ctx, customerID)
}

func (m *mockCustomerService) GetInvestments(ctx context.Context, customerID int64) ([]models.CustomerFund, error) {
	return m.getInvestmentsFn(ctx, customerID)
}

// mockFundService implements service.FundService for unit tests.
type mockFundService struct {
	getAllFundsFn          func(ctx context.Context) ([]models.Fund, error)
	getFundFn              func(ctx context.Context, fundID int64) (models.Fund, error)
	getAssetCompositionFn  func(ctx context.Context, fundID int64) ([]models.AssetComposition, error)
	getManagementCompanyFn func(ctx context.Context, fundID int64) (string, error)
}

func (m *mockFundService) GetAllFunds(ctx context.Context) ([]models.Fund, error) {
	return m.getAllFundsFn(ctx)
}

func (m *mockFundService) GetFund(ctx context.Context, fundID int64) (models.Fund, error) {
	return m.getFundFn(ctx, fundID)
}

func (m *mockFundService) GetAssetComposition(ctx context.Context, fundID int64) ([]models.AssetComposition, error) {
	return m.getAssetCompositionFn(ctx, fundID)
}

func (m *mockFundService) GetManagementCompanyName(ctx context.Context, fundID int64) (string, error) {
	return m.getManagementCompanyFn(ctx, fundID)
}

// mockPriceService implements service.PriceService for unit tests.
type mockPriceService struct {
	getLatestPriceFn    func(ctx context.Context, fundID int64) (models.PriceData, error)
	getPricesByPeriodFn func(ctx context.Context, fundID int64, start, end models.Date) ([]models.PriceData, error)
	getPriceByDateFn    func(ctx context.Context, fundID int64, date models.Date) (models.PriceData, error)
}

func (m *mockPriceService) GetLatestPrice(ctx context.Context, fundID int64) (models.PriceData, error) {
	return m.getLatestPriceFn(ctx, fundID)
}

func (m *mockPriceService) GetPricesByPeriod(ctx context.Context, fundID int64, start, end models.Date) ([]models.PriceData, error) {
	return m.getPricesByPeriodFn(ctx, fundID, start, end)
}

func (m *mockPriceService) GetPriceByDate(ctx context.Context, fundID int64, date models.Date) (models.PriceData, error) {
	return m.getPriceByDateFn(ctx, fundID, date)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler with the given service mocks. Nil mocks are
// fine for tests that never reach the corresponding service.
func newTestHandler(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()
	return NewHandler(svcs, logger.Nop())
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// decodeBody deserialises the response body into T.
func decodeBody[T any](t *testing.T, body []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(body, &v))
	return v
}
