package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/fundvista/fund-api/internal/logger"
	"github.com/fundvista/fund-api/models"
)

const defaultRequestTimeout = 15 * time.Second

type httpAPIClient struct {
	client *resty.Client
	logger *logger.Logger
}

// NewHTTPAPIClient constructs an HTTP/REST implementation of [APIClient].
// It normalises and validates baseURL and configures the underlying resty
// client with the resolved base URL and request timeout.
//
// Returns an error if baseURL is empty or cannot be parsed as a valid URL.
func NewHTTPAPIClient(baseURL string, timeout time.Duration, logger *logger.Logger) (APIClient, error) {
	resolved, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid api address: %w", err)
	}
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	client := resty.New().
		SetBaseURL(resolved).
		SetTimeout(timeout)

	return &httpAPIClient{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpAPIClient) Login(ctx context.Context, request models.LoginRequest) (models.Customer, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Post("/login")
	if err != nil {
		return models.Customer{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Customer{}, err
	}

	var customer models.Customer
	if err = json.Unmarshal(resp.Body(), &customer); err != nil {
		return models.Customer{}, fmt.Errorf("decode login response: %w", err)
	}

	return customer, nil
}

func (h *httpAPIClient) Customers(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	if err := h.getJSON(ctx, "/customers", &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

func (h *httpAPIClient) Customer(ctx context.Context, customerID int64) (models.Customer, error) {
	var customer models.Customer
	if err := h.getJSON(ctx, fmt.Sprintf("/customers/%d", customerID), &customer); err != nil {
		return models.Customer{}, err
	}
	return customer, nil
}

func (h *httpAPIClient) RiskTolerance(ctx context.Context, customerID int64) (string, error) {
	var response models.RiskToleranceResponse
	if err := h.getJSON(ctx, fmt.Sprintf("/customers/%d/risk-tolerance", customerID), &response); err != nil {
		return "", err
	}
	return response.RiskTolerance, nil
}

func (h *httpAPIClient) Investments(ctx context.Context, customerID int64) ([]models.CustomerFund, error) {
	var investments []models.CustomerFund
	if err := h.getJSON(ctx, fmt.Sprintf("/customers/%d/investments", customerID), &investments); err != nil {
		return nil, err
	}
	return investments, nil
}

func (h *httpAPIClient) Funds(ctx context.Context) ([]models.Fund, error) {
	var response models.FundsResponse
	if err := h.getJSON(ctx, "/funds", &response); err != nil {
		return nil, err
	}
	return response.Funds, nil
}

// Fund handles the endpoint's peculiar contract: an absent fund arrives as a
// 200 response whose body carries an error object instead of a fund.
func (h *httpAPIClient) Fund(ctx context.Context, fundID int64) (models.Fund, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(fmt.Sprintf("/funds/%d", fundID))
	if err != nil {
		return models.Fund{}, fmt.Errorf("fund request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Fund{}, err
	}

	if message := errorMessage(resp.Body()); message != "" {
		return models.Fund{}, fmt.Errorf("%w: %s", ErrNotFound, message)
	}

	var response models.FundResponse
	if err = json.Unmarshal(resp.Body(), &response); err != nil {
		return models.Fund{}, fmt.Errorf("decode fund response: %w", err)
	}

	return response.Fund, nil
}

func (h *httpAPIClient) LatestPrice(ctx context.Context, fundID int64) (models.PriceData, error) {
	var price models.PriceData
	if err := h.getJSON(ctx, fmt.Sprintf("/funds/%d/price", fundID), &price); err != nil {
		return models.PriceData{}, err
	}
	return price, nil
}

func (h *httpAPIClient) PricesByPeriod(ctx context.Context, fundID int64, start, end models.Date) ([]models.PriceData, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"start_date": start.String(),
			"end_date":   end.String(),
		}).
		Get(fmt.Sprintf("/funds/%d/prices", fundID))
	if err != nil {
		return nil, fmt.Errorf("prices request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var prices []models.PriceData
	if err = json.Unmarshal(resp.Body(), &prices); err != nil {
		return nil, fmt.Errorf("decode prices response: %w", err)
	}

	return prices, nil
}

func (h *httpAPIClient) PriceByDate(ctx context.Context, fundID int64, date models.Date) (models.PriceData, error) {
	var price models.PriceData
	if err := h.getJSON(ctx, fmt.Sprintf("/funds/%d/price/%s", fundID, date.String()), &price); err != nil {
		return models.PriceData{}, err
	}
	return price, nil
}

func (h *httpAPIClient) AssetComposition(ctx context.Context, fundID int64) ([]models.AssetComposition, error) {
	var composition []models.AssetComposition
	if err := h.getJSON(ctx, fmt.Sprintf("/funds/%d/assets", fundID), &composition); err != nil {
		return nil, err
	}
	return composition, nil
}

func (h *httpAPIClient) ManagementCompany(ctx context.Context, fundID int64) (string, error) {
	var response models.AssetManagementCompanyResponse
	if err := h.getJSON(ctx, fmt.Sprintf("/funds/%d/asset-management-company", fundID), &response); err != nil {
		return "", err
	}
	return response.Name, nil
}

// getJSON performs a GET request and decodes a successful JSON response into
// out.
func (h *httpAPIClient) getJSON(ctx context.Context, path string, out any) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(path)
	if err != nil {
		return fmt.Errorf("get %s: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}

	return nil
}
