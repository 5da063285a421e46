package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fundvista/fund-api/internal/logger"
	"github.com/fundvista/fund-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient spins up an httptest server with the given routes and points
// an APIClient at it.
func newTestClient(t *testing.T, handler http.Handler) APIClient {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewHTTPAPIClient(srv.URL, time.Second, logger.Nop())
	require.NoError(t, err)

	return client
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "plain host:port", raw: "localhost:8000", want: "http://localhost:8000"},
		{name: "full url", raw: "http://api.example.com:8000/", want: "http://api.example.com:8000"},
		{name: "https kept", raw: "https://api.example.com", want: "https://api.example.com"},
		{name: "surrounding whitespace", raw: "  localhost:8000  ", want: "http://localhost:8000"},
		{name: "empty", raw: "", wantErr: true},
		{name: "scheme only", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLogin(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/login", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"customer_id":7,"name":"Siriporn K.","email":"siriporn@example.com","created_at":"2023-01-05T10:00:00Z"}`))
	}))

	customer, err := client.Login(context.Background(), models.LoginRequest{Email: "siriporn@example.com", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, int64(7), customer.CustomerID)
}

func TestLogin_WrongPassword(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"Invalid email or password"}`))
	}))

	_, err := client.Login(context.Background(), models.LoginRequest{Email: "siriporn@example.com", Password: "nope"})

	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "Invalid email or password")
}

func TestCustomers(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/customers", r.URL.Path)
		w.Write([]byte(`[{"customer_id":1,"name":"Anong P.","email":"anong@example.com","created_at":"2023-01-05T10:00:00Z"}]`))
	}))

	customers, err := client.Customers(context.Background())

	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, "anong@example.com", customers[0].Email)
}

func TestFund_BodyLevelErrorBecomesNotFound(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// the server reports an absent fund inside a 200 body
		w.Write([]byte(`{"error":"Fund not found"}`))
	}))

	_, err := client.Fund(context.Background(), 77)

	require.ErrorIs(t, err, ErrNotFound)
}

func TestFund(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/funds/2", r.URL.Path)
		w.Write([]byte(`{"fund":{"fund_id":2,"name":"Thai Bond Fund","fund_type":"bond","asset_management_company_id":1,"created_at":"2023-01-05T10:00:00Z"}}`))
	}))

	fund, err := client.Fund(context.Background(), 2)

	require.NoError(t, err)
	assert.Equal(t, "Thai Bond Fund", fund.Name)
}

func TestPricesByPeriod(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/funds/3/prices", r.URL.Path)
		require.Equal(t, "2023-01-01", r.URL.Query().Get("start_date"))
		require.Equal(t, "2023-01-31", r.URL.Query().Get("end_date"))
		w.Write([]byte(`[{"fund_id":3,"date":"2023-01-02","fund_price":100.0,"benchmark_price":99.1}]`))
	}))

	prices, err := client.PricesByPeriod(context.Background(), 3,
		models.NewDate(2023, time.January, 1), models.NewDate(2023, time.January, 31))

	require.NoError(t, err)
	require.Len(t, prices, 1)
	assert.Equal(t, "2023-01-02", prices[0].Date.String())
}

func TestRiskTolerance_NotFound(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"Risk tolerance not found for the given customer_id"}`))
	}))

	_, err := client.RiskTolerance(context.Background(), 5)

	require.ErrorIs(t, err, ErrNotFound)
}

func TestManagementCompany(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/funds/2/asset-management-company", r.URL.Path)
		w.Write([]byte(`{"name":"Siam Asset Management"}`))
	}))

	name, err := client.ManagementCompany(context.Background(), 2)

	require.NoError(t, err)
	assert.Equal(t, "Siam Asset Management", name)
}

func TestMapHTTPError_ServiceUnavailable(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"error":"Database connection failed"}`))
	}))

	_, err := client.Customers(context.Background())

	require.ErrorIs(t, err, ErrServiceUnavailable)
	assert.Contains(t, err.Error(), "Database connection failed")
}
