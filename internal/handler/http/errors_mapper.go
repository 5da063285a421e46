package http

import (
	"errors"
	"net/http"

	"github.com/fundvista/fund-api/internal/service"
	"github.com/fundvista/fund-api/internal/store"
	"github.com/fundvista/fund-api/internal/utils"
	"github.com/fundvista/fund-api/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrInvalidDateRange:    http.StatusBadRequest,
	service.ErrWrongPassword:       http.StatusUnauthorized,

	// the unknown-email 404 vs wrong-password 401 split is a historical
	// contract; uniform 401 would be the hardened choice
	store.ErrCustomerNotFound:          http.StatusNotFound,
	store.ErrRiskToleranceNotFound:     http.StatusNotFound,
	store.ErrNoInvestmentsFound:        http.StatusNotFound,
	store.ErrFundNotFound:              http.StatusNotFound,
	store.ErrPriceNotFound:             http.StatusNotFound,
	store.ErrNoPricesInPeriod:          http.StatusNotFound,
	store.ErrNoAssetComposition:        http.StatusNotFound,
	store.ErrManagementCompanyNotFound: http.StatusNotFound,

	store.ErrDatabaseUnavailable: http.StatusServiceUnavailable,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

// errorMessageMap carries the client-facing message for each mapped error.
// The texts are part of the public contract and must stay stable.
var errorMessageMap = map[error]string{
	service.ErrInvalidDataProvided: "invalid data provided",
	service.ErrInvalidDateRange:    "start_date must not be after end_date",
	service.ErrWrongPassword:       "Invalid email or password",

	store.ErrCustomerNotFound:          "Customer not found",
	store.ErrRiskToleranceNotFound:     "Risk tolerance not found for the given customer_id",
	store.ErrNoInvestmentsFound:        "No investments found for the given customer_id",
	store.ErrFundNotFound:              "Fund not found",
	store.ErrPriceNotFound:             "Fund price not found",
	store.ErrNoPricesInPeriod:          "No fund prices found for the given period",
	store.ErrNoAssetComposition:        "No asset composition found for the given fund_id",
	store.ErrManagementCompanyNotFound: "Asset management company not found for the given fund_id",

	store.ErrDatabaseUnavailable: "Database connection failed",
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	return http.StatusText(http.StatusInternalServerError)
}

// writeError maps err onto its HTTP status and stable client-facing message
// and writes them as a JSON error body.
func writeError(w http.ResponseWriter, err error) {
	utils.WriteJSON(w, models.ErrorResponse{Error: messageFromError(err)}, statusFromError(err))
}
