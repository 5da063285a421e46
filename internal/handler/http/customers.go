package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/fundvista/fund-api/internal/logger"
	"github.com/fundvista/fund-api/internal/service"
	"github.com/fundvista/fund-api/internal/utils"
	"github.com/fundvista/fund-api/models"
)

// pathID extracts a numeric path parameter from the request URL.
func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}

func (h *Handler) listCustomers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	customers, err := h.services.CustomerService.GetAllCustomers(ctx)
	if err != nil {
		log.Err(err).Msg("listing customers failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, customers, http.StatusOK)
}

func (h *Handler) getCustomer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	customerID, err := pathID(r, "customerID")
	if err != nil {
		log.Err(err).Msg("invalid customer id")
		writeError(w, service.ErrInvalidDataProvided)
		return
	}

	customer, err := h.services.CustomerService.GetCustomer(ctx, customerID)
	if err != nil {
		log.Err(err).Int64("customer_id", customerID).Msg("customer lookup failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, customer, http.StatusOK)
}

func (h *Handler) getRiskTolerance(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	customerID, err := pathID(r, "customerID")
	if err != nil {
		log.Err(err).Msg("invalid customer id")
		writeError(w, service.ErrInvalidDataProvided)
		return
	}

	riskTolerance, err := h.services.CustomerService.GetRiskTolerance(ctx, customerID)
	if err != nil {
		log.Err(err).Int64("customer_id", customerID).Msg("risk tolerance lookup failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.RiskToleranceResponse{RiskTolerance: riskTolerance}, http.StatusOK)
}

func (h *Handler) getInvestments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	customerID, err := pathID(r, "customerID")
	if err != nil {
		log.Err(err).Msg("invalid customer id")
		writeError(w, service.ErrInvalidDataProvided)
		return
	}

	investments, err := h.services.CustomerService.GetInvestments(ctx, customerID)
	if err != nil {
		log.Err(err).Int64("customer_id", customerID).Msg("investments lookup failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, investments, http.StatusOK)
}
