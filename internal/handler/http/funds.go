package http

import (
	"errors"
	"net/http"

	"github.com/fundvista/fund-api/internal/logger"
	"github.com/fundvista/fund-api/internal/service"
	"github.com/fundvista/fund-api/internal/store"
	"github.com/fundvista/fund-api/internal/utils"
	"github.com/fundvista/fund-api/models"
)

func (h *Handler) listFunds(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	funds, err := h.services.FundService.GetAllFunds(ctx)
	if err != nil {
		log.Err(err).Msg("listing funds failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.FundsResponse{Funds: funds}, http.StatusOK)
}

func (h *Handler) getFund(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	fundID, err := pathID(r, "fundID")
	if err != nil {
		log.Err(err).Msg("invalid fund id")
		writeError(w, service.ErrInvalidDataProvided)
		return
	}

	fund, err := h.services.FundService.GetFund(ctx, fundID)
	if err != nil {
		// an absent fund is reported inside a 200 body on this endpoint;
		// long-standing contract, clients depend on it
		if errors.Is(err, store.ErrFundNotFound) {
			log.Err(err).Int64("fund_id", fundID).Msg("fund not found")
			utils.WriteJSON(w, models.ErrorResponse{Error: "Fund not found"}, http.StatusOK)
			return
		}
		log.Err(err).Int64("fund_id", fundID).Msg("fund lookup failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.FundResponse{Fund: fund}, http.StatusOK)
}

func (h *Handler) getAssetComposition(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	fundID, err := pathID(r, "fundID")
	if err != nil {
		log.Err(err).Msg("invalid fund id")
		writeError(w, service.ErrInvalidDataProvided)
		return
	}

	composition, err := h.services.FundService.GetAssetComposition(ctx, fundID)
	if err != nil {
		log.Err(err).Int64("fund_id", fundID).Msg("asset composition lookup failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, composition, http.StatusOK)
}

func (h *Handler) getManagementCompany(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	fundID, err := pathID(r, "fundID")
	if err != nil {
		log.Err(err).Msg("invalid fund id")
		writeError(w, service.ErrInvalidDataProvided)
		return
	}

	name, err := h.services.FundService.GetManagementCompanyName(ctx, fundID)
	if err != nil {
		log.Err(err).Int64("fund_id", fundID).Msg("management company lookup failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.AssetManagementCompanyResponse{Name: name}, http.StatusOK)
}
