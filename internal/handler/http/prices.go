package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fundvista/fund-api/internal/logger"
	"github.com/fundvista/fund-api/internal/service"
	"github.com/fundvista/fund-api/internal/utils"
	"github.com/fundvista/fund-api/models"
)

func (h *Handler) getLatestPrice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	fundID, err := pathID(r, "fundID")
	if err != nil {
		log.Err(err).Msg("invalid fund id")
		writeError(w, service.ErrInvalidDataProvided)
		return
	}

	price, err := h.services.PriceService.GetLatestPrice(ctx, fundID)
	if err != nil {
		log.Err(err).Int64("fund_id", fundID).Msg("latest price lookup failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, price, http.StatusOK)
}

func (h *Handler) getPricesByPeriod(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	fundID, err := pathID(r, "fundID")
	if err != nil {
		log.Err(err).Msg("invalid fund id")
		writeError(w, service.ErrInvalidDataProvided)
		return
	}

	start, err := models.ParseDate(r.URL.Query().Get("start_date"))
	if err != nil {
		log.Err(err).Msg("invalid start_date")
		writeError(w, service.ErrInvalidDataProvided)
		return
	}

	end, err := models.ParseDate(r.URL.Query().Get("end_date"))
	if err != nil {
		log.Err(err).Msg("invalid end_date")
		writeError(w, service.ErrInvalidDataProvided)
		return
	}

	prices, err := h.services.PriceService.GetPricesByPeriod(ctx, fundID, start, end)
	if err != nil {
		log.Err(err).
			Int64("fund_id", fundID).
			Str("start_date", start.String()).
			Str("end_date", end.String()).
			Msg("price range lookup failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, prices, http.StatusOK)
}

func (h *Handler) getPriceByDate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	fundID, err := pathID(r, "fundID")
	if err != nil {
		log.Err(err).Msg("invalid fund id")
		writeError(w, service.ErrInvalidDataProvided)
		return
	}

	date, err := models.ParseDate(chi.URLParam(r, "date"))
	if err != nil {
		log.Err(err).Msg("invalid date")
		writeError(w, service.ErrInvalidDataProvided)
		return
	}

	price, err := h.services.PriceService.GetPriceByDate(ctx, fundID, date)
	if err != nil {
		log.Err(err).Int64("fund_id", fundID).Str("date", date.String()).Msg("price by date lookup failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, price, http.StatusOK)
}
