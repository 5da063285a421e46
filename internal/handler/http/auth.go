package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fundvista/fund-api/internal/logger"
	"github.com/fundvista/fund-api/internal/service"
	"github.com/fundvista/fund-api/internal/store"
	"github.com/fundvista/fund-api/internal/utils"
	"github.com/fundvista/fund-api/models"
)

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.MessageResponse{Message: "Welcome to the Fund API"}, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, service.ErrInvalidDataProvided)
		return
	}

	customer, err := h.services.AuthService.Login(ctx, request)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			writeError(w, service.ErrInvalidDataProvided)
			return
		case errors.Is(err, store.ErrCustomerNotFound):
			// a distinct 404 for unknown emails is part of the public
			// contract, but the message stays uniform
			log.Err(err).Msg("no customer was found for login email")
			utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid email or password"}, http.StatusNotFound)
			return
		case errors.Is(err, service.ErrWrongPassword):
			log.Err(err).Msg("wrong password")
			utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid email or password"}, http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during customer login")
			writeError(w, err)
			return
		}
	}

	log.Debug().Int64("id", customer.CustomerID).Msg("customer successfully logged in")

	utils.WriteJSON(w, customer, http.StatusOK)
}
