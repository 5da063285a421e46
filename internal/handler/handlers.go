package handler

import (
	"github.com/fundvista/fund-api/internal/config"
	"github.com/fundvista/fund-api/internal/handler/http"
	"github.com/fundvista/fund-api/internal/logger"
	"github.com/fundvista/fund-api/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, logger),
	}, nil
}
