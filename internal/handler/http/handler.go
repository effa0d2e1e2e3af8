package http

import (
	"github.com/Oisamaye1/myportfolio/internal/config"
	"github.com/Oisamaye1/myportfolio/internal/logger"
	"github.com/Oisamaye1/myportfolio/internal/service"
)

type Handler struct {
	services *service.Services
	server   config.Server

	logger *logger.Logger
}

func NewHandler(services *service.Services, server config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		server:   server,
		logger:   logger,
	}
}
