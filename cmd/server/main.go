package main

import (
	"context"
	"fmt"

	"github.com/Oisamaye1/myportfolio/internal/adapter"
	"github.com/Oisamaye1/myportfolio/internal/config"
	myHTTP "github.com/Oisamaye1/myportfolio/internal/handler/http"
	"github.com/Oisamaye1/myportfolio/internal/logger"
	"github.com/Oisamaye1/myportfolio/internal/server"
	"github.com/Oisamaye1/myportfolio/internal/service"
	"github.com/Oisamaye1/myportfolio/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("portfolio-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if cfg.Auth.UsesFallbackSignKey() {
		log.Warn().Msg("JWT_SECRET is not set, using the insecure fallback sign key. Set JWT_SECRET before deploying to production.")
	}

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	mailClient := adapter.NewResendClient(cfg.Mail, log)
	services := service.NewServices(*storages, mailClient, *cfg, log)
	handler := myHTTP.NewHandler(services, cfg.Server, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
