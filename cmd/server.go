package cmd

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"tendersim/internal/config"
	"tendersim/internal/core"
	"tendersim/internal/credentials"
	"tendersim/internal/db"
	"tendersim/internal/ethereum"
	"tendersim/internal/http/handler"
	"tendersim/internal/http/handler/middleware"
	"tendersim/internal/http/payload"
	"tendersim/internal/http/server"
	"tendersim/internal/prompt"
	"tendersim/internal/repository"
	"tendersim/internal/tenderly"
	"tendersim/pkg/jwt"
	"tendersim/pkg/log"

	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap/zapcore"
)

func Start() error {
	logger := log.NewZapLogger("tendersim", zapcore.InfoLevel)

	config, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	dbConn, err := db.NewPostgresDB(config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// jwt service
	jwtService := jwt.NewJWTService([]byte(config.JWTSecret))

	// repositories
	users := repository.NewUserRepository(dbConn)
	if err := users.MigrateAndSeed(); err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	credRepo := repository.NewCredentialRepository(dbConn)

	client, err := ethclient.Dial(config.NodeURL)
	if err != nil {
		logger.Errorw("ethereum node connection failed", "error", err)
		return err
	}

	chainService := ethereum.NewChainService(client)

	credStore := credentials.NewStore(logger, credRepo, prompt.ContextPrompter{})
	tenderlyClient := tenderly.NewClient(logger, config.TenderlyAPIURL)

	reportConfig := tenderly.DefaultReportConfig()
	reportConfig.DashboardURL = config.DashboardURL

	// previewer
	previewer := core.NewPreviewer(
		logger,
		users,
		jwtService,
		credStore,
		tenderlyClient,
		chainService,
		prompt.ContextPrompter{},
		reportConfig)

	// handler
	previewHlr := handler.NewPreviewHandler(
		logger,
		payload.DecodeValidator{},
		previewer)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	authMw := middleware.NewAuthMiddleware(logger, jwtService)

	// register routes
	mux.HandleFunc(handler.Authenticate, previewHlr.HandleAuthenticate)
	mux.Handle(handler.Invoke, authMw.Auth(http.HandlerFunc(previewHlr.HandleInvoke)))
	mux.Handle(handler.TransactionInsight, authMw.Auth(http.HandlerFunc(previewHlr.HandleTransaction)))

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == nil && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
