package main

import (
	"context"
	"fooodimp-be/internal/catalog"
	"fooodimp-be/internal/config"
	"fooodimp-be/internal/dynamo"
	"fooodimp-be/internal/handler"
	"fooodimp-be/internal/logger"
	"fooodimp-be/internal/metrics"
	"fooodimp-be/internal/order"
	"net/http"
	"time"

	"go.uber.org/zap"
)

var (
	initStoreFunc = func(ctx context.Context, cfg *config.Config) (dynamo.API, error) {
		return dynamo.NewClient(ctx, cfg)
	}
	startServerFunc = func(addr string, h http.Handler) error {
		srv := &http.Server{
			Addr:              addr,
			Handler:           h,
			ReadHeaderTimeout: 10 * time.Second,
		}
		return srv.ListenAndServe()
	}
)

func main() {
	if err := run(); err != nil {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	logger.Init(cfg.AppEnv, cfg.LogLevel)
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	api, err := initStoreFunc(ctx, cfg)
	if err != nil {
		return err
	}

	addr := ":" + cfg.AppPort
	logger.L().Info("HTTP server listening",
		zap.String("addr", addr),
		zap.String("env", cfg.AppEnv),
		zap.String("frontend_origin", cfg.FrontendOrigin),
	)
	return startServerFunc(addr, newServer(ctx, cfg, api))
}

// newServer wires the single store client into every service.
func newServer(ctx context.Context, cfg *config.Config, api dynamo.API) http.Handler {
	reg := metrics.NewRegistry()

	catalogSvc := catalog.NewService(catalog.NewRepository(api, cfg.FoodTable), reg)
	orderSvc := order.NewService(order.NewRepository(api, cfg.OrderTable), reg)
	health := dynamo.NewTableChecker(api, cfg.FoodTable, cfg.OrderTable)

	h := handler.NewHandler(catalogSvc, orderSvc, health, reg, !cfg.IsProduction())
	return handler.NewRouter(ctx, h, cfg.FrontendOrigin)
}
