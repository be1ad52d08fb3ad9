package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	. "github.com/stakebridge/stakebridge/internal"
)

func main() {
	//decimals at json as string
	//https://github.com/shopspring/decimal/issues/21
	decimal.MarshalJSONWithoutQuotes = true

	cfg := NewConfig()
	z, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	sugaredLogger := z.Sugar()

	repository, err := NewRepository(cfg.DatabaseURI, sugaredLogger)
	if err != nil {
		sugaredLogger.Fatal(err)
	}

	var alerts IAlertSink
	if cfg.TelegramToken != "" {
		alerts, err = NewTelegramAlertSink(cfg.TelegramToken, cfg.TelegramChatID, sugaredLogger)
		if err != nil {
			sugaredLogger.Fatal(err)
		}
	} else {
		alerts = NewLogAlertSink(sugaredLogger)
	}

	api := NewAPIClient(cfg.APIAddress, cfg.APISecret, cfg.APISignAddress, sugaredLogger)
	node := NewNodeClient(cfg.NodeRPCAddress, cfg.NodeRPCUser, cfg.NodeRPCPassword, sugaredLogger)

	checker := NewBalanceChecker(repository, sugaredLogger, cfg.LiquidityAddress, cfg.DepositAddress, cfg.Token)
	pipeline := NewPipeline(api, node, checker, sugaredLogger, cfg.IssuerAddress)
	reconciler := NewReconciler(repository, alerts, sugaredLogger, cfg.StaleAfter)

	scheduler := NewScheduler(2, sugaredLogger)
	scheduler.Start(
		&Task{
			Name:     "withdrawal-check",
			Interval: cfg.CheckInterval,
			Run:      pipeline.Run,
		},
		&Task{
			Name:     "reservation-reconcile",
			Interval: cfg.ReconcileInterval,
			Run: func(ctx context.Context) error {
				return reconciler.Reconcile(ctx, cfg.Token)
			},
		},
	)

	handlers := NewHandlers(repository, pipeline, sugaredLogger, cfg.Token)

	app := fiber.New()
	app.Use(logger.New())

	apiGroup := app.Group("/api")
	apiGroup.Get("/health", handlers.Health)
	apiGroup.Get("/reservations", handlers.Reservations)
	apiGroup.Post("/check", handlers.TriggerCheck)

	go func() {
		if err := app.Listen(cfg.RunAddress); err != nil {
			sugaredLogger.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	sugaredLogger.Info("Shutting down service...")

	scheduler.Shutdown(cfg.ShutdownTimeout)
	if err := app.Shutdown(); err != nil {
		sugaredLogger.Errorf("http shutdown: %s", err)
	}
}
