package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ariel-guidde/inner-officials-sub001/internal/catalog"
	"github.com/ariel-guidde/inner-officials-sub001/internal/config"
	"github.com/ariel-guidde/inner-officials-sub001/internal/server"
)

var (
	configPath = flag.String("config", "", "path to configuration file")
	version    = "dev" // set via ldflags during build
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := initLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting debate server",
		zap.String("version", version),
		zap.String("config", *configPath),
	)

	cat, err := buildCatalog(cfg.Catalog)
	if err != nil {
		logger.Fatal("failed to build catalog", zap.Error(err))
	}
	logger.Info("catalog loaded",
		zap.Int("cards", len(cat.CardIDs())),
		zap.Int("opponents", cat.OpponentCount()),
	)

	srv := server.New(cfg, cat, logger)
	httpServer := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: srv.Handler(),
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("listening", zap.String("address", cfg.Server.Address))
		if serveErr := httpServer.ListenAndServe(); serveErr != nil && serveErr != http.ErrServerClosed {
			logger.Error("server error", zap.Error(serveErr))
		}
	}()

	sig := <-sigChan
	logger.Info("received shutdown signal", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Warn("shutdown error", zap.Error(err))
	}
	logger.Info("debate server stopped")
}

// buildCatalog layers optional card/opponent set files on the builtin
// catalog.
func buildCatalog(cfg config.CatalogConfig) (*catalog.Catalog, error) {
	if cfg.CardsFile == "" && cfg.OpponentsFile == "" {
		return catalog.Builtin()
	}

	builtin, err := catalog.Builtin()
	if err != nil {
		return nil, err
	}
	cards := make([]*catalog.Card, 0, len(builtin.CardIDs()))
	for _, id := range builtin.CardIDs() {
		card, err := builtin.Card(id)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	opponents := make([]*catalog.Opponent, 0, builtin.OpponentCount())
	for i := 0; i < builtin.OpponentCount(); i++ {
		opp, err := builtin.Opponent(i)
		if err != nil {
			return nil, err
		}
		opponents = append(opponents, opp)
	}

	if cfg.CardsFile != "" {
		extra, err := catalog.LoadCards(cfg.CardsFile)
		if err != nil {
			return nil, err
		}
		cards = append(cards, extra...)
	}
	if cfg.OpponentsFile != "" {
		extra, err := catalog.LoadOpponents(cfg.OpponentsFile)
		if err != nil {
			return nil, err
		}
		opponents = append(opponents, extra...)
	}
	return catalog.New(cards, opponents)
}

func initLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	switch cfg.Level {
	case "debug":
		level = zapcore.DebugLevel
	case "info":
		level = zapcore.InfoLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
