package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tauthy/ai"
	"tauthy/auth"
	tgrpc "tauthy/grpc"
	"tauthy/grpc/server"
	"tauthy/internal"
	"tauthy/moderation"
	"tauthy/observability"
	"tauthy/opinion"
	"tauthy/repositories"
	"tauthy/services"

	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"google.golang.org/grpc"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires every component and blocks until a signal or a server error.
// Returning instead of exiting lets the deferred closes run.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	config, err := internal.LoadConfig()
	if err != nil {
		return err
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Storage and search index
	store, err := repositories.OpenStore(config.StorageDriver, config.StoragePath, log)
	if err != nil {
		return fmt.Errorf("storage opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing storage...")
		_ = store.Close()
	}()

	index, err := repositories.NewHistoryIndex(config.BlugeFilepath, log, config.SearchPageSize)
	if err != nil {
		return fmt.Errorf("search index opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing search index...")
		_ = index.Close()
	}()

	// 3. Classifier
	tokenizers, err := ai.LoadTokenizers(config.ThaiDictionaryPath)
	if err != nil {
		return err
	}
	model, err := ai.LoadModelContext(config.ModelPath, tokenizers, ai.WithMinTokens(config.MinTokens))
	if err != nil {
		return fmt.Errorf("model loading failed: %w", err)
	}
	log.Info("Model loaded", "version", model.Version(), "classes", model.Classes(), "min_tokens", model.MinTokens())

	markers, err := moderation.NewDefaultScanner()
	if err != nil {
		return err
	}

	// 4. Services
	issuer, err := auth.NewTokenIssuer(config.JWTSecret, config.AuthTokenDuration)
	if err != nil {
		return err
	}
	monitor := observability.NewMonitor(log)
	deps := services.PredictionDeps{
		Model:   model,
		History: store.History,
		Index:   index,
		Markers: markers,
		Monitor: monitor,
	}
	if config.OpinionEnabled() {
		deps.Opinion = opinion.NewOllamaClient(config.OllamaURL, config.OllamaModel, config.OllamaTimeout)
		log.Info("Second opinion enabled", "url", config.OllamaURL, "model", config.OllamaModel, "on_submit", config.OpinionOnSubmit)
	}
	predictionService := services.NewPredictionService(log, deps, config.OpinionOnSubmit)
	authService := services.NewAuthService(store.Users, issuer, log)

	// 5. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go monitor.Run(ctx, config.MetricInterval)
	if config.DebugPort > 0 {
		internal.StartDebugServer(ctx, log, config.DebugPort, internal.NewDebugHandler(monitor.GetLatest))
	}

	// 6. gRPC Server Setup
	listener, err := net.Listen("tcp", config.Address())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", config.Address(), err)
	}

	s := tgrpc.NewServer(log, issuer,
		server.NewAuthServer(authService),
		server.NewPredictionServer(predictionService, model, monitor, config.HistoryLimit))

	errChan := make(chan error, 1)
	go func() {
		log.Info("Starting gRPC server", "address", config.Address(), "at", time.Now().UTC())
		if err := s.Serve(listener); err != nil && err != grpc.ErrServerStopped {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	// 7. Wait for Stop or Error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		return err
	}

	s.GracefulStop()
	log.Info("Program stopped cleanly")
	return nil
}
