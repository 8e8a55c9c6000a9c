package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cookbook/config"
	"cookbook/db"
	"cookbook/ingredients"
	"cookbook/live"
	"cookbook/logger"
	"cookbook/middleware"
	"cookbook/mq"
	"cookbook/ratelim"
	"cookbook/rdx"
	"cookbook/recipes"
	"cookbook/routes"

	"github.com/rs/cors"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, dotenv, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.IsProduction())
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close(log)
	if !dotenv {
		log.Info("no .env file found; using system environment")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// store
	connectCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	store, err := db.Connect(connectCtx, cfg.MongoURI, cfg.MongoDatabase)
	if err == nil {
		err = store.EnsureIndexes(connectCtx)
	}
	cancel()
	if err != nil {
		return err
	}
	log.Info("connected to mongodb", zap.String("database", cfg.MongoDatabase))

	// change feed
	conn, err := rdx.Connect(ctx, cfg.RedisURL)
	if err != nil {
		log.Warn("redis unavailable; change events stay local", zap.Error(err))
	}

	hub := live.NewHub()
	go hub.Run()

	publisher := mq.NewPublisher(conn, hub, log)
	go publisher.Relay(ctx)

	// services
	recipeSvc := recipes.NewService(recipes.NewRepository(store.Recipes), cfg.DefaultAuthor)
	ingredientSvc := ingredients.NewService(ingredients.NewRepository(store.Ingredients), cfg.KnownLanguages)

	router := routes.RoutesWrapper(routes.Handlers{
		Recipes:     recipes.NewHandler(recipeSvc, publisher, log, cfg.RequestTimeout, cfg.PublicBaseURL),
		Ingredients: ingredients.NewHandler(ingredientSvc, publisher, log, cfg.RequestTimeout),
		Hub:         hub,
		Log:         log,
	}, ratelim.NewRateLimiter(cfg.RateLimit), middleware.OptionalAuth(cfg.JWTSecret))

	// apply middleware: request id → logging → recover → security headers → CORS → router
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
	}).Handler(router)

	handler := middleware.Standard(corsHandler, log)

	server := &http.Server{
		Addr:              cfg.Port,
		Handler:           handler,
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	server.RegisterOnShutdown(func() {
		log.Info("shutting down live hub")
		hub.Stop()
	})

	serveErr := make(chan error, 1)
	go func() {
		log.Info("server listening", zap.String("addr", cfg.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	var listenErr error
	select {
	case listenErr = <-serveErr:
		if listenErr != nil {
			log.Error("listen failed", zap.Error(listenErr))
		}
	case <-ctx.Done():
		log.Info("shutdown signal received; shutting down gracefully")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
	hub.Stop()
	if conn != nil {
		if err := conn.Close(); err != nil {
			log.Warn("close redis", zap.Error(err))
		}
	}
	if err := store.Close(shutdownCtx); err != nil {
		log.Warn("close mongodb", zap.Error(err))
	}

	if listenErr != nil {
		return listenErr
	}
	log.Info("server stopped cleanly")
	return nil
}
