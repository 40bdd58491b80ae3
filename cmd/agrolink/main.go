package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	_ "github.com/agrolink/agrolink/docs"
	"github.com/agrolink/agrolink/internal/app"
	"github.com/agrolink/agrolink/internal/auth"
	"github.com/agrolink/agrolink/internal/catalog"
	delivery "github.com/agrolink/agrolink/internal/delivery/http"
	"github.com/agrolink/agrolink/pkg/logger"
	"github.com/agrolink/agrolink/pkg/storage"
	"github.com/agrolink/agrolink/pkg/tracing"
)

func main() {
	logger.Init("agrolink-state", getEnv("ENV", "development") == "development")
	logger.SetLevel(getEnv("LOG_LEVEL", "info"))

	tp, err := tracing.InitTracer("agrolink-state")
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracing.Shutdown(ctx, tp); err != nil {
			logger.Logger.Warn().Err(err).Msg("Tracer shutdown failed")
		}
	}()

	backend, err := newBackend()
	if err != nil {
		log.Fatalf("Failed to open storage backend: %v", err)
	}

	ctx := context.Background()
	stores, err := app.NewStores(ctx, backend)
	if err != nil {
		log.Fatalf("Failed to rehydrate state: %v", err)
	}

	authClient := auth.NewClient(getEnv("AUTH_API_URL", "http://localhost:5000/api/auth"), backend)
	catalogRepo := catalog.NewSeededRepository()

	handler := delivery.NewHandler(
		stores.Session,
		stores.Favorites,
		stores.Cart,
		stores.Basket,
		catalogRepo,
		authClient,
	)

	router := mux.NewRouter()
	handler.RegisterRoutes(router)
	router.Handle("/metrics", promhttp.Handler())
	delivery.RegisterSwaggerDocs(router, httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	port := getEnv("HTTP_PORT", "8085")
	server := &http.Server{
		Addr:    ":" + port,
		Handler: otelhttp.NewHandler(c.Handler(router), "agrolink-state"),
	}

	go func() {
		logger.Logger.Info().Str("port", port).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Logger.Error().Err(err).Msg("Server shutdown failed")
	}
}

// newBackend picks Redis when configured, otherwise falls back to the
// file-backed store so the service runs with no infrastructure at all.
func newBackend() (storage.Store, error) {
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		db, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
		return storage.NewRedisStore(storage.RedisConfig{
			Addr:     addr,
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       db,
		})
	}
	return storage.NewFileStore(getEnv("STATE_DIR", "./data"))
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
