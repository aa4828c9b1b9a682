package http

import (
	"context"
	"errors"
	"hotelier/config"
	"hotelier/infras/kafka"
	"hotelier/infras/otel"
	"hotelier/infras/postgres"
	"hotelier/shared/timezone"
	"hotelier/transport/http/response"
	"hotelier/transport/http/router"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

type ServerState int32

const (
	ServerStateReady ServerState = iota + 1
	ServerStateInGracePeriod
	ServerStateInCleanupPeriod
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 15 * time.Second
	healthMessage     = "Hotel admin API is running"
)

type HealthResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

type HTTP struct {
	Config *config.Config
	Router router.Router

	state     atomic.Int32
	mux       *chi.Mux
	setupOnce sync.Once

	db        *postgres.Connection
	redis     *goRedis.Client
	publisher kafka.Publisher
	otel      otel.Otel
}

func New(
	cfg *config.Config,
	r router.Router,
	db *postgres.Connection,
	redis *goRedis.Client,
	publisher kafka.Publisher,
	otel otel.Otel,
) *HTTP {
	return &HTTP{
		Config:    cfg,
		Router:    r,
		db:        db,
		redis:     redis,
		publisher: publisher,
		otel:      otel,
	}
}

func (h *HTTP) State() ServerState {
	return ServerState(h.state.Load())
}

// Serve blocks until SIGINT or SIGTERM, then drains in-flight requests and releases the
// store, cache, broker and tracer connections.
func (h *HTTP) Serve() {
	h.setup()

	server := &http.Server{
		Addr:              net.JoinHostPort(h.Config.Server.Host, h.Config.Server.Port),
		Handler:           h.mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		log.Info().Str("port", h.Config.Server.Port).Msg("Starting up HTTP server.")

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	<-done

	h.drain()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown did not complete")
	}

	h.close(ctx)

	log.Info().Msg("Cleaning up completed. Shutting down now.")
}

// ServeHTTP lets the whole API run behind a serverless entry point.
func (h *HTTP) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.setup()
	h.mux.ServeHTTP(w, r)
}

func (h *HTTP) setup() {
	h.setupOnce.Do(func() {
		response.ExposeDetails(h.Config.IsDevelopment())

		h.mux = chi.NewRouter()
		h.Router.SetupRoutes(h.mux)
		h.mux.Get("/health", h.health)

		h.state.Store(int32(ServerStateReady))
	})
}

func (h *HTTP) health(w http.ResponseWriter, _ *http.Request) {
	switch h.State() {
	case ServerStateInGracePeriod:
		response.WithPreparingShutdown(w)
	case ServerStateInCleanupPeriod:
		response.WithUnhealthy(w)
	default:
		response.WithJSON(w, http.StatusOK, HealthResponse{
			Status:    "OK",
			Message:   healthMessage,
			Timestamp: timezone.Now().Format(time.RFC3339),
		})
	}
}

func (h *HTTP) drain() {
	if h.Config.IsDevelopment() {
		log.Warn().Msg("Received SIGTERM. Shutting down now.")

		return
	}

	shutdownConfig := h.Config.Server.Shutdown

	log.Info().Msg("Received SIGTERM.")
	log.Info().Int64("seconds", shutdownConfig.GracePeriodSeconds).Msg("Entering grace period.")

	h.state.Store(int32(ServerStateInGracePeriod))

	time.Sleep(time.Duration(shutdownConfig.GracePeriodSeconds) * time.Second)

	log.Info().Int64("seconds", shutdownConfig.CleanupPeriodSeconds).Msg("Entering cleanup period.")

	h.state.Store(int32(ServerStateInCleanupPeriod))

	time.Sleep(time.Duration(shutdownConfig.CleanupPeriodSeconds) * time.Second)
}

func (h *HTTP) close(ctx context.Context) {
	if err := h.publisher.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close kafka publisher")
	}

	if err := h.redis.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close redis client")
	}

	if err := h.db.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close postgres connections")
	}

	if err := h.otel.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("failed to flush traces")
	}
}
