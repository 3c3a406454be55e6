package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/apiarygames/hivecore/internal/crafting"
	"github.com/apiarygames/hivecore/internal/database"
	"github.com/apiarygames/hivecore/internal/draw"
	"github.com/apiarygames/hivecore/internal/economy"
	"github.com/apiarygames/hivecore/internal/handler"
	"github.com/apiarygames/hivecore/internal/inventory"
	"github.com/apiarygames/hivecore/internal/logger"
	"github.com/apiarygames/hivecore/internal/market"
	"github.com/apiarygames/hivecore/internal/metrics"
	"github.com/apiarygames/hivecore/internal/squad"
)

// Services bundles everything the router exposes.
type Services struct {
	Draw      draw.Service
	Inventory inventory.Service
	Crafting  crafting.Service
	Economy   economy.Service
	Market    market.Service
	Squad     squad.Service
}

type Server struct {
	httpServer *http.Server
	dbPool     database.Pool
}

// NewServer creates a new Server instance
func NewServer(port int, apiKey string, dbPool database.Pool, svcs Services) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(apiKey))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.MetricsMiddleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/draw", handler.HandleDraw(svcs.Draw))
		r.Get("/inventory", handler.HandleGetInventory(svcs.Inventory))
		r.Post("/assemble", handler.HandleAssemble(svcs.Crafting))
		r.Get("/creatures", handler.HandleGetCreatures(svcs.Crafting))

		r.Get("/balance", handler.HandleGetBalance(svcs.Economy))
		r.Post("/parts/sell", handler.HandleSellParts(svcs.Economy))

		r.Route("/market", func(r chi.Router) {
			r.Get("/", handler.HandleGetListings(svcs.Market))
			r.Post("/list", handler.HandleListCreature(svcs.Market))
			r.Post("/buy", handler.HandleBuyListing(svcs.Market))
			r.Post("/cancel", handler.HandleCancelListing(svcs.Market))
		})

		r.Route("/squad", func(r chi.Router) {
			r.Get("/", handler.HandleGetSquad(svcs.Squad))
			r.Post("/slot", handler.HandleSetSlot(svcs.Squad))
		})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		dbPool: dbPool,
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // default status
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Health and metrics probes are noise at info level
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
