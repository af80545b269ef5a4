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

	"github.com/tamilpanchangam/panchangam/internal/auspicious"
	"github.com/tamilpanchangam/panchangam/internal/database"
	"github.com/tamilpanchangam/panchangam/internal/handler"
	"github.com/tamilpanchangam/panchangam/internal/ics"
	"github.com/tamilpanchangam/panchangam/internal/logger"
	"github.com/tamilpanchangam/panchangam/internal/metrics"
	"github.com/tamilpanchangam/panchangam/internal/panchangam"
	"github.com/tamilpanchangam/panchangam/internal/personal"
	"github.com/tamilpanchangam/panchangam/internal/repository"
)

type Server struct {
	httpServer        *http.Server
	dbPool            database.Pool
	panchangamService panchangam.Service
	auspiciousService auspicious.Service
	personalService   personal.Service
}

// NewServer creates a new Server instance
func NewServer(port int, apiKey string, trustedProxies []string, dbPool database.Pool, panchangamService panchangam.Service, auspiciousService auspicious.Service, personalService personal.Service, preferences repository.Preferences) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(apiKey, trustedProxies, detector))
	r.Use(RateLimitMiddleware(trustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(1 << 20)) // 1MB limit
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	icsBuilder := ics.NewBuilder()

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Nakshatra reference routes
		r.Route("/nakshatra", func(r chi.Router) {
			r.Get("/", handler.HandleListNakshatras())
			r.Get("/resolve", handler.HandleResolveNakshatra())
		})

		// Panchangam routes
		r.Route("/panchangam", func(r chi.Router) {
			r.Get("/daily", handler.HandleGetDaily(panchangamService))
			r.Get("/special-days", handler.HandleGetSpecialDays(panchangamService))
			r.Get("/rs-forecast", handler.HandleGetRSForecast(panchangamService))
			r.Get("/moon-phases", handler.HandleGetMoonPhases(panchangamService))
		})

		// Auspicious time search routes
		r.Route("/auspicious", func(r chi.Router) {
			r.Post("/search", handler.HandleAuspiciousSearch(auspiciousService))
			r.Post("/export", handler.HandleAuspiciousExport(auspiciousService, icsBuilder))
		})

		// Personal dashboard routes
		r.Route("/personal", func(r chi.Router) {
			r.Get("/dashboard", handler.HandleGetDashboard(personalService))
			r.Get("/characteristics", handler.HandleGetCharacteristics(personalService))
			r.Post("/export", handler.HandlePersonalExport(personalService, icsBuilder))
		})

		// Preference routes
		preferenceHandlers := handler.NewPreferenceHandlers(preferences)
		r.Route("/preferences", func(r chi.Router) {
			r.Get("/", preferenceHandlers.HandleGet)
			r.Post("/", preferenceHandlers.HandleSet)
			r.Delete("/", preferenceHandlers.HandleDelete)
		})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		dbPool:            dbPool,
		panchangamService: panchangamService,
		auspiciousService: auspiciousService,
		personalService:   personalService,
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

		// Skip logging for health check endpoints and metrics
		// Use HasPrefix to catch potential variations (e.g. /healthz/)
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		// Generate unique request ID
		requestID := logger.GenerateRequestID()

		// Add request ID to context
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		// Get scoped logger
		log := logger.FromContext(ctx)

		// Log request start with details
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		// Sanitize headers for logging
		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		// Wrap response writer to capture status code
		rw := newResponseWriter(w)

		// Process request
		next.ServeHTTP(rw, r)

		// Log request completion with metrics
		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
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
