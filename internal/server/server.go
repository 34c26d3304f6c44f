package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonathan/internmatch/internal/config"
	"github.com/jonathan/internmatch/internal/db"
	"github.com/jonathan/internmatch/internal/engine"
	"github.com/jonathan/internmatch/internal/ranking"
	"github.com/jonathan/internmatch/internal/server/middleware"
	"github.com/jonathan/internmatch/internal/server/ratelimit"
)

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	db          *db.DB
	engine      *engine.Engine
	rateLimiter *ratelimit.Limiter
	jwtService  *JWTService
	userService *UserService
	authHandler *AuthHandler
}

// Config holds server configuration
type Config struct {
	Port        int
	DatabaseURL string
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	database, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	coordinator := ranking.NewCoordinator(database)

	s := &Server{
		db:     database,
		engine: engine.New(database, coordinator),
	}

	s.rateLimiter = ratelimit.NewLimiter(ratelimit.LoadConfig())

	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}
	s.userService = NewUserService(database, passwordConfig)

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}
	s.jwtService = NewJWTService(jwtConfig)
	s.authHandler = NewAuthHandler(s.userService, s.jwtService)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(s.routes()))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // rescore of a large posting can take a while
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes builds the router. Public endpoints are registered directly;
// everything else goes through the JWT middleware, with company-only
// endpoints additionally role-gated.
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	authed := middleware.AuthMiddleware(s.jwtService.AsTokenValidator())
	student := func(h http.HandlerFunc) http.Handler {
		return authed(middleware.RequireRole(h, string(db.RoleStudent)))
	}
	company := func(h http.HandlerFunc) http.Handler {
		return authed(middleware.RequireRole(h, string(db.RoleCompany), string(db.RoleAdmin)))
	}
	anyUser := func(h http.HandlerFunc) http.Handler {
		return authed(h)
	}

	mux.HandleFunc("GET /health", s.handleHealth)

	// Auth
	mux.HandleFunc("POST /auth/register", s.authHandler.Register)
	mux.HandleFunc("POST /auth/login", s.authHandler.Login)
	mux.Handle("PUT /auth/password", anyUser(s.handleUpdatePassword))

	// Postings
	mux.HandleFunc("GET /postings", s.handleListPostings)
	mux.HandleFunc("GET /postings/{id}", s.handleGetPosting)
	mux.Handle("POST /postings", company(s.handleCreatePosting))
	mux.Handle("POST /postings/import", company(s.handleImportPosting))
	mux.Handle("PUT /postings/{id}", company(s.handleUpdatePosting))
	mux.Handle("DELETE /postings/{id}", company(s.handleDeactivatePosting))
	mux.Handle("GET /companies/me/postings", company(s.handleListMyPostings))

	// Applications
	mux.Handle("POST /applications", student(s.handleCreateApplication))
	mux.Handle("GET /applications/{id}", anyUser(s.handleGetApplication))
	mux.Handle("PATCH /applications/{id}/status", company(s.handleUpdateApplicationStatus))
	mux.Handle("GET /postings/{id}/applications", company(s.handleListPostingApplications))
	mux.Handle("GET /companies/me/applications", company(s.handleListCompanyApplications))

	// Resumes
	mux.Handle("POST /applications/{id}/resume", student(s.handleUploadResume))
	mux.Handle("GET /applications/{id}/resume", anyUser(s.handleGetResume))
	mux.Handle("GET /applications/{id}/resume/preview", anyUser(s.handleResumePreview))

	// Scoring and rankings
	mux.Handle("POST /scores/calculate", company(s.handleCalculateScore))
	mux.Handle("GET /applications/{id}/score", anyUser(s.handleGetScore))
	mux.Handle("GET /postings/{id}/rankings", company(s.handleRankings))
	mux.Handle("GET /postings/{id}/rankings/top", company(s.handleTopApplicants))
	mux.Handle("POST /postings/{id}/rescore", company(s.handleRescorePosting))

	return mux
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	// Stop rate limiter cleanup goroutine
	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}

	s.db.Close()
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientID(r)

		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)
		if !allowed {
			s.setRateLimitHeaders(w, info)
			s.rateLimitResponse(w, info)
			return
		}

		s.setRateLimitHeaders(w, info)
		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleUpdatePassword handles password update requests for the
// authenticated user.
func (s *Server) handleUpdatePassword(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.currentUser(w, r)
	if !ok {
		return
	}
	s.authHandler.UpdatePasswordWithUserID(w, r, userID)
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// extractClientID extracts the client identifier from the request.
// Uses the IP address from RemoteAddr; X-Forwarded-For would need a
// trusted-proxy list first.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]interface{}{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}

	if info.RetryAfter > 0 {
		response["retry_after"] = int(info.RetryAfter.Seconds())
		w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
	}

	log.Printf("[rate-limit] Rate limit exceeded: Limit=%d Remaining=%d Reset=%s",
		info.Limit, info.Remaining, info.ResetTime.Format(time.RFC3339))

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
