package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/cbodonnell/stackfall/pkg/api/handlers"
	"github.com/cbodonnell/stackfall/pkg/api/middleware"
	"github.com/cbodonnell/stackfall/pkg/auth"
	authhandlers "github.com/cbodonnell/stackfall/pkg/auth/handlers"
	authproviders "github.com/cbodonnell/stackfall/pkg/auth/providers"
	"github.com/cbodonnell/stackfall/pkg/log"
	"github.com/cbodonnell/stackfall/pkg/repositories"
	"github.com/cbodonnell/stackfall/pkg/state"
	"github.com/gorilla/mux"
)

type APIServer struct {
	server *http.Server
	tls    *TLSConfig
}

type TLSConfig struct {
	CertFile string
	KeyFile  string
}

type NewAPIServerOptions struct {
	Port         int
	TLS          *TLSConfig
	AllowOrigins []string
	AuthProvider authproviders.AuthProvider
	Repository   repositories.Repository
	// StateManager serves live sessions. The session routes are only mounted
	// when it is set.
	StateManager state.StateManager
	// AuthHandler serves the account routes under /auth when set.
	AuthHandler authhandlers.AuthHandler
}

// NewRouter creates the API routes.
func NewRouter(opts NewAPIServerOptions) *mux.Router {
	router := mux.NewRouter()
	router.Use(middleware.NewLoggingMiddleware())
	router.Use(middleware.NewCORSMiddleware(opts.AllowOrigins))

	router.HandleFunc("/healthz", handlers.HandleHealth()).Methods(http.MethodGet)
	router.HandleFunc("/results", handlers.HandleListResults(opts.Repository)).Methods(http.MethodGet, http.MethodOptions)
	router.HandleFunc("/results/{id}", handlers.HandleGetResult(opts.Repository)).Methods(http.MethodGet, http.MethodOptions)
	router.HandleFunc("/users/{userID}/results", handlers.HandleListUserResults(opts.Repository)).Methods(http.MethodGet, http.MethodOptions)

	me := router.PathPrefix("/me").Subrouter()
	me.Use(middleware.NewAuthMiddleware(opts.AuthProvider))
	me.HandleFunc("/results", handlers.HandleListMyResults(opts.Repository)).Methods(http.MethodGet)

	if opts.StateManager != nil {
		router.HandleFunc("/sessions", handlers.HandleListSessions(opts.StateManager)).Methods(http.MethodGet, http.MethodOptions)
		router.HandleFunc("/sessions/{id}/board", handlers.HandleGetSessionBoard(opts.StateManager)).Methods(http.MethodGet, http.MethodOptions)
	}

	if opts.AuthHandler != nil {
		auth.RegisterRoutes(router.PathPrefix("/auth").Subrouter(), opts.AuthHandler)
	}

	return router
}

// NewAPIServer creates a new http.Server for handling API requests
func NewAPIServer(opts NewAPIServerOptions) *APIServer {
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", opts.Port),
		Handler: NewRouter(opts),
	}
	return &APIServer{
		server: server,
		tls:    opts.TLS,
	}
}

// Start starts the APIServer
func (s *APIServer) Start() {
	var listenAndServe func() error
	if s.tls != nil {
		log.Info("API server listening on %s with TLS", s.server.Addr)
		listenAndServe = func() error {
			return s.server.ListenAndServeTLS(s.tls.CertFile, s.tls.KeyFile)
		}
	} else {
		log.Info("API server listening on %s", s.server.Addr)
		listenAndServe = s.server.ListenAndServe
	}
	if err := listenAndServe(); err != nil {
		if errors.Is(err, http.ErrServerClosed) {
			log.Info("API server closed")
			return
		}
		log.Error("API server error: %v", err)
	}
}

// Stop stops the APIServer
func (s *APIServer) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
