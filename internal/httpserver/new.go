package httpserver

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"catalog-api/internal/catalog"
	"catalog-api/internal/catalog/repository/mongodb"
	"catalog-api/internal/middleware"
	"catalog-api/pkg/log"
)

// Store is the document store the catalog domain runs on.
type Store interface {
	mongodb.CollectionProvider
	middleware.ReadinessChecker
}

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration

	// Storage
	store Store

	// Catalog domain
	resources   []catalog.Resource
	strictQuery bool
	authToken   string
	mw          middleware.Middleware
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	Store Store

	Resources      []catalog.Resource
	StrictQuery    bool
	AuthToken      string
	RequestsPerMin int
	Burst          int
}

// New creates a new HTTPServer instance with every route registered.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		store:           cfg.Store,
		resources:       cfg.Resources,
		strictQuery:     cfg.StrictQuery,
		authToken:       cfg.AuthToken,
		mw: middleware.New(logger, middleware.Config{
			AuthToken:      cfg.AuthToken,
			RequestsPerMin: cfg.RequestsPerMin,
			Burst:          cfg.Burst,
			Readiness:      cfg.Store,
		}),
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = 10 * time.Second
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

// Handler exposes the routed engine, mainly for tests.
func (srv HTTPServer) Handler() http.Handler {
	return srv.gin
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.store == nil {
		return errors.New("store is required")
	}
	if len(srv.resources) == 0 {
		return errors.New("at least one resource is required")
	}
	for _, r := range srv.resources {
		if r.RequireAuth && srv.authToken == "" {
			return errors.New("auth token is required when a resource requires auth")
		}
	}
	return nil
}
