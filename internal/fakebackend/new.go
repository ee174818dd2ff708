// Package fakebackend is an in-memory emulation of the wardrobe REST backend,
// used to exercise the client end to end and to run the CLI offline.
package fakebackend

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	pkgLog "wardrobe-planner/pkg/log"
)

const (
	DefaultTokenTTL = 24 * time.Hour
	defaultSecret   = "fakebackend-secret"
)

// Server holds the routes and the in-memory data.
type Server struct {
	gin    *gin.Engine
	l      pkgLog.Logger
	secret []byte
	ttl    time.Duration
	now    func() time.Time
	data   *store

	tokenOnRegister bool
	emptyWrites     bool
	noStatistics    bool
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger pkgLog.Logger
	Mode   string
	Secret string

	// TokenTTL is the lifetime of minted tokens.
	TokenTTL time.Duration
	Now      func() time.Time

	// TokenOnRegister makes /register answer with a token as well as the user.
	TokenOnRegister bool
	// EmptyWrites makes create and update endpoints answer 204 without a body.
	EmptyWrites bool
	// NoStatistics removes the /statistics endpoints.
	NoStatistics bool
}

// New creates a Server with its routes mapped.
func New(cfg Config) (*Server, error) {
	if cfg.Logger == nil {
		return nil, errors.New("logger is required")
	}
	if cfg.Mode == "" {
		cfg.Mode = gin.TestMode
	}
	if cfg.Secret == "" {
		cfg.Secret = defaultSecret
	}
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = DefaultTokenTTL
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	gin.SetMode(cfg.Mode)

	srv := &Server{
		gin:             gin.New(),
		l:               cfg.Logger,
		secret:          []byte(cfg.Secret),
		ttl:             cfg.TokenTTL,
		now:             cfg.Now,
		data:            newStore(),
		tokenOnRegister: cfg.TokenOnRegister,
		emptyWrites:     cfg.EmptyWrites,
		noStatistics:    cfg.NoStatistics,
	}
	srv.mapHandlers()
	return srv, nil
}

// Handler returns the HTTP handler serving the backend.
func (srv *Server) Handler() http.Handler {
	return srv.gin
}
