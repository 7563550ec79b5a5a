// Package server hosts the development claims API the intake clients submit
// to. It speaks the same dialect as the production claims backend: claim and
// upload acknowledgements reuse the wire types from pkg/submit, and every
// refusal travels inside a {"detail": ...} envelope.
package server

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/goliatone/go-intake/components/procedures"
	"github.com/goliatone/go-intake/internal/config"
	"github.com/goliatone/go-intake/internal/middleware"
	"github.com/goliatone/go-intake/pkg/catalog"
	"github.com/goliatone/go-intake/pkg/submit"
	"github.com/goliatone/go-intake/pkg/validation"
)

const (
	claimsPath     = "/api/v1/claims/prior_auth"
	uploadPath     = "/api/v1/upload/clinical_notes"
	statsPath      = "/api/v1/claims/stats"
	proceduresPath = "/api/v1/procedure-codes"
)

// Server is the claims API over an in-memory claim registry.
type Server struct {
	cfg       *config.Config
	logger    zerolog.Logger
	echo      *echo.Echo
	catalog   catalog.Set
	validator *validation.Validator
	clock     func() time.Time
	newRef    func() uuid.UUID

	mu     sync.RWMutex
	claims map[string]submit.Payload
}

// Option mutates server construction.
type Option func(*Server)

// WithCatalog replaces the procedure catalog served and validated against.
func WithCatalog(set catalog.Set) Option {
	return func(s *Server) {
		if s == nil {
			return
		}
		s.catalog = set
	}
}

// WithClock overrides the acknowledgement timestamp source.
func WithClock(clock func() time.Time) Option {
	return func(s *Server) {
		if s == nil || clock == nil {
			return
		}
		s.clock = clock
	}
}

// WithReference overrides the claim reference generator.
func WithReference(newRef func() uuid.UUID) Option {
	return func(s *Server) {
		if s == nil || newRef == nil {
			return
		}
		s.newRef = newRef
	}
}

// New assembles the server around cfg. A nil cfg gets the defaults.
func New(cfg *config.Config, logger zerolog.Logger, options ...Option) *Server {
	if cfg == nil {
		cfg = config.Default()
	}
	s := &Server{
		cfg:     cfg,
		logger:  logger,
		catalog: catalog.Default(),
		clock:   time.Now,
		newRef:  uuid.New,
		claims:  make(map[string]submit.Payload),
	}
	for _, option := range options {
		if option == nil {
			continue
		}
		option(s)
	}
	s.validator = validation.New(validation.WithProcedureCodes(s.catalog))
	s.echo = s.build()
	return s
}

func (s *Server) build() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = s.errorHandler

	// Recovery sits innermost so the logger still sees panicking requests.
	e.Use(
		middleware.RequestID(),
		middleware.Logger(s.logger),
		middleware.Recovery(s.logger),
	)
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: s.cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
		MaxAge:       3600,
	}))

	e.GET("/", s.health)
	e.POST(claimsPath, s.submitPriorAuth)
	e.POST(uploadPath, s.uploadClinicalNotes)
	e.GET(statsPath, s.claimStats, s.requireAdmin)

	// The procedure catalog component enforces its own method set.
	e.Any(proceduresPath, echo.WrapHandler(procedures.NewHandler(
		procedures.WithRoutePath(proceduresPath),
		procedures.WithCatalog(s.catalog),
	)))

	return e
}

// Handler exposes the assembled routes, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start listens on the configured port until Shutdown or failure.
func (s *Server) Start() error {
	return s.echo.Start(s.cfg.Address())
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"status":  "operational",
		"service": "RCM Prior Authorization API",
		"version": "1.0.0",
	})
}

// errorHandler renders refusals in the claims API dialect: the status code
// plus a detail payload, which may be a string, an object, or a list of
// field violations.
func (s *Server) errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	detail := any("Internal Server Error")

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		code = httpErr.Code
		detail = httpErr.Message
		if inner, ok := httpErr.Message.(error); ok {
			detail = inner.Error()
		}
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(code)
	} else {
		writeErr = c.JSON(code, echo.Map{"detail": detail})
	}
	if writeErr != nil {
		s.logger.Error().Err(writeErr).Msg("error response write failed")
	}
}
