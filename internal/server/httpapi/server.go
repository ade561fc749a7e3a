// Package httpapi is the session boundary: it exposes the signup, signin,
// logout, and token-validation operations over HTTP, carries the session
// token in an HTTP-only cookie, and translates service outcomes into status
// codes. Transport concerns stop here; the users.Service below it knows
// nothing about HTTP.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/authgate/authgate/internal/logging"
	"github.com/authgate/authgate/internal/server/config"
	"github.com/authgate/authgate/internal/server/users"
)

// storeTimeout bounds each request's store and hashing work so a stuck
// backend cannot hang the request forever.
const storeTimeout = 5 * time.Second

type Server struct {
	address       string
	users         *users.Service
	logger        logging.Logger
	cookieMaxAge  int
	cookieSecure  bool
	allowedOrigin string
	engine        *gin.Engine
}

func NewServer(cfg *config.Config, l logging.Logger, us *users.Service) *Server {
	gin.SetMode(cfg.GinMode)

	s := &Server{
		address:       cfg.EndpointAddr,
		users:         us,
		logger:        l.With("module", "httpapi"),
		cookieMaxAge:  int(cfg.TokenValidityDuration.Seconds()),
		cookieSecure:  cfg.GinMode == gin.ReleaseMode,
		allowedOrigin: cfg.AllowedOrigin,
	}
	s.engine = s.buildRouter()
	return s
}

// Handler exposes the router; tests drive it directly without a listener.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) buildRouter() *gin.Engine {
	registerPasswordValidation()

	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{s.allowedOrigin}
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{"GET", "HEAD", "PUT", "PATCH", "POST", "DELETE"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	router.Use(cors.New(corsConfig))

	router.GET("/health", s.handleHealth)

	authRoutes := router.Group("/auth")
	{
		authRoutes.POST("/signup", s.handleSignup)
		authRoutes.POST("/signin", s.handleSignin)
		authRoutes.POST("/logout", s.handleLogout)
		authRoutes.GET("/validate-token", s.handleValidateToken)
	}

	return router
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "authgate"})
}

// Run starts the HTTP server and blocks until ctx is canceled, then shuts
// down gracefully, draining in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.address,
		Handler: s.engine,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
