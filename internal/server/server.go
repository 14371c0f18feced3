// internal/server/server.go
package server

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"inventory-risk-service/internal/catalog"
	"inventory-risk-service/internal/common/observability"
	"inventory-risk-service/internal/risk"
)

// Options carries the server level settings the handlers need.
type Options struct {
	AllowedOrigins []string
	ModelVersion   string
}

// Server is the HTTP surface of the risk scoring service.
type Server struct {
	router       *gin.Engine
	logger       *zap.Logger
	engine       *risk.Engine
	store        catalog.Store
	obs          *observability.Observability
	modelVersion string
}

// New builds the router with all middleware and routes registered.
func New(logger *zap.Logger, engine *risk.Engine, store catalog.Store, obs *observability.Observability, opts Options) *Server {
	s := &Server{
		logger:       logger,
		engine:       engine,
		store:        store,
		obs:          obs,
		modelVersion: opts.ModelVersion,
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(s.requestIDMiddleware())
	router.Use(s.requestLogMiddleware())

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:  origins,
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}))

	s.router = router
	s.registerRoutes()
	return s
}

// Router returns the internal Gin engine for testing purposes
func (s *Server) Router() *gin.Engine {
	return s.router
}

// registerRoutes registers all API routes
func (s *Server) registerRoutes() {
	s.router.GET("/healthz", s.handleHealth)
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := s.router.Group("/api")
	{
		api.POST("/predict", s.handlePredict)
		api.GET("/products", s.handleListProducts)
		api.GET("/products/:id", s.handleGetProduct)
	}
}

// requestIDMiddleware tags every request with an id, honoring one the
// caller already sent.
func (s *Server) requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set("requestID", requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

func (s *Server) requestLogMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		s.logger.Info("request completed",
			zap.String("request_id", c.GetString("requestID")),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	}
}
