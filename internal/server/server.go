// Package server exposes the transform pipeline over HTTP.
package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/VivekMane57/sectionize/pkg/sectionize"
)

// requestIDHeader carries the per-request id in both directions.
const requestIDHeader = "X-Request-ID"

// Server is the upload API.
type Server struct {
	router    *gin.Engine
	pipeline  *sectionize.Pipeline
	log       *zap.Logger
	maxUpload int64
}

// Option customizes a Server.
type Option func(*Server)

// WithMaxUpload limits the total multipart body size in bytes.
func WithMaxUpload(n int64) Option {
	return func(s *Server) { s.maxUpload = n }
}

// New returns a server transforming uploads with p.
func New(p *sectionize.Pipeline, log *zap.Logger, opts ...Option) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		router:    gin.New(),
		pipeline:  p,
		log:       log,
		maxUpload: 32 << 20,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.Use(gin.Recovery(), s.requestID(), s.accessLog())

	api := s.router.Group("/api")
	{
		api.GET("/health", s.health)
		api.POST("/transform", s.transform)
		api.POST("/transform/zip", s.transformZip)
	}
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run listens on addr and serves until the listener fails.
func (s *Server) Run(addr string) error {
	s.log.Info("listening", zap.String("addr", addr))
	return s.router.Run(addr)
}

// requestID tags every request with an id, reusing the caller's when given.
func (s *Server) requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func (s *Server) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Info("request",
			zap.String("request_id", c.GetString("request_id")),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
