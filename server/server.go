// Package server exposes the validator over HTTP: a single validation
// endpoint plus health and metrics.
package server

import (
	"errors"
	"io"
	"net/http"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/confero/thesischeck"
	"github.com/confero/thesischeck/docx"
)

// maxUploadBytes bounds the accepted document size. Theses are one to two
// pages; anything beyond this is not a thesis.
const maxUploadBytes = 20 << 20

var (
	validationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "thesischeck_validations_total",
			Help: "Validation requests by outcome",
		},
		[]string{"outcome"},
	)
	validationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "thesischeck_validation_duration_seconds",
			Help:    "Time spent validating one document",
			Buckets: prometheus.DefBuckets,
		},
	)
)

// Server wires a Validator into a gin router.
type Server struct {
	validator *thesischeck.Validator
	log       *zap.Logger
	router    *gin.Engine
}

// errorBody is the JSON shape of every non-200 response.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// New builds the HTTP server around the given validator. A nil logger
// falls back to the global one.
func New(validator *thesischeck.Validator, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.L()
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	// Combined access and error log, RFC3339 UTC timestamps, plus panic
	// recovery with stack traces.
	router.Use(ginzap.Ginzap(logger, time.RFC3339, true))
	router.Use(ginzap.RecoveryWithZap(logger, true))
	router.Use(requestID())

	s := &Server{
		validator: validator,
		log:       logger,
		router:    router,
	}

	router.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "online")
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		v1.POST("/validate", s.handleValidate)
	}

	return s
}

// Handler returns the router as a plain http.Handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until the listener fails.
func (s *Server) Run(addr string) error {
	s.log.Info("listening", zap.String("addr", addr))
	return s.router.Run(addr)
}

// requestID tags every request with an X-Request-ID, generating one when
// the client did not send its own.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Header("X-Request-ID", id)
		c.Set("request_id", id)
		c.Next()
	}
}

func (s *Server) handleValidate(c *gin.Context) {
	start := time.Now()

	data, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes))
	if err != nil {
		validationsTotal.WithLabelValues("rejected").Inc()
		s.reply(c, http.StatusRequestEntityTooLarge, errorBody{
			Error:   "too_large",
			Message: "document exceeds the upload limit",
		})
		return
	}

	report, err := s.validator.Validate(data)
	if err != nil {
		validationsTotal.WithLabelValues("rejected").Inc()
		s.log.Warn("document rejected",
			zap.String("request_id", c.GetString("request_id")),
			zap.Error(err))

		body := errorBody{Error: "unreadable", Message: err.Error()}
		switch {
		case errors.Is(err, docx.ErrCorruptPackage):
			body.Error = "corrupt_package"
		case errors.Is(err, docx.ErrMalformedMarkup):
			body.Error = "malformed_markup"
		}
		s.reply(c, http.StatusBadRequest, body)
		return
	}

	validationDuration.Observe(time.Since(start).Seconds())
	if report.OK {
		validationsTotal.WithLabelValues("ok").Inc()
	} else {
		validationsTotal.WithLabelValues("failed").Inc()
	}

	s.reply(c, http.StatusOK, report)
}

// reply writes a JSON response. Encoding a report cannot realistically
// fail; a failure here means the connection is gone anyway.
func (s *Server) reply(c *gin.Context, status int, body any) {
	payload, err := json.Marshal(body)
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.Data(status, "application/json; charset=utf-8", payload)
}
