// Package ui exposes trend analyses over a JSON API.
package ui

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gomarkdown/markdown"

	"gotrend/app"
	"gotrend/domain/trend"
	apperrors "gotrend/internal/errors"
	"gotrend/internal/report"
	"gotrend/ports"
)

// Server wires the trend service into HTTP handlers
type Server struct {
	router  *gin.Engine
	service *app.TrendService
	reader  ports.ReaderPort
}

// AnalyzeRequest is the JSON payload for the analysis endpoints. Values
// and groups are parallel arrays; the ordering is optional and defaults
// to the natural label order.
type AnalyzeRequest struct {
	Values   []float64      `json:"values" binding:"required"`
	Groups   []float64      `json:"groups" binding:"required"`
	Ordering trend.Ordering `json:"ordering"`
}

// NewServer creates a new API server instance. The reader is optional: when
// nil the configured-dataset endpoint answers 404.
func NewServer(service *app.TrendService, reader ports.ReaderPort) *Server {
	s := &Server{
		router:  gin.Default(),
		service: service,
		reader:  reader,
	}
	s.setupRoutes()
	return s
}

// setupRoutes configures the application routes
func (s *Server) setupRoutes() {
	s.router.GET("/healthz", s.handleHealth)
	s.router.GET("/api/v1/methods", s.handleMethods)
	s.router.GET("/api/v1/dataset/trend", s.handleDatasetTrend)
	s.router.POST("/api/v1/trend/jonckheere", s.handleJonckheere)
	s.router.POST("/api/v1/trend/kruskal", s.handleKruskal)
}

// Start starts the web server
func (s *Server) Start(addr string) error {
	log.Printf("Starting trend API on http://%s", addr)
	return s.router.Run(addr)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleMethods serves the methods document rendered to HTML
func (s *Server) handleMethods(c *gin.Context) {
	html := markdown.ToHTML(report.MethodsMarkdown(), nil, nil)
	c.Data(http.StatusOK, "text/html; charset=utf-8", html)
}

// handleJonckheere runs the full trend analysis and returns the envelope
// together with a one-line interpretation.
func (s *Server) handleJonckheere(c *gin.Context) {
	analysis, ok := s.runAnalysis(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"analysis":       analysis,
		"interpretation": report.Interpretation(analysis),
	})
}

// handleDatasetTrend analyzes the dataset file the server was configured
// with. An optional ordering query parameter takes the same "3,2,1" form as
// the CLI flag.
func (s *Server) handleDatasetTrend(c *gin.Context) {
	if s.reader == nil {
		s.renderError(c, apperrors.New(apperrors.CodeNotFound, "no dataset file configured"))
		return
	}

	ordering, err := trend.ParseOrdering(c.Query("ordering"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": apperrors.CodeInvalidInput})
		return
	}

	analysis, err := s.service.RunFile(c.Request.Context(), s.reader, ordering)
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"analysis":       analysis,
		"interpretation": report.Interpretation(analysis),
	})
}

// handleKruskal runs the same analysis but answers with the omnibus part
func (s *Server) handleKruskal(c *gin.Context) {
	analysis, ok := s.runAnalysis(c)
	if !ok {
		return
	}
	if analysis.Kruskal == nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Kruskal-Wallis is undefined when all pooled values are identical",
			"code":  apperrors.CodeComputeError,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"analysis_id":  analysis.AnalysisID,
		"dataset_hash": analysis.DatasetHash,
		"kruskal":      analysis.Kruskal,
	})
}

func (s *Server) runAnalysis(c *gin.Context) (*app.Analysis, bool) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "code": apperrors.CodeInvalidInput})
		return nil, false
	}
	if len(req.Values) != len(req.Groups) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "values and groups must have the same length",
			"code":  apperrors.CodeInvalidInput,
		})
		return nil, false
	}

	observations := make([]trend.Observation, len(req.Values))
	for i := range req.Values {
		observations[i] = trend.Observation{Value: req.Values[i], Group: req.Groups[i]}
	}

	analysis, err := s.service.Run(c.Request.Context(), app.AnalysisRequest{
		Observations: observations,
		Ordering:     req.Ordering,
	})
	if err != nil {
		s.renderError(c, err)
		return nil, false
	}
	return analysis, true
}

// renderError maps application error codes onto HTTP statuses
func (s *Server) renderError(c *gin.Context, err error) {
	code := apperrors.GetCode(err)
	status := http.StatusInternalServerError
	switch code {
	case apperrors.CodeValidationError, apperrors.CodeInvalidInput:
		status = http.StatusBadRequest
	case apperrors.CodeNotFound:
		status = http.StatusNotFound
	case apperrors.CodeComputeError:
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, gin.H{"error": err.Error(), "code": code})
}
