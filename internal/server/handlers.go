// internal/server/handlers.go
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"inventory-risk-service/internal/catalog"
	apperrors "inventory-risk-service/internal/common/errors"
	"inventory-risk-service/internal/common/metrics"
	"inventory-risk-service/internal/risk"
)

// ScoredProduct is a catalog entry together with its risk assessment.
type ScoredProduct struct {
	catalog.Product
	Risk         risk.Label `json:"risk"`
	Explanations []string   `json:"explanations"`
}

// handlePredict scores a single feature payload.
func (s *Server) handlePredict(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		s.respondValidationFailure(c, []string{"body: unable to read request body"})
		return
	}

	details, err := validatePredictRequest(body)
	if err != nil {
		s.respondValidationFailure(c, []string{err.Error()})
		return
	}
	if len(details) > 0 {
		s.respondValidationFailure(c, details)
		return
	}

	var features risk.FeatureSet
	if err := json.Unmarshal(body, &features); err != nil {
		s.respondValidationFailure(c, []string{"body: " + err.Error()})
		return
	}

	start := time.Now()
	result := s.engine.Score(features)
	elapsed := time.Since(start)

	metrics.PredictionsTotal.WithLabelValues(string(result.Risk), s.engine.Path()).Inc()
	metrics.PredictionDuration.Observe(elapsed.Seconds())
	if s.obs != nil {
		s.obs.RecordPrediction(c.Request.Context(), string(result.Risk), s.engine.Path())
		s.obs.RecordScoreDuration(c.Request.Context(), elapsed)
	}

	c.JSON(http.StatusOK, result)
}

// handleListProducts returns the catalog with a risk assessment per
// product. A missing or failing catalog degrades to an empty list.
func (s *Server) handleListProducts(c *gin.Context) {
	products, err := s.store.List(c.Request.Context())
	if err != nil {
		s.logger.Warn("catalog list failed, serving empty catalog",
			zap.String("request_id", c.GetString("requestID")),
			zap.Error(err))
		metrics.CatalogRequests.WithLabelValues("store", "error").Inc()
		c.JSON(http.StatusOK, []ScoredProduct{})
		return
	}
	metrics.CatalogRequests.WithLabelValues("store", "ok").Inc()

	scored := make([]ScoredProduct, 0, len(products))
	for _, p := range products {
		result := s.engine.Score(p.Features())
		scored = append(scored, ScoredProduct{
			Product:      p,
			Risk:         result.Risk,
			Explanations: result.Explanations,
		})
	}

	c.JSON(http.StatusOK, scored)
}

// handleGetProduct returns one scored product by id.
func (s *Server) handleGetProduct(c *gin.Context) {
	id := c.Param("id")

	p, err := s.store.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			metrics.CatalogRequests.WithLabelValues("store", "miss").Inc()
			svcErr := apperrors.NewProductNotFoundError(id)
			c.JSON(apperrors.HTTPStatus(svcErr.Code), svcErr.ToResponse())
			return
		}

		s.logger.Error("catalog lookup failed",
			zap.String("request_id", c.GetString("requestID")),
			zap.String("product_id", id),
			zap.Error(err))
		metrics.CatalogRequests.WithLabelValues("store", "error").Inc()
		svcErr := apperrors.NewCatalogUnavailableError(err)
		c.JSON(apperrors.HTTPStatus(svcErr.Code), svcErr.ToResponse())
		return
	}
	metrics.CatalogRequests.WithLabelValues("store", "ok").Inc()

	result := s.engine.Score(p.Features())
	c.JSON(http.StatusOK, ScoredProduct{
		Product:      p,
		Risk:         result.Risk,
		Explanations: result.Explanations,
	})
}

// handleHealth reports liveness and which scoring path is active.
func (s *Server) handleHealth(c *gin.Context) {
	health := gin.H{
		"status":       "ok",
		"scoring_path": s.engine.Path(),
		"time":         time.Now().UTC(),
	}
	if s.modelVersion != "" {
		health["model_version"] = s.modelVersion
	}
	c.JSON(http.StatusOK, health)
}

func (s *Server) respondValidationFailure(c *gin.Context, details []string) {
	metrics.ValidationFailures.Inc()
	s.logger.Info("predict request rejected",
		zap.String("request_id", c.GetString("requestID")),
		zap.Strings("details", details))

	svcErr := apperrors.NewValidationFailedError(details)
	c.JSON(apperrors.HTTPStatus(svcErr.Code), svcErr.ToResponse())
}
