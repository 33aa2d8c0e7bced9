package rest

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"clovermarket/domain"
	"clovermarket/pkg/logger"
	"clovermarket/pkg/metrics"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

type (
	RecommendationHandler struct {
		recommendationService RecommendationService
		timeout               time.Duration
	}

	RecommendationService interface {
		GetProductRecommendations(ctx context.Context, productID uint64, limit int) []domain.Product
		GetFrequentlyBoughtTogether(ctx context.Context, productID uint64, limit int) []domain.Product
		GetCategoryBasedRecommendations(ctx context.Context, productID uint64, category string, limit int) []domain.Product
	}
)

func NewRecommendationHandler(svc RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{
		recommendationService: svc,
		timeout:               10 * time.Second,
	}
}

// GET /api/v1/products/:id/recommendations?limit=4
func (h *RecommendationHandler) Related(c echo.Context) error {
	productID, ok := h.productID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid product id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	start := time.Now()
	products := h.recommendationService.GetProductRecommendations(ctx, productID, limitParam(c))
	metrics.RecommendDuration.Observe(time.Since(start).Seconds())
	metrics.RecommendTotal.Inc()

	return c.JSON(http.StatusOK, fres.Response.StatusOK(toProductResponses(products)))
}

// GET /api/v1/products/:id/frequently-bought-together?limit=3
func (h *RecommendationHandler) FrequentlyBoughtTogether(c echo.Context) error {
	productID, ok := h.productID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid product id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	start := time.Now()
	products := h.recommendationService.GetFrequentlyBoughtTogether(ctx, productID, limitParam(c))
	metrics.RecommendDuration.Observe(time.Since(start).Seconds())
	metrics.RecommendTotal.Inc()

	return c.JSON(http.StatusOK, fres.Response.StatusOK(toProductResponses(products)))
}

// GET /api/v1/products/:id/related-by-category?category=shoes&limit=4
func (h *RecommendationHandler) RelatedByCategory(c echo.Context) error {
	productID, ok := h.productID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid product id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	start := time.Now()
	products := h.recommendationService.GetCategoryBasedRecommendations(ctx, productID, c.QueryParam("category"), limitParam(c))
	metrics.RecommendDuration.Observe(time.Since(start).Seconds())
	metrics.RecommendTotal.Inc()

	return c.JSON(http.StatusOK, fres.Response.StatusOK(toProductResponses(products)))
}

func (h *RecommendationHandler) productID(c echo.Context) (uint64, bool) {
	productID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		logger.Error("invalid product id in recommendation request", "error", err)
		return 0, false
	}
	return productID, true
}

// limitParam returns the requested limit, 0 when absent or malformed so the
// service applies its default.
func limitParam(c echo.Context) int {
	raw := c.QueryParam("limit")
	if raw == "" {
		return 0
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0
	}

	return limit
}
