package rest

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"clovermarket/domain"
	"clovermarket/pkg/logger"
	"clovermarket/pkg/metrics"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type CatalogService interface {
	GetProductsPaged(ctx context.Context, q domain.CatalogQuery) domain.ProductPage
	GetProductByID(ctx context.Context, id uint64) (*domain.Product, error)
	GetFilterMetadata(ctx context.Context) (domain.FilterMetadata, error)
	CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	UpdateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id uint64) error
}

type CatalogHandler struct {
	catalogService CatalogService
	validator      *validator.Validate
	timeout        time.Duration
}

func NewCatalogHandler(catalogService CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		validator:      validator.New(),
		timeout:        10 * time.Second,
	}
}

type ListProductsQuery struct {
	Q        string `query:"q"`
	Category string `query:"category"`
	MinPrice string `query:"min_price"`
	MaxPrice string `query:"max_price"`
	Brand    string `query:"brand"`
	Color    string `query:"color"`
	Sort     string `query:"sort"`
	Page     int    `query:"page"`
}

type ProductRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Price       string   `json:"price" validate:"required"`
	Category    string   `json:"category"`
	Brand       string   `json:"brand"`
	Colors      []string `json:"colors"`
	Stock       int      `json:"stock" validate:"gte=0"`
	Status      string   `json:"status" validate:"omitempty,oneof=ACTIVE OUT_OF_STOCK ARCHIVED"`
	Images      []string `json:"images"`
	StoreID     string   `json:"store_id" validate:"omitempty,uuid"`
}

// GET /api/v1/products
func (h *CatalogHandler) GetProducts(c echo.Context) error {
	var q ListProductsQuery
	if err := c.Bind(&q); err != nil {
		logger.Error("failed to bind listing query", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	query, err := toCatalogQuery(q)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	start := time.Now()
	page := h.catalogService.GetProductsPaged(ctx, query)
	metrics.CatalogSearchDuration.Observe(time.Since(start).Seconds())

	return c.JSON(http.StatusOK, fres.Response.StatusOK(toProductPageResponse(page)))
}

// GET /api/v1/products/filters
func (h *CatalogHandler) GetFilterMetadata(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	meta, err := h.catalogService.GetFilterMetadata(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(meta))
}

// GET /api/v1/products/:id
func (h *CatalogHandler) GetProductByID(c echo.Context) error {
	productID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		logger.Error("invalid product id", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	product, err := h.catalogService.GetProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(toProductResponse(*product)))
}

// POST /api/v1/products
func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("failed to bind product request", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("failed to validate product request", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	product, err := toProduct(req, 0)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	created, err := h.catalogService.CreateProduct(ctx, product)
	if err != nil {
		if isValidationError(err) {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(toProductResponse(*created)))
}

// PUT /api/v1/products/:id
func (h *CatalogHandler) UpdateProduct(c echo.Context) error {
	productID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		logger.Error("invalid product id", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("failed to bind product request", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("failed to validate product request", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	product, err := toProduct(req, productID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	updated, err := h.catalogService.UpdateProduct(ctx, product)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		if isValidationError(err) {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(toProductResponse(*updated)))
}

// DELETE /api/v1/products/:id
func (h *CatalogHandler) DeleteProduct(c echo.Context) error {
	productID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		logger.Error("invalid product id", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.catalogService.DeleteProduct(ctx, productID); err != nil {
		if errors.Is(err, domain.ErrProductNotFound) || err.Error() == "invalid product id" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(map[string]any{"product_id": productID}))
}

func toCatalogQuery(q ListProductsQuery) (domain.CatalogQuery, error) {
	query := domain.CatalogQuery{
		Search:   q.Q,
		Category: q.Category,
		Brand:    q.Brand,
		Color:    q.Color,
		Sort:     q.Sort,
		Page:     q.Page,
	}

	if q.MinPrice != "" {
		min, err := decimal.NewFromString(q.MinPrice)
		if err != nil {
			return domain.CatalogQuery{}, errors.New("invalid min_price")
		}
		query.MinPrice = &min
	}

	if q.MaxPrice != "" {
		max, err := decimal.NewFromString(q.MaxPrice)
		if err != nil {
			return domain.CatalogQuery{}, errors.New("invalid max_price")
		}
		query.MaxPrice = &max
	}

	return query, nil
}

func toProduct(req ProductRequest, id uint64) (*domain.Product, error) {
	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		return nil, errors.New("invalid price")
	}

	product := &domain.Product{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Price:       price,
		Category:    req.Category,
		Brand:       req.Brand,
		Colors:      req.Colors,
		Stock:       req.Stock,
		Status:      req.Status,
		Images:      req.Images,
	}

	if req.StoreID != "" {
		storeID, err := uuid.Parse(req.StoreID)
		if err != nil {
			return nil, errors.New("invalid store_id")
		}
		product.StoreID = storeID
	}

	return product, nil
}

func isValidationError(err error) bool {
	switch err.Error() {
	case "product name is required",
		"price must be greater than 0",
		"stock cannot be negative",
		"product ID is required",
		"invalid product id":
		return true
	}
	return false
}
