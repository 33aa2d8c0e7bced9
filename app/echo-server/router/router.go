package router

import (
	"clovermarket/internal/middleware"
	"clovermarket/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupCatalogRoutes(api *echo.Group, handler *rest.CatalogHandler, authRequired echo.MiddlewareFunc, merchantOnly echo.MiddlewareFunc) {
	products := api.Group("/products")

	products.GET("", handler.GetProducts)
	products.GET("/filters", handler.GetFilterMetadata)
	products.GET("/:id", handler.GetProductByID)

	products.POST("", handler.CreateProduct, authRequired, merchantOnly)
	products.PUT("/:id", handler.UpdateProduct, authRequired, merchantOnly)
	products.DELETE("/:id", handler.DeleteProduct, authRequired, merchantOnly)
}

func SetupRecommendationRoutes(api *echo.Group, handler *rest.RecommendationHandler) {
	products := api.Group("/products")

	products.GET("/:id/recommendations", handler.Related)
	products.GET("/:id/frequently-bought-together", handler.FrequentlyBoughtTogether)
	products.GET("/:id/related-by-category", handler.RelatedByCategory)
}

// MerchantGate bundles the auth chain used by the product-management routes.
func MerchantGate(secret string) (echo.MiddlewareFunc, echo.MiddlewareFunc) {
	return middleware.AuthMiddleware(secret), middleware.MerchantOnly()
}
