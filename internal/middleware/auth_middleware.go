package middleware

import (
	"net/http"
	"strings"

	jsonres "clovermarket/pkg/response"
	"clovermarket/pkg/utils"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware validates the bearer token and stashes the caller identity
// on the request context. Token issuance lives outside this service; only
// verification happens here.
func AuthMiddleware(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return c.JSON(http.StatusUnauthorized, jsonres.Error(
					"UNAUTHORIZED", "Missing authorization header", nil,
				))
			}

			tokenParts := strings.Split(authHeader, " ")
			if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
				return c.JSON(http.StatusUnauthorized, jsonres.Error(
					"UNAUTHORIZED", "Invalid authorization format", nil,
				))
			}

			claims, err := utils.ParseJWT(tokenParts[1], secret)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, jsonres.Error(
					"UNAUTHORIZED", "Invalid token", nil,
				))
			}

			c.Set("user_id", claims.UserID)
			c.Set("role", claims.Role)

			return next(c)
		}
	}
}

// MerchantOnly gates the product-management routes to the MERCHANT role.
func MerchantOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get("role").(string)
			if !ok || role != utils.RoleMerchant {
				return c.JSON(http.StatusForbidden, jsonres.Error(
					"FORBIDDEN", "Merchant role required", nil,
				))
			}

			return next(c)
		}
	}
}
