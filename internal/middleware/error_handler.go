package middleware

import (
	"errors"
	"net/http"

	"clovermarket/pkg/logger"
	jsonres "clovermarket/pkg/response"

	"github.com/labstack/echo/v4"
)

// ErrorHandler is the echo fallback for errors that escape a handler.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "Internal server error"

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		code = httpErr.Code
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
	}

	if code >= http.StatusInternalServerError {
		logger.Error("unhandled request error", "error", err, "path", c.Request().URL.Path)
	}

	_ = c.JSON(code, jsonres.Error(http.StatusText(code), message, nil))
}
