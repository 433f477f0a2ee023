package middleware

import (
	"net/http"

	"smartShop/pkg/logger"
	jsonres "smartShop/pkg/response"

	"github.com/labstack/echo/v4"
)

// ErrorHandler is the global echo HTTP error handler.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "Internal server error"

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if msg, ok := he.Message.(string); ok {
			message = msg
		}
	}

	if code >= http.StatusInternalServerError {
		logger.Error("Unhandled request error", "path", c.Request().URL.Path, "error", err)
	}

	_ = c.JSON(code, jsonres.Error(http.StatusText(code), message, nil))
}
