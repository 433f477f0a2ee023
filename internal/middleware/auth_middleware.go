package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"smartShop/pkg/logger"
	"smartShop/pkg/utils"

	jsonres "smartShop/pkg/response"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware basic JWT authentication
func AuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, errRes := claimsFromHeader(c)
			if errRes != nil {
				return c.JSON(http.StatusUnauthorized, *errRes)
			}

			expAt, err := claims.GetExpirationTime()
			if err != nil || time.Now().After(expAt.Time) {
				return c.JSON(http.StatusForbidden, jsonres.Error(
					"FORBIDDEN", "Token expired", nil,
				))
			}

			userIDUint, err := strconv.ParseUint(claims.UserID, 10, 64)
			if err != nil {
				logger.Error("Invalid user ID in token", err)
				return c.JSON(http.StatusForbidden, jsonres.Error(
					"FORBIDDEN", "Invalid user ID in token", nil,
				))
			}

			c.Set("user_id", uint(userIDUint))
			c.Set("role", claims.Role)

			return next(c)
		}
	}
}

// OptionalAuth sets user_id when a valid Bearer token is present and lets
// the request through anonymously otherwise. Used by the recommendation
// endpoint, where the user identity is optional.
func OptionalAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, errRes := claimsFromHeader(c)
			if errRes != nil {
				return next(c)
			}

			expAt, err := claims.GetExpirationTime()
			if err != nil || time.Now().After(expAt.Time) {
				return next(c)
			}

			userIDUint, err := strconv.ParseUint(claims.UserID, 10, 64)
			if err != nil {
				return next(c)
			}

			c.Set("user_id", uint(userIDUint))
			c.Set("role", claims.Role)

			return next(c)
		}
	}
}

// AdminOnly must run after AuthMiddleware.
func AdminOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get("role").(string)
			if !ok || role != "admin" {
				return c.JSON(http.StatusForbidden, jsonres.Error(
					"FORBIDDEN", "Admin access required", nil,
				))
			}

			return next(c)
		}
	}
}

func claimsFromHeader(c echo.Context) (*utils.JWTClaims, *jsonres.Body) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		res := jsonres.Error("UNAUTHORIZED", "Missing authorization header", nil)
		return nil, &res
	}

	tokenParts := strings.Split(authHeader, " ")
	if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
		res := jsonres.Error("UNAUTHORIZED", "Invalid authorization format", nil)
		return nil, &res
	}

	claims, err := utils.ParseJWT(tokenParts[1])
	if err != nil {
		res := jsonres.Error("UNAUTHORIZED", "Invalid token", nil)
		return nil, &res
	}

	return claims, nil
}
