package middleware

import (
	"net/http"
	"strings"

	"khabar/domain"
	"khabar/usecase/auth_usecase"

	"github.com/labstack/echo/v4"
)

const claimsContextKey = "auth_claims"

// TokenVerifier validates a bearer token and returns its claims.
type TokenVerifier interface {
	VerifyToken(token string) (*auth_usecase.Claims, error)
}

// JWTMiddleware rejects requests without a valid bearer token and stashes
// the verified claims on the echo context.
func JWTMiddleware(verifier TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || strings.TrimSpace(token) == "" {
				// Legacy clients send the raw token in x-auth-token.
				token = c.Request().Header.Get("x-auth-token")
			}
			if strings.TrimSpace(token) == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "no token, authorization denied")
			}

			claims, err := verifier.VerifyToken(strings.TrimSpace(token))
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "token is not valid")
			}

			c.Set(claimsContextKey, claims)
			return next(c)
		}
	}
}

// RequireAdmin gates a route to admin accounts. It must run after
// JWTMiddleware.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := ClaimsFrom(c)
			if claims == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "no token, authorization denied")
			}
			if claims.Role != string(domain.RoleAdmin) {
				return echo.NewHTTPError(http.StatusForbidden, "admin access required")
			}
			return next(c)
		}
	}
}

// ClaimsFrom returns the verified claims set by JWTMiddleware, or nil.
func ClaimsFrom(c echo.Context) *auth_usecase.Claims {
	claims, _ := c.Get(claimsContextKey).(*auth_usecase.Claims)
	return claims
}
