package middleware

import (
	"net/http"
	"strings"

	"github.com/Gnanasekark/Online-property-listing/pkg/jwtutil"
	"github.com/Gnanasekark/Online-property-listing/pkg/logger"
	"github.com/Gnanasekark/Online-property-listing/prometheus"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// UserKey is the echo.Context key holding the caller's *jwtutil.UserClaims
const UserKey = "user"

// bearerToken extracts the token from the Authorization header
func bearerToken(c echo.Context) (string, bool) {
	parts := strings.Split(c.Request().Header.Get("Authorization"), " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// JWTAuthMiddleware creates a middleware that validates JWT tokens
func JWTAuthMiddleware(jwtUtil *jwtutil.JWTUtil) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			log := logger.FromEcho(c)

			if c.Request().Header.Get("Authorization") == "" {
				log.Warn("Missing authorization header")
				prometheus.RecordAuthError("missing_token")
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Missing authorization header"})
			}

			tokenString, ok := bearerToken(c)
			if !ok {
				log.Warn("Invalid authorization header format")
				prometheus.RecordAuthError("invalid_header")
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid authorization header format"})
			}

			claims, err := jwtUtil.ValidateToken(tokenString)
			if err != nil {
				log.Warn("Invalid or expired token", zap.Error(err))
				prometheus.RecordAuthError("invalid_token")
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid or expired token"})
			}

			c.Set(UserKey, claims)
			log.Debug("JWT token validated successfully",
				zap.String("user_id", claims.UserID),
				zap.String("email", claims.Email))

			return next(c)
		}
	}
}

// OptionalJWTAuth attaches the caller's claims when a valid bearer token is sent.
// Requests without one, or with an invalid one, continue anonymously.
func OptionalJWTAuth(jwtUtil *jwtutil.JWTUtil) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenString, ok := bearerToken(c)
			if !ok {
				return next(c)
			}
			claims, err := jwtUtil.ValidateToken(tokenString)
			if err != nil {
				logger.FromEcho(c).Debug("Ignoring invalid optional token", zap.Error(err))
				return next(c)
			}
			c.Set(UserKey, claims)
			return next(c)
		}
	}
}

// RequireRole rejects callers whose token does not carry one of roles. It must run after JWTAuthMiddleware.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := ClaimsFromContext(c)
			if claims == nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Authentication required"})
			}
			for _, role := range roles {
				if claims.Role == role {
					return next(c)
				}
			}
			logger.FromEcho(c).Warn("Role not permitted",
				zap.String("user_id", claims.UserID),
				zap.String("role", claims.Role))
			prometheus.RecordAuthError("role_denied")
			return c.JSON(http.StatusForbidden, echo.Map{"error": "Access denied for role " + claims.Role})
		}
	}
}

// ClaimsFromContext returns the authenticated caller, or nil for anonymous requests
func ClaimsFromContext(c echo.Context) *jwtutil.UserClaims {
	claims, _ := c.Get(UserKey).(*jwtutil.UserClaims)
	return claims
}
