package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/nthnyvllflrs/ascent-erp/pkg/jwtutil"
	"github.com/nthnyvllflrs/ascent-erp/pkg/logger"
	"github.com/nthnyvllflrs/ascent-erp/pkg/metrics"
	"go.uber.org/zap"
)

// JWTAuth rejects requests without a valid HS256 bearer token and stores the
// caller's claims on the context
func JWTAuth(jwtUtil *jwtutil.JWTUtil, m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			log := logger.FromContext(c)

			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				log.Warn("Missing authorization header")
				m.RecordAuthError("missing_token")
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Unauthenticated."})
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
				log.Warn("Invalid authorization header format")
				m.RecordAuthError("invalid_format")
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Unauthenticated."})
			}

			claims, err := jwtUtil.ValidateToken(parts[1])
			if err != nil {
				log.Warn("Invalid or expired token", zap.Error(err))
				m.RecordAuthError("invalid_token")
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Unauthenticated."})
			}

			c.Set("user", claims)
			c.Set("user_id", claims.UserID)
			c.Set("email", claims.Email)
			m.RecordAuthSuccess()

			// later log lines of this request identify the caller
			logger.SetEcho(c, log.With(zap.Uint("user_id", claims.UserID)))

			return next(c)
		}
	}
}

// UserFromContext returns the claims stored by JWTAuth
func UserFromContext(c echo.Context) (*jwtutil.UserClaims, bool) {
	claims, ok := c.Get("user").(*jwtutil.UserClaims)
	return claims, ok
}
