package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"shiptrack/internal/core/ports"
	"shiptrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const identityContextKey = "identity"

// NewAuthMiddleware resolves the bearer session token on each request and
// attaches the caller identity to the echo context. Requests without a
// resolvable token are rejected with 401 before reaching the handler.
//
// Every authenticated caller passes; the identity's role is carried along
// but not checked.
func NewAuthMiddleware(provider ports.IdentityProvider) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			token := bearerToken(ctx.Request().Header.Get(echo.HeaderAuthorization))

			identity, err := provider.Resolve(ctx.Request().Context(), token)
			if err != nil {
				if errors.Is(err, errs.ErrUnauthorized) {
					return ctx.JSON(http.StatusUnauthorized, Error{
						Code:    http.StatusUnauthorized,
						Message: "Unauthorized",
					})
				}

				slog.Error("identity resolution failed",
					"path", ctx.Request().URL.Path,
					"error", err,
				)
				return ctx.JSON(http.StatusInternalServerError, Error{
					Code:    http.StatusInternalServerError,
					Message: "Internal server error",
				})
			}

			ctx.Set(identityContextKey, identity)
			return next(ctx)
		}
	}
}

// IdentityFromContext returns the caller identity stored by the
// authentication middleware, if any.
func IdentityFromContext(ctx echo.Context) (ports.Identity, bool) {
	identity, ok := ctx.Get(identityContextKey).(ports.Identity)
	return identity, ok
}

// bearerToken extracts the token from an "Authorization: Bearer ..."
// header. Returns the empty string for any other shape.
func bearerToken(header string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
