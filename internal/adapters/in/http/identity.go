package http

import (
	"net/http"
	"strings"

	"shiptrack/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Identity headers are set by the gateway after authenticating the caller.
const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"
	HeaderUserName = "X-User-Name"

	identityKey = "identity"
)

// Identity is the authenticated caller of a request.
type Identity struct {
	UserID kernel.UUID
	Role   kernel.Role
	Name   string
}

// Actor is the name recorded on tracking events. The user id stands in when
// the gateway sent no name.
func (i Identity) Actor() string {
	if i.Name != "" {
		return i.Name
	}
	return i.UserID.String()
}

// authenticated rejects requests without a valid caller id with 401 and,
// when roles are given, callers holding none of them with 403.
func authenticated(roles ...kernel.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := strings.TrimSpace(c.Request().Header.Get(HeaderUserID))
			if raw == "" {
				return writeError(c, http.StatusUnauthorized, "Authentication is required")
			}
			userID, err := kernel.UUIDFromString(raw)
			if err != nil {
				return writeError(c, http.StatusUnauthorized, "Invalid user id")
			}

			id := Identity{
				UserID: userID,
				Role:   kernel.ParseRole(c.Request().Header.Get(HeaderUserRole)),
				Name:   strings.TrimSpace(c.Request().Header.Get(HeaderUserName)),
			}
			if len(roles) > 0 && !id.Role.IsOneOf(roles...) {
				return writeError(c, http.StatusForbidden, "Access denied")
			}

			c.Set(identityKey, id)
			return next(c)
		}
	}
}

func identityFrom(c echo.Context) Identity {
	id, _ := c.Get(identityKey).(Identity)
	return id
}
