package auth

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	binderr "github.com/AliRehmantechndev/EdgeMind-backend/pkg/api/binding/errors"
)

const userIdContextKey = "edgemind/userId"

// Required returns a middleware rejecting requests without a valid
// "Authorization: Bearer <token>" header with 401.
//
// The verified user id is stored on the echo context; read it with UserId.
func Required(issuer *Issuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				return binderr.Unauthorized(
					"authorization required",
					errors.New("no bearer token"),
				)
			}

			userId, err := issuer.Verify(token)
			if err != nil {
				return binderr.Unauthorized("invalid token", err)
			}

			c.Set(userIdContextKey, userId)
			return next(c)
		}
	}
}

// UserId reads the authenticated user id set by Required.
func UserId(c echo.Context) string {
	userId, _ := c.Get(userIdContextKey).(string)
	return userId
}

// SetUserId stores the user id the way Required does. For tests.
func SetUserId(c echo.Context, userId string) {
	c.Set(userIdContextKey, userId)
}
