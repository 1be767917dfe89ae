package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	binderr "github.com/AliRehmantechndev/EdgeMind-backend/pkg/api/binding/errors"
	kdb "github.com/AliRehmantechndev/EdgeMind-backend/pkg/db"
)

func HealthHandler(database kdb.Database) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := database.Ping(c.Request().Context()); err != nil {
			return binderr.ServiceUnavailable("database is not reachable", err)
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	}
}
