package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/mail"
	"time"

	"github.com/labstack/echo/v4"

	binderr "github.com/AliRehmantechndev/EdgeMind-backend/pkg/api/binding/errors"
	apiauth "github.com/AliRehmantechndev/EdgeMind-backend/pkg/api/types/auth"
	"github.com/AliRehmantechndev/EdgeMind-backend/pkg/auth"
	kdb "github.com/AliRehmantechndev/EdgeMind-backend/pkg/db"
)

func RegisterHandler(dbUser kdb.UserInterface, issuer *auth.Issuer) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		req := apiauth.RegisterRequest{}
		decoder := json.NewDecoder(c.Request().Body)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&req); err != nil {
			return binderr.BadRequest("request body should be a register request", err)
		}

		if _, err := mail.ParseAddress(req.Email); err != nil {
			return binderr.BadRequest(`"email" should be a valid address`, err)
		}
		if len(req.Password) < 8 {
			return binderr.BadRequest(`"password" should have at least 8 characters`, nil)
		}

		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			return binderr.InternalServerError(err)
		}

		user, err := dbUser.Register(ctx, req.Email, hash)
		if errors.Is(err, kdb.ErrAlreadyExists) {
			return binderr.Conflict("email is already registered")
		} else if err != nil {
			return binderr.InternalServerError(err)
		}

		token, err := issuer.Issue(user.Id, time.Now())
		if err != nil {
			return binderr.InternalServerError(err)
		}

		return c.JSON(http.StatusCreated, apiauth.TokenResponse{
			Token: token,
			User:  apiauth.ComposeUserDetail(user),
		})
	}
}

func LoginHandler(dbUser kdb.UserInterface, issuer *auth.Issuer) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		req := apiauth.LoginRequest{}
		decoder := json.NewDecoder(c.Request().Body)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&req); err != nil {
			return binderr.BadRequest("request body should be a login request", err)
		}

		user, err := dbUser.GetByEmail(ctx, req.Email)
		if errors.Is(err, kdb.ErrMissing) {
			// same answer as a wrong password; do not leak which accounts exist
			return binderr.Unauthorized("email or password is incorrect", err)
		} else if err != nil {
			return binderr.InternalServerError(err)
		}

		if !auth.VerifyPassword(user.PasswordHash, req.Password) {
			return binderr.Unauthorized("email or password is incorrect", nil)
		}

		token, err := issuer.Issue(user.Id, time.Now())
		if err != nil {
			return binderr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, apiauth.TokenResponse{
			Token: token,
			User:  apiauth.ComposeUserDetail(user),
		})
	}
}
