// File: internal/handler/auth/login.go
package auth

import (
	"net/http"

	"artigos-api/internal/api"
	"artigos-api/internal/database"
	"artigos-api/internal/service"

	"github.com/labstack/echo/v4"
)

var (
	authenticateUser = service.AuthenticateUser
)

// LoginHandler verifies an email/password pair and returns a bearer
// token.
// @Summary     Log a user in
// @Description Authenticates with email and password and returns a JWT access token for subsequent requests
// @Tags        auth
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       email    formData string true "User email"
// @Param       password formData string true "User password"
// @Success     200      {object} api.LoginResponse
// @Failure     400      {object} api.ErrorResponse
// @Failure     500      {object} api.ErrorResponse
// @Router      /auth/login [post]
func LoginHandler(db database.DB, codec *service.TokenCodec) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		user, err := authenticateUser(c.Request().Context(), db, req.Email, req.Password)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: service.ErrInvalidCredentials.Error()})
		}

		token, err := codec.Encode(user.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to issue token"})
		}

		return c.JSON(http.StatusOK, api.LoginResponse{AccessToken: token, TokenType: "bearer"})
	}
}
