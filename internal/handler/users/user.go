package users

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"artigos-api/internal/api"
	"artigos-api/internal/database"
	"artigos-api/internal/middleware"
	"artigos-api/internal/model"
	"artigos-api/internal/service"
	"artigos-api/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	createUser         = store.CreateUser
	getUserByID        = store.GetUserByID
	listUsers          = store.ListUsers
	listArticlesByUser = store.ListArticlesByUser
	updateUser         = store.UpdateUser
	updateUserPassword = store.UpdateUserPassword
	deleteUser         = store.DeleteUser
)

func toUserResponse(u *model.User) api.UserResponse {
	return api.UserResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt,
	}
}

// @Summary     Register a new user
// @Description Creates a new account; the email becomes the login identifier and is stored lowercase
// @Tags        users
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       first_name formData string  true  "First name"
// @Param       last_name  formData string  true  "Last name"
// @Param       email      formData string  true  "Email (stored lowercase)"
// @Param       password   formData string  true  "Password"
// @Param       is_admin   formData boolean false "Admin flag"
// @Success     201        {object} api.UserResponse
// @Failure     400        {object} api.ErrorResponse
// @Failure     406        {object} api.ErrorResponse "email already registered"
// @Failure     500        {object} api.ErrorResponse
// @Router      /users/signup [post]
func SignupHandler(db database.DB, hasher *service.Hasher) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.SignupRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		hash, err := hasher.Hash(req.Password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to hash password"})
		}

		user, err := createUser(c.Request().Context(), db, &model.User{
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			Email:        strings.ToLower(req.Email),
			PasswordHash: hash,
			IsAdmin:      req.IsAdmin,
		})
		if err != nil {
			if errors.Is(err, store.ErrDuplicateEmail) {
				return c.JSON(http.StatusNotAcceptable, api.ErrorResponse{Message: "a user with this email already exists"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		return c.JSON(http.StatusCreated, toUserResponse(user))
	}
}

// @Summary     List all users
// @Description Returns every registered user; public
// @Tags        users
// @Produce     json
// @Success     200 {array}  api.UserResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /users [get]
func ListUsersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		users, err := listUsers(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		resp := make([]api.UserResponse, 0, len(users))
		for i := range users {
			resp = append(resp, toUserResponse(&users[i]))
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// @Summary     Get a user by ID
// @Description Returns a user together with the articles they authored
// @Tags        users
// @Produce     json
// @Param       user_id path     int true "User ID"
// @Success     200     {object} api.UserArticlesResponse
// @Failure     400     {object} api.ErrorResponse
// @Failure     404     {object} api.ErrorResponse
// @Failure     500     {object} api.ErrorResponse
// @Router      /users/{user_id} [get]
func GetUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("user_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid user ID"})
		}
		user, err := getUserByID(c.Request().Context(), db, id)
		if err != nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "user not found"})
		}
		articles, err := listArticlesByUser(c.Request().Context(), db, user.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		resp := api.UserArticlesResponse{
			UserResponse: toUserResponse(user),
			Articles:     make([]api.ArticleResponse, 0, len(articles)),
		}
		for _, a := range articles {
			resp.Articles = append(resp.Articles, api.ArticleResponse{
				ID:          a.ID,
				Title:       a.Title,
				Description: a.Description,
				SourceURL:   a.SourceURL,
				UserID:      a.UserID,
				CreatedAt:   a.CreatedAt,
			})
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// @Summary     Get current user info
// @Description Returns the user resolved from the bearer token
// @Tags        users
// @Produce     json
// @Success     200 {object} api.UserResponse
// @Failure     401 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/me [get]
func GetMyUserHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := c.Get(middleware.ContextUserKey).(*model.User)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: service.ErrUnauthenticated.Error()})
		}
		return c.JSON(http.StatusOK, toUserResponse(user))
	}
}

// @Summary     Update a user by ID
// @Description Partial update of a user; only the user themselves or an admin may do this, anyone else sees 404. Blank fields keep their stored value; only admins can change is_admin
// @Tags        users
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       user_id    path     int    true  "User ID"
// @Param       first_name formData string false "First name"
// @Param       last_name  formData string false "Last name"
// @Param       email      formData string false "Email (stored lowercase)"
// @Param       password   formData string false "New password"
// @Param       is_admin   formData boolean false "Admin flag (admins only)"
// @Success     202        {object} api.UserResponse
// @Failure     400        {object} api.ErrorResponse
// @Failure     404        {object} api.ErrorResponse
// @Failure     406        {object} api.ErrorResponse
// @Failure     500        {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/{user_id} [put]
func UpdateUserHandler(db database.DB, hasher *service.Hasher) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("user_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid user ID"})
		}

		var req api.UpdateUserRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		caller, ok := c.Get(middleware.ContextUserKey).(*model.User)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: service.ErrUnauthenticated.Error()})
		}
		// Non-owners see the same 404 as a missing user.
		if caller.ID != id && !caller.IsAdmin {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "user not found"})
		}

		user, err := getUserByID(c.Request().Context(), db, id)
		if err != nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "user not found"})
		}

		if req.FirstName != "" {
			user.FirstName = req.FirstName
		}
		if req.LastName != "" {
			user.LastName = req.LastName
		}
		if req.Email != "" {
			user.Email = strings.ToLower(req.Email)
		}
		if req.IsAdmin != nil && caller.IsAdmin {
			user.IsAdmin = *req.IsAdmin
		}

		if err := updateUser(c.Request().Context(), db, user); err != nil {
			if errors.Is(err, store.ErrDuplicateEmail) {
				return c.JSON(http.StatusNotAcceptable, api.ErrorResponse{Message: "a user with this email already exists"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		if req.Password != "" {
			hash, err := hasher.Hash(req.Password)
			if err != nil {
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to hash password"})
			}
			if err := updateUserPassword(c.Request().Context(), db, user.ID, hash); err != nil {
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
			}
		}

		return c.JSON(http.StatusAccepted, toUserResponse(user))
	}
}

// @Summary     Delete a user by ID
// @Description Deletes a user and, via cascade, their articles; only the user themselves or an admin may do this, anyone else sees 404
// @Tags        users
// @Param       user_id path int true "User ID"
// @Success     204     "No Content"
// @Failure     400     {object} api.ErrorResponse
// @Failure     404     {object} api.ErrorResponse
// @Failure     500     {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/{user_id} [delete]
func DeleteUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("user_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid user ID"})
		}
		caller, ok := c.Get(middleware.ContextUserKey).(*model.User)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: service.ErrUnauthenticated.Error()})
		}
		if caller.ID != id && !caller.IsAdmin {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "user not found"})
		}
		if _, err := getUserByID(c.Request().Context(), db, id); err != nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "user not found"})
		}
		if err := deleteUser(c.Request().Context(), db, id); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.NoContent(http.StatusNoContent)
	}
}
