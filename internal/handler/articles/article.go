package articles

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"artigos-api/internal/api"
	"artigos-api/internal/cache"
	"artigos-api/internal/database"
	"artigos-api/internal/middleware"
	"artigos-api/internal/model"
	"artigos-api/internal/service"
	"artigos-api/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	createArticle  = store.CreateArticle
	getArticleByID = store.GetArticleByID
	listArticles   = store.ListArticles
	updateArticle  = store.UpdateArticle
	deleteArticle  = store.DeleteArticle
)

const articleCacheTTL = 5 * time.Minute

func articleCacheKey(id int) string {
	return fmt.Sprintf("article:%d", id)
}

func toArticleResponse(a *model.Article) api.ArticleResponse {
	return api.ArticleResponse{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		SourceURL:   a.SourceURL,
		UserID:      a.UserID,
		CreatedAt:   a.CreatedAt,
	}
}

// canMutate applies the ownership gate: the author or an admin.
func canMutate(user *model.User, a *model.Article) bool {
	return user.ID == a.UserID || user.IsAdmin
}

// @Summary     Create a new article
// @Description Creates an article owned by the authenticated user; the owner always comes from the token, never from the request body
// @Tags        articles
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       title       formData string true "Article title"
// @Param       description formData string true "Short description"
// @Param       source_url  formData string true "URL of the original source"
// @Success     201         {object} api.ArticleResponse
// @Failure     400         {object} api.ErrorResponse
// @Failure     401         {object} api.ErrorResponse
// @Failure     500         {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /articles [post]
func CreateArticleHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateArticleRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		user, ok := c.Get(middleware.ContextUserKey).(*model.User)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: service.ErrUnauthenticated.Error()})
		}

		article, err := createArticle(c.Request().Context(), db, &model.Article{
			Title:       req.Title,
			Description: req.Description,
			SourceURL:   req.SourceURL,
			UserID:      user.ID,
		})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		return c.JSON(http.StatusCreated, toArticleResponse(article))
	}
}

// @Summary     List all articles
// @Description Returns every article on the platform; public
// @Tags        articles
// @Produce     json
// @Success     200 {array}  api.ArticleResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /articles [get]
func ListArticlesHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		articles, err := listArticles(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		resp := make([]api.ArticleResponse, 0, len(articles))
		for i := range articles {
			resp = append(resp, toArticleResponse(&articles[i]))
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// @Summary     Get an article by ID
// @Description Returns one article; public, served from Redis when cached
// @Tags        articles
// @Produce     json
// @Param       article_id path     int true "Article ID"
// @Success     200        {object} api.ArticleResponse
// @Failure     400        {object} api.ErrorResponse
// @Failure     404        {object} api.ErrorResponse
// @Router      /articles/{article_id} [get]
func GetArticleHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("article_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid article ID"})
		}

		ctx := c.Request().Context()
		if cached, err := rdb.Get(ctx, articleCacheKey(id)).Bytes(); err == nil {
			return c.JSONBlob(http.StatusOK, cached)
		}

		article, err := getArticleByID(ctx, db, id)
		if err != nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "article not found"})
		}

		resp := toArticleResponse(article)
		if body, err := json.Marshal(resp); err == nil {
			// Cache failures are not fatal for a read.
			rdb.Set(ctx, articleCacheKey(id), body, articleCacheTTL)
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// @Summary     Update an article
// @Description Partial update of an article; only the author or an admin may do this, anyone else sees 404. Ownership never changes on update
// @Tags        articles
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       article_id  path     int    true  "Article ID"
// @Param       title       formData string false "Article title"
// @Param       description formData string false "Short description"
// @Param       source_url  formData string false "URL of the original source"
// @Success     200         {object} api.ArticleResponse
// @Failure     400         {object} api.ErrorResponse
// @Failure     401         {object} api.ErrorResponse
// @Failure     404         {object} api.ErrorResponse
// @Failure     500         {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /articles/{article_id} [put]
func UpdateArticleHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("article_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid article ID"})
		}

		var req api.UpdateArticleRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		user, ok := c.Get(middleware.ContextUserKey).(*model.User)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: service.ErrUnauthenticated.Error()})
		}

		ctx := c.Request().Context()
		article, err := getArticleByID(ctx, db, id)
		if err != nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "article not found"})
		}
		if !canMutate(user, article) {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "article not found"})
		}

		if req.Title != "" {
			article.Title = req.Title
		}
		if req.Description != "" {
			article.Description = req.Description
		}
		if req.SourceURL != "" {
			article.SourceURL = req.SourceURL
		}

		if err := updateArticle(ctx, db, article); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		rdb.Del(ctx, articleCacheKey(id))

		return c.JSON(http.StatusOK, toArticleResponse(article))
	}
}

// @Summary     Delete an article
// @Description Deletes an article; only the author or an admin may do this, anyone else sees 404
// @Tags        articles
// @Param       article_id path int true "Article ID"
// @Success     204        "No Content"
// @Failure     400        {object} api.ErrorResponse
// @Failure     401        {object} api.ErrorResponse
// @Failure     404        {object} api.ErrorResponse
// @Failure     500        {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /articles/{article_id} [delete]
func DeleteArticleHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("article_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid article ID"})
		}

		user, ok := c.Get(middleware.ContextUserKey).(*model.User)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: service.ErrUnauthenticated.Error()})
		}

		ctx := c.Request().Context()
		article, err := getArticleByID(ctx, db, id)
		if err != nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "article not found"})
		}
		if !canMutate(user, article) {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "article not found"})
		}

		if err := deleteArticle(ctx, db, id); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		rdb.Del(ctx, articleCacheKey(id))

		return c.NoContent(http.StatusNoContent)
	}
}
