package router

import (
	"github.com/labstack/echo/v4"

	"artigos-api/internal/cache"
	"artigos-api/internal/database"
	"artigos-api/internal/handler"
	"artigos-api/internal/handler/articles"
	"artigos-api/internal/handler/auth"
	"artigos-api/internal/handler/users"
	"artigos-api/internal/middleware"
	"artigos-api/internal/service"
)

// Setup registers every route and its middleware.
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, codec *service.TokenCodec, hasher *service.Hasher) {
	api := e.Group("/api")

	requireAuth := middleware.RequireAuth(db, codec)

	api.GET("/ping", handler.PingHandler(db, rdb), requireAuth)

	api.POST("/auth/login", auth.LoginHandler(db, codec))

	apiUsers := api.Group("/users")
	apiUsers.POST("/signup", users.SignupHandler(db, hasher))
	apiUsers.GET("", users.ListUsersHandler(db))
	apiUsers.GET("/me", users.GetMyUserHandler(), requireAuth)
	apiUsers.GET("/:user_id", users.GetUserHandler(db))
	apiUsers.PUT("/:user_id", users.UpdateUserHandler(db, hasher), requireAuth)
	apiUsers.DELETE("/:user_id", users.DeleteUserHandler(db), requireAuth)

	apiArticles := api.Group("/articles")
	apiArticles.POST("", articles.CreateArticleHandler(db), requireAuth)
	apiArticles.GET("", articles.ListArticlesHandler(db))
	apiArticles.GET("/:article_id", articles.GetArticleHandler(db, rdb))
	apiArticles.PUT("/:article_id", articles.UpdateArticleHandler(db, rdb), requireAuth)
	apiArticles.DELETE("/:article_id", articles.DeleteArticleHandler(db, rdb), requireAuth)
}
