package api

// swagger:model api.CreateArticleRequest
type CreateArticleRequest struct {
	Title       string `form:"title" validate:"required" example:"Go at scale"`
	Description string `form:"description" validate:"required" example:"Notes on running Go in production"`
	SourceURL   string `form:"source_url" validate:"required,url" example:"https://example.com/posts/go-at-scale"`
}
