package api

// UpdateArticleRequest carries a partial update: blank fields keep
// their stored value.
// swagger:model api.UpdateArticleRequest
type UpdateArticleRequest struct {
	Title       string `form:"title" example:"Go at scale"`
	Description string `form:"description" example:"Notes on running Go in production"`
	SourceURL   string `form:"source_url" validate:"omitempty,url" example:"https://example.com/posts/go-at-scale"`
}
