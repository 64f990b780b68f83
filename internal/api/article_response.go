package api

import "time"

// swagger:model api.ArticleResponse
type ArticleResponse struct {
	ID          int       `json:"id" example:"1"`
	Title       string    `json:"title" example:"Go at scale"`
	Description string    `json:"description" example:"Notes on running Go in production"`
	SourceURL   string    `json:"source_url" example:"https://example.com/posts/go-at-scale"`
	UserID      int       `json:"user_id" example:"42"`
	CreatedAt   time.Time `json:"created_at"`
}
