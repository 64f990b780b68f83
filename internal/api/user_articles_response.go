package api

// swagger:model api.UserArticlesResponse
type UserArticlesResponse struct {
	UserResponse
	Articles []ArticleResponse `json:"articles"`
}
