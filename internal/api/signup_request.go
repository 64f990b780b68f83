package api

// swagger:model api.SignupRequest
type SignupRequest struct {
	FirstName string `form:"first_name" validate:"required" example:"Alice"`
	LastName  string `form:"last_name" validate:"required" example:"Silva"`
	Email     string `form:"email" validate:"required,email" example:"alice@example.com"`
	Password  string `form:"password" validate:"required" example:"Secret123!"`
	IsAdmin   bool   `form:"is_admin" example:"false"`
}
