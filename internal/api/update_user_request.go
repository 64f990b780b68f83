package api

// UpdateUserRequest carries a partial update: blank fields keep their
// stored value, is_admin only changes when the field is present.
// swagger:model api.UpdateUserRequest
type UpdateUserRequest struct {
	FirstName string `form:"first_name" example:"Alice"`
	LastName  string `form:"last_name" example:"Silva"`
	Email     string `form:"email" validate:"omitempty,email" example:"alice@example.com"`
	Password  string `form:"password" example:"Secret123!"`
	IsAdmin   *bool  `form:"is_admin" example:"false"`
}
