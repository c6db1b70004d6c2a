package dto

import (
	"lend/internal/domains/user/model"
)

type CreateUserRequest struct {
	Name  string `json:"name"  validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

func (r *CreateUserRequest) ToModel() model.User {
	return model.User{
		Name:  r.Name,
		Email: r.Email,
	}
}

// UpdateUserRequest carries a partial update; nil fields keep their current
// value.
type UpdateUserRequest struct {
	Name  *string `json:"name"  validate:"omitempty"`
	Email *string `json:"email" validate:"omitempty,email"`
}

type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Name = model.Name
	r.Email = model.Email
}

func FromModels(models []model.User) []UserResponse {
	responses := make([]UserResponse, len(models))
	for i, mod := range models {
		responses[i].FromModel(mod)
	}

	return responses
}
