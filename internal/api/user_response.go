package api

import (
	"time"

	"storefront/internal/model"
)

// swagger:model api.UserResponse
type UserResponse struct {
	ID            int       `json:"id" example:"1"`
	Name          string    `json:"name" example:"Alice"`
	Email         string    `json:"email" example:"alice@example.com"`
	ImageUserName string    `json:"imageUserName" example:"portrait.png"`
	ImageUserURL  string    `json:"imageUserUrl"`
	CreatedAt     time.Time `json:"createdAt"`
}

func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		ImageUserName: u.ImageUserName,
		ImageUserURL:  u.ImageUserURL,
		CreatedAt:     u.CreatedAt,
	}
}

func NewUserListResponse(users []model.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, NewUserResponse(&users[i]))
	}
	return out
}
