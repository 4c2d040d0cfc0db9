package api

// UserRequest binds user create (multipart form) and update (JSON) bodies.
// swagger:model api.UserRequest
type UserRequest struct {
	Name  string `form:"name" json:"name" example:"Alice"`
	Email string `form:"email" json:"email" example:"Alice@Example.com"`
}
