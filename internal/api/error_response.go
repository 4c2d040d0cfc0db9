package api

// ErrorResponse is the JSON body of every non-2xx response.
// swagger:model api.ErrorResponse
type ErrorResponse struct {
	Message string `json:"message" example:"product not found"`
}
