package api

// DataResponse is the success envelope for every endpoint.
// swagger:model api.DataResponse
type DataResponse struct {
	Data any `json:"data"`
}
