package api

// ProductRequest binds the multipart form fields of product create/update.
// Price and rating stay textual here; the service coerces them.
// swagger:model api.ProductRequest
type ProductRequest struct {
	Name        string `form:"name" example:"Pen"`
	Description string `form:"description" example:"A very nice pen"`
	Price       string `form:"price" example:"2.5"`
	Rating      string `form:"rating" example:"4"`
}
