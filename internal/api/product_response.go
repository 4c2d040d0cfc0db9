package api

import (
	"time"

	"storefront/internal/model"
)

// swagger:model api.ProductResponse
type ProductResponse struct {
	ID               int       `json:"id" example:"1"`
	Name             string    `json:"name" example:"Pen"`
	Description      string    `json:"description" example:"A very nice pen"`
	Price            float64   `json:"price" example:"2.5"`
	Rating           float64   `json:"rating" example:"4"`
	ImageProductName string    `json:"imageProductName" example:"9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08"`
	ImageProductURL  string    `json:"imageProductUrl"`
	CreatedAt        time.Time `json:"createdAt"`
}

func NewProductResponse(p *model.Product) ProductResponse {
	return ProductResponse{
		ID:               p.ID,
		Name:             p.Name,
		Description:      p.Description,
		Price:            p.Price,
		Rating:           p.Rating,
		ImageProductName: p.ImageProductName,
		ImageProductURL:  p.ImageProductURL,
		CreatedAt:        p.CreatedAt,
	}
}

func NewProductListResponse(products []model.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, NewProductResponse(&products[i]))
	}
	return out
}
