package model

import "time"

type Product struct {
	ID               int       `db:"id" json:"id"`
	Name             string    `db:"name" json:"name"`
	Description      string    `db:"description" json:"description"`
	Price            float64   `db:"price" json:"price"`
	Rating           float64   `db:"rating" json:"rating"`
	ImageProductName string    `db:"image_product_name" json:"imageProductName"`
	ImageProductURL  string    `db:"image_product_url" json:"imageProductUrl"`
	CreatedAt        time.Time `db:"created_at" json:"createdAt"`
}
