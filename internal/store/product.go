package store

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/database"
	"storefront/internal/model"

	"github.com/jackc/pgx/v5"
)

const productColumns = `id, name, description, price, rating, image_product_name, image_product_url, created_at`

func scanProduct(row pgx.Row) (*model.Product, error) {
	p := &model.Product{}
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Price,
		&p.Rating,
		&p.ImageProductName,
		&p.ImageProductURL,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// ListProducts returns every product row in repository-native order.
func ListProducts(ctx context.Context, db database.DB) ([]model.Product, error) {
	rows, err := db.Query(ctx, `SELECT `+productColumns+` FROM products`)
	if err != nil {
		return nil, fmt.Errorf("ListProducts: %w (%v)", model.ErrPersistence, err)
	}
	defer rows.Close()

	products := make([]model.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("ListProducts: %w (%v)", model.ErrPersistence, err)
		}
		products = append(products, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListProducts: %w (%v)", model.ErrPersistence, err)
	}
	return products, nil
}

func GetProduct(ctx context.Context, db database.DB, id int) (*model.Product, error) {
	row := db.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	p, err := scanProduct(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("GetProduct %d: %w", id, model.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("GetProduct: %w (%v)", model.ErrPersistence, err)
	}
	return p, nil
}

func CreateProduct(ctx context.Context, db database.DB, p *model.Product) (*model.Product, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO products (name, description, price, rating, image_product_name, image_product_url)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`,
		p.Name,
		p.Description,
		p.Price,
		p.Rating,
		p.ImageProductName,
		p.ImageProductURL,
	)
	if err := row.Scan(&p.ID, &p.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateProduct: %w (%v)", model.ErrPersistence, err)
	}
	return p, nil
}

// UpdateProduct rewrites the editable columns and returns the full row,
// including the image key assigned at creation time.
func UpdateProduct(ctx context.Context, db database.DB, p *model.Product) (*model.Product, error) {
	row := db.QueryRow(ctx,
		`UPDATE products SET name = $1, description = $2, price = $3, rating = $4
		 WHERE id = $5
		 RETURNING `+productColumns,
		p.Name,
		p.Description,
		p.Price,
		p.Rating,
		p.ID,
	)
	updated, err := scanProduct(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("UpdateProduct %d: %w", p.ID, model.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("UpdateProduct: %w (%v)", model.ErrPersistence, err)
	}
	return updated, nil
}

func DeleteProduct(ctx context.Context, db database.DB, id int) error {
	tag, err := db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("DeleteProduct: %w (%v)", model.ErrPersistence, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("DeleteProduct %d: %w", id, model.ErrNotFound)
	}
	return nil
}
