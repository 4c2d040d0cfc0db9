package service

import (
	"context"
	"fmt"
	"log"

	"storefront/internal/database"
	"storefront/internal/model"
	"storefront/internal/processor"
	"storefront/internal/storage"
	"storefront/internal/store"
	"storefront/internal/worker"
)

var (
	listProductRows  = store.ListProducts
	getProductRow    = store.GetProduct
	insertProductRow = store.CreateProduct
	updateProductRow = store.UpdateProduct
	deleteProductRow = store.DeleteProduct
)

// Resize presets for product images. Creation anchors at the center, updates
// at the top, matching the stored catalogue's historical crops.
var (
	productCreatePreset = processor.Options{Width: 800, Height: 800, Gravity: processor.AnchorCenter}
	productUpdatePreset = processor.Options{Width: 800, Height: 800, Gravity: processor.AnchorTop}
)

// ProductInput carries the raw form fields of a create/update call. Price and
// rating arrive as text and are coerced before anything is persisted.
type ProductInput struct {
	Name        string
	Description string
	Price       string
	Rating      string
}

func ListProducts(ctx context.Context, db database.DB) ([]model.Product, error) {
	return listProductRows(ctx, db)
}

func GetProduct(ctx context.Context, db database.DB, id int) (*model.Product, error) {
	return getProductRow(ctx, db, id)
}

// CreateProduct resizes the mandatory image, writes the blob under a fresh
// random key and only then inserts the row. A failed blob write aborts the
// creation; a failed insert after a successful blob write triggers a
// best-effort compensating delete of the orphaned blob.
func CreateProduct(ctx context.Context, db database.DB, st storage.Storage, wp worker.Pool, in ProductInput, image []byte, contentType string) (*model.Product, error) {
	if len(image) == 0 {
		return nil, fmt.Errorf("product image is required: %w", model.ErrInvalidInput)
	}
	price, err := coerceNumber("price", in.Price)
	if err != nil {
		return nil, err
	}
	rating, err := coerceNumber("rating", in.Rating)
	if err != nil {
		return nil, err
	}

	resized, err := resizeImage(image, productCreatePreset)
	if err != nil {
		return nil, err
	}
	key, err := newImageKey()
	if err != nil {
		return nil, err
	}
	if err := st.Upload(ctx, key, resized, contentType); err != nil {
		return nil, err
	}

	created, err := insertProductRow(ctx, db, &model.Product{
		Name:             in.Name,
		Description:      in.Description,
		Price:            price,
		Rating:           rating,
		ImageProductName: key,
		ImageProductURL:  st.PublicURL(key),
	})
	if err != nil {
		wp.Submit(func() {
			if derr := st.Delete(context.Background(), key); derr != nil {
				log.Printf("create product: orphaned blob %s left behind: %v", key, derr)
			}
		})
		return nil, err
	}
	return created, nil
}

// UpdateProduct rewrites the row first, then overwrites the blob at the
// existing key when a replacement image was uploaded. The key is never
// regenerated, so the public URL stays stable across updates.
func UpdateProduct(ctx context.Context, db database.DB, st storage.Storage, id int, in ProductInput, image []byte, contentType string) (*model.Product, error) {
	price, err := coerceNumber("price", in.Price)
	if err != nil {
		return nil, err
	}
	rating, err := coerceNumber("rating", in.Rating)
	if err != nil {
		return nil, err
	}

	updated, err := updateProductRow(ctx, db, &model.Product{
		ID:          id,
		Name:        in.Name,
		Description: in.Description,
		Price:       price,
		Rating:      rating,
	})
	if err != nil {
		return nil, err
	}

	if len(image) > 0 {
		resized, err := resizeImage(image, productUpdatePreset)
		if err != nil {
			return nil, err
		}
		if err := st.Upload(ctx, updated.ImageProductName, resized, contentType); err != nil {
			return nil, err
		}
	}
	return updated, nil
}

// DeleteProduct removes the row, then deletes the blob in the background.
// The row deletion is already committed, so a blob delete failure is logged
// and never surfaced.
func DeleteProduct(ctx context.Context, db database.DB, st storage.Storage, wp worker.Pool, id int) error {
	p, err := getProductRow(ctx, db, id)
	if err != nil {
		return err
	}
	if err := deleteProductRow(ctx, db, id); err != nil {
		return err
	}
	key := p.ImageProductName
	wp.Submit(func() {
		if err := st.Delete(context.Background(), key); err != nil {
			log.Printf("delete product %d: blob %s not removed: %v", id, key, err)
		}
	})
	return nil
}
