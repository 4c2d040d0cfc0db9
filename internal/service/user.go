package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"storefront/internal/database"
	"storefront/internal/model"
	"storefront/internal/processor"
	"storefront/internal/storage"
	"storefront/internal/store"
	"storefront/internal/worker"
)

var (
	listUserRows       = store.ListUsers
	getUserRow         = store.GetUser
	insertUserRow      = store.CreateUser
	updateUserRow      = store.UpdateUser
	updateUserImageRow = store.UpdateUserImage
	deleteUserRow      = store.DeleteUser
)

var userImagePreset = processor.Options{Width: 500, Height: 500, Gravity: processor.AnchorTop}

type UserInput struct {
	Name  string
	Email string
}

func ListUsers(ctx context.Context, db database.DB) ([]model.User, error) {
	return listUserRows(ctx, db)
}

func GetUser(ctx context.Context, db database.DB, id int) (*model.User, error) {
	return getUserRow(ctx, db, id)
}

// CreateUser persists the row only. An image key is reserved up front, but no
// blob is written until the image is attached by a later UpdateUserImage call,
// so the URL stays empty for now.
func CreateUser(ctx context.Context, db database.DB, in UserInput) (*model.User, error) {
	key, err := newImageKey()
	if err != nil {
		return nil, err
	}
	return insertUserRow(ctx, db, &model.User{
		Name:          in.Name,
		Email:         strings.ToLower(in.Email),
		ImageUserName: key,
		ImageUserURL:  "",
	})
}

// UpdateUser rewrites profile fields only; image fields and the blob are
// untouched.
func UpdateUser(ctx context.Context, db database.DB, id int, in UserInput) (*model.User, error) {
	return updateUserRow(ctx, db, &model.User{
		ID:    id,
		Name:  in.Name,
		Email: strings.ToLower(in.Email),
	})
}

// UpdateUserImage re-keys the user's image to the uploaded original filename,
// updates the row, then resizes and writes the blob under the new key. The
// blob under the previous key (if any) is deleted best-effort in the
// background so it does not linger as an orphan.
func UpdateUserImage(ctx context.Context, db database.DB, st storage.Storage, wp worker.Pool, id int, image []byte, filename, contentType string) (*model.User, error) {
	if len(image) == 0 {
		return nil, fmt.Errorf("user image is required: %w", model.ErrInvalidInput)
	}
	if filename == "" {
		return nil, fmt.Errorf("uploaded file has no name: %w", model.ErrInvalidInput)
	}

	prev, err := getUserRow(ctx, db, id)
	if err != nil {
		return nil, err
	}

	updated, err := updateUserImageRow(ctx, db, id, filename, st.PublicURL(filename))
	if err != nil {
		return nil, err
	}

	resized, err := resizeImage(image, userImagePreset)
	if err != nil {
		return nil, err
	}
	if err := st.Upload(ctx, filename, resized, contentType); err != nil {
		return nil, err
	}

	if prev.ImageUserName != "" && prev.ImageUserName != filename {
		old := prev.ImageUserName
		wp.Submit(func() {
			if err := st.Delete(context.Background(), old); err != nil {
				log.Printf("update user %d image: previous blob %s not removed: %v", id, old, err)
			}
		})
	}
	return updated, nil
}

func DeleteUser(ctx context.Context, db database.DB, st storage.Storage, wp worker.Pool, id int) error {
	u, err := getUserRow(ctx, db, id)
	if err != nil {
		return err
	}
	if err := deleteUserRow(ctx, db, id); err != nil {
		return err
	}
	key := u.ImageUserName
	wp.Submit(func() {
		if err := st.Delete(context.Background(), key); err != nil {
			log.Printf("delete user %d: blob %s not removed: %v", id, key, err)
		}
	})
	return nil
}
