package store

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/database"
	"storefront/internal/model"

	"github.com/jackc/pgx/v5"
)

const userColumns = `id, name, email, image_user_name, image_user_url, created_at`

func scanUser(row pgx.Row) (*model.User, error) {
	u := &model.User{}
	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.ImageUserName,
		&u.ImageUserURL,
		&u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func ListUsers(ctx context.Context, db database.DB) ([]model.User, error) {
	rows, err := db.Query(ctx, `SELECT `+userColumns+` FROM users`)
	if err != nil {
		return nil, fmt.Errorf("ListUsers: %w (%v)", model.ErrPersistence, err)
	}
	defer rows.Close()

	users := make([]model.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("ListUsers: %w (%v)", model.ErrPersistence, err)
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListUsers: %w (%v)", model.ErrPersistence, err)
	}
	return users, nil
}

func GetUser(ctx context.Context, db database.DB, id int) (*model.User, error) {
	row := db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	u, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("GetUser %d: %w", id, model.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("GetUser: %w (%v)", model.ErrPersistence, err)
	}
	return u, nil
}

func CreateUser(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO users (name, email, image_user_name, image_user_url)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		u.Name,
		u.Email,
		u.ImageUserName,
		u.ImageUserURL,
	)
	if err := row.Scan(&u.ID, &u.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateUser: %w (%v)", model.ErrPersistence, err)
	}
	return u, nil
}

func UpdateUser(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
	row := db.QueryRow(ctx,
		`UPDATE users SET name = $1, email = $2
		 WHERE id = $3
		 RETURNING `+userColumns,
		u.Name,
		u.Email,
		u.ID,
	)
	updated, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("UpdateUser %d: %w", u.ID, model.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("UpdateUser: %w (%v)", model.ErrPersistence, err)
	}
	return updated, nil
}

// UpdateUserImage rewrites only the image columns.
func UpdateUserImage(ctx context.Context, db database.DB, id int, imageName, imageURL string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`UPDATE users SET image_user_name = $1, image_user_url = $2
		 WHERE id = $3
		 RETURNING `+userColumns,
		imageName,
		imageURL,
		id,
	)
	updated, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("UpdateUserImage %d: %w", id, model.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("UpdateUserImage: %w (%v)", model.ErrPersistence, err)
	}
	return updated, nil
}

func DeleteUser(ctx context.Context, db database.DB, id int) error {
	tag, err := db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("DeleteUser: %w (%v)", model.ErrPersistence, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("DeleteUser %d: %w", id, model.ErrNotFound)
	}
	return nil
}
