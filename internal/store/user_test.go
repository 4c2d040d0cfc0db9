package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"storefront/internal/database"
	"storefront/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

// fakeUserRow supports two Scan shapes:
// 1) len(dest)==6 for full-row reads (Get/Update/UpdateUserImage)
// 2) len(dest)==2 for Create (id, created_at)
type fakeUserRow struct {
	scanErr error
	user    *model.User
}

func (r *fakeUserRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	u := r.user
	switch len(dest) {
	case 6:
		*dest[0].(*int) = u.ID
		*dest[1].(*string) = u.Name
		*dest[2].(*string) = u.Email
		*dest[3].(*string) = u.ImageUserName
		*dest[4].(*string) = u.ImageUserURL
		*dest[5].(*time.Time) = u.CreatedAt
	case 2:
		*dest[0].(*int) = u.ID
		*dest[1].(*time.Time) = u.CreatedAt
	default:
		panic("fakeUserRow.Scan: unexpected dest count")
	}
	return nil
}

type fakeUserRows struct {
	data    []model.User
	idx     int
	scanErr error
	err     error
}

func (r *fakeUserRows) Close()                                       {}
func (r *fakeUserRows) Err() error                                   { return r.err }
func (r *fakeUserRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeUserRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeUserRows) Next() bool                                   { return r.idx < len(r.data) }
func (r *fakeUserRows) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	u := r.data[r.idx]
	r.idx++
	*dest[0].(*int) = u.ID
	*dest[1].(*string) = u.Name
	*dest[2].(*string) = u.Email
	*dest[3].(*string) = u.ImageUserName
	*dest[4].(*string) = u.ImageUserURL
	*dest[5].(*time.Time) = u.CreatedAt
	return nil
}
func (r *fakeUserRows) Values() ([]any, error) { return nil, nil }
func (r *fakeUserRows) RawValues() [][]byte    { return nil }
func (r *fakeUserRows) Conn() *pgx.Conn        { return nil }

func TestUserStore(t *testing.T) {
	now := time.Now().UTC()
	sample := model.User{
		ID:            7,
		Name:          "Alice",
		Email:         "alice@example.com",
		ImageUserName: "portrait.png",
		ImageUserURL:  "https://bucket.s3.us-east-1.amazonaws.com/portrait.png",
		CreatedAt:     now,
	}

	/* ListUsers */
	t.Run("List ok", func(t *testing.T) {
		rows := &fakeUserRows{data: []model.User{sample, sample}}
		p := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return rows, nil
			},
		}
		list, err := ListUsers(context.Background(), p)
		require.NoError(t, err)
		require.Len(t, list, 2)
	})

	t.Run("List empty is a slice, not nil", func(t *testing.T) {
		p := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return &fakeUserRows{}, nil
			},
		}
		list, err := ListUsers(context.Background(), p)
		require.NoError(t, err)
		require.NotNil(t, list)
		require.Empty(t, list)
	})

	t.Run("List query err", func(t *testing.T) {
		p := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return nil, errors.New("database fail")
			},
		}
		_, err := ListUsers(context.Background(), p)
		require.ErrorIs(t, err, model.ErrPersistence)
	})

	/* GetUser */
	t.Run("Get ok", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeUserRow{user: &sample}
			},
		}
		got, err := GetUser(context.Background(), p, 7)
		require.NoError(t, err)
		require.Equal(t, sample.Email, got.Email)
	})

	t.Run("Get not found", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeUserRow{scanErr: pgx.ErrNoRows}
			},
		}
		got, err := GetUser(context.Background(), p, 999)
		require.ErrorIs(t, err, model.ErrNotFound)
		require.Nil(t, got)
	})

	/* CreateUser */
	t.Run("Create ok", func(t *testing.T) {
		in := model.User{Name: "Bob", Email: "bob@example.com", ImageUserName: "cafebabe"}
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeUserRow{user: &model.User{ID: 42, CreatedAt: now}}
			},
		}
		created, err := CreateUser(context.Background(), p, &in)
		require.NoError(t, err)
		require.Equal(t, 42, created.ID)
	})

	t.Run("Create err", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeUserRow{scanErr: errors.New("dup key")}
			},
		}
		_, err := CreateUser(context.Background(), p, &model.User{})
		require.ErrorIs(t, err, model.ErrPersistence)
	})

	/* UpdateUser */
	t.Run("Update ok", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeUserRow{user: &sample}
			},
		}
		updated, err := UpdateUser(context.Background(), p, &model.User{ID: 7, Name: "Alice", Email: "alice@example.com"})
		require.NoError(t, err)
		require.Equal(t, sample.ImageUserName, updated.ImageUserName)
	})

	t.Run("Update not found", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeUserRow{scanErr: pgx.ErrNoRows}
			},
		}
		_, err := UpdateUser(context.Background(), p, &model.User{ID: 999})
		require.ErrorIs(t, err, model.ErrNotFound)
	})

	/* UpdateUserImage */
	t.Run("UpdateImage ok", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeUserRow{user: &sample}
			},
		}
		updated, err := UpdateUserImage(context.Background(), p, 7, "portrait.png", sample.ImageUserURL)
		require.NoError(t, err)
		require.Equal(t, "portrait.png", updated.ImageUserName)
	})

	t.Run("UpdateImage not found", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeUserRow{scanErr: pgx.ErrNoRows}
			},
		}
		_, err := UpdateUserImage(context.Background(), p, 999, "x.png", "")
		require.ErrorIs(t, err, model.ErrNotFound)
	})

	/* DeleteUser */
	t.Run("Delete ok", func(t *testing.T) {
		p := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.NewCommandTag("DELETE 1"), nil
			},
		}
		require.NoError(t, DeleteUser(context.Background(), p, 7))
	})

	t.Run("Delete not found", func(t *testing.T) {
		p := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.NewCommandTag("DELETE 0"), nil
			},
		}
		require.ErrorIs(t, DeleteUser(context.Background(), p, 999), model.ErrNotFound)
	})
}
