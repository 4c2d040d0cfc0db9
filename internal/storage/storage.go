package storage

import "context"

// Storage is the blob store the services mirror entity images into.
// The MinIO implementation works with any S3-compatible provider.
type Storage interface {
	// Upload writes data under key, overwriting any existing object.
	Upload(ctx context.Context, key string, data []byte, contentType string) error
	// Delete removes the object at key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// PublicURL constructs the browser-accessible URL for a key.
	PublicURL(key string) string
}

type FakeStorage struct {
	UploadFn    func(ctx context.Context, key string, data []byte, contentType string) error
	DeleteFn    func(ctx context.Context, key string) error
	PublicURLFn func(key string) string
}

func (f *FakeStorage) Upload(ctx context.Context, key string, data []byte, contentType string) error {
	if f.UploadFn != nil {
		return f.UploadFn(ctx, key, data, contentType)
	}
	panic("unexpected Upload")
}

func (f *FakeStorage) Delete(ctx context.Context, key string) error {
	if f.DeleteFn != nil {
		return f.DeleteFn(ctx, key)
	}
	panic("unexpected Delete")
}

func (f *FakeStorage) PublicURL(key string) string {
	if f.PublicURLFn != nil {
		return f.PublicURLFn(key)
	}
	panic("unexpected PublicURL")
}
