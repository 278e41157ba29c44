package media

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
	failPut bool
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: make(map[string][]byte)}
}

func (f *fakeStorage) Upload(_ context.Context, key string, data []byte, _ string) error {
	if f.failPut {
		return errors.New("storage down")
	}
	f.mu.Lock()
	f.objects[key] = data
	f.mu.Unlock()
	return nil
}

func (f *fakeStorage) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	delete(f.objects, key)
	f.mu.Unlock()
	return nil
}

func (f *fakeStorage) Exists(_ context.Context, key string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.objects[key]
	return ok, nil
}

func (f *fakeStorage) PublicURL(key string) string {
	return "https://cdn.test/" + key
}

func TestUploadService_UploadImage(t *testing.T) {
	storage := newFakeStorage()
	service := NewUploadService(storage, nil)

	result, err := service.UploadImage(context.Background(), "photo.jpg", "image/jpeg", []byte("jpeg-bytes"))
	require.NoError(t, err)
	assert.Contains(t, result.StorageKey, "uploads/")
	assert.Contains(t, result.StorageKey, ".jpg")
	assert.Equal(t, "https://cdn.test/"+result.StorageKey, result.URL)

	exists, err := storage.Exists(context.Background(), result.StorageKey)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestUploadService_RejectsBadUploads(t *testing.T) {
	service := NewUploadService(newFakeStorage(), nil)
	ctx := context.Background()

	_, err := service.UploadImage(ctx, "doc.pdf", "application/pdf", []byte("%PDF"))
	assert.ErrorIs(t, err, ErrUnsupportedImageType)

	_, err = service.UploadImage(ctx, "photo.jpg", "image/jpeg", nil)
	assert.Error(t, err)

	_, err = service.UploadImage(ctx, "big.png", "image/png", bytes.Repeat([]byte{0}, maxImageSize+1))
	assert.ErrorIs(t, err, ErrImageTooLarge)
}

func TestUploadService_ExtensionFallback(t *testing.T) {
	service := NewUploadService(newFakeStorage(), nil)

	// Unknown content type falls back to the filename extension.
	result, err := service.UploadImage(context.Background(), "photo.PNG", "application/octet-stream", []byte("png-bytes"))
	require.NoError(t, err)
	assert.Contains(t, result.StorageKey, ".png")
}

func TestUploadService_StorageFailure(t *testing.T) {
	storage := newFakeStorage()
	storage.failPut = true
	service := NewUploadService(storage, nil)

	_, err := service.UploadImage(context.Background(), "photo.jpg", "image/jpeg", []byte("jpeg-bytes"))
	assert.Error(t, err)
}
