package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flakyUploader fails any file whose name contains "bad".
type flakyUploader struct {
	mu    sync.Mutex
	calls int
}

func (u *flakyUploader) Upload(_ context.Context, file UploadFile) (string, error) {
	u.mu.Lock()
	u.calls++
	u.mu.Unlock()
	if strings.Contains(file.Name, "bad") {
		return "", errors.New("boom")
	}
	return "https://storage.googleapis.com/test-bucket/" + file.Name, nil
}

func (u *flakyUploader) UploadAll(ctx context.Context, files []UploadFile) ([]string, int) {
	return uploadAll(ctx, u, files)
}

func TestUploadAllPartialFailure(t *testing.T) {
	uploader := &flakyUploader{}
	files := []UploadFile{
		{Name: "a.jpg", Reader: strings.NewReader("a")},
		{Name: "bad.jpg", Reader: strings.NewReader("b")},
		{Name: "c.png", Reader: strings.NewReader("c")},
	}

	urls, failed := uploader.UploadAll(context.Background(), files)

	assert.Equal(t, 3, uploader.calls)
	assert.Equal(t, 1, failed)
	require.Len(t, urls, 2)
	for _, u := range urls {
		assert.NotContains(t, u, "bad")
	}
}

func TestUploadAllAllFail(t *testing.T) {
	uploader := &flakyUploader{}
	urls, failed := uploader.UploadAll(context.Background(), []UploadFile{
		{Name: "bad1.jpg", Reader: strings.NewReader("x")},
		{Name: "bad2.jpg", Reader: strings.NewReader("y")},
	})
	assert.Empty(t, urls)
	assert.Equal(t, 2, failed)
}

func TestUploadAllEmpty(t *testing.T) {
	uploader := &flakyUploader{}
	urls, failed := uploader.UploadAll(context.Background(), nil)
	assert.Empty(t, urls)
	assert.Zero(t, failed)
}
