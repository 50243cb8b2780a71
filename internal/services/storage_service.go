package services

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"sync"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"github.com/NoBrainerCoder/realestate-website-sub000/internal/utils"
)

// UploadFile is one binary blob to store.
type UploadFile struct {
	Name   string
	Reader io.Reader
}

type StorageService interface {
	// Upload stores one file and returns its publicly resolvable URL.
	Upload(ctx context.Context, file UploadFile) (string, error)
	// UploadAll fans the files out concurrently, one request per file, no
	// cap and no retry. Partial failure is expected: only the succeeded
	// URLs come back, with the failure count alongside.
	UploadAll(ctx context.Context, files []UploadFile) (urls []string, failed int)
}

type gcsStorage struct {
	client *storage.Client
	bucket string
}

func NewGCSStorageService(ctx context.Context, bucket, credentialsFile string) (StorageService, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("gcs client: %w", err)
	}
	return &gcsStorage{client: client, bucket: bucket}, nil
}

func (s *gcsStorage) Upload(ctx context.Context, file UploadFile) (string, error) {
	// timestamp + random suffix avoids filename collisions
	object := fmt.Sprintf("%d-%s%s", time.Now().UnixNano(), utils.RandomString(8), filepath.Ext(file.Name))

	w := s.client.Bucket(s.bucket).Object(object).NewWriter(ctx)
	if _, err := io.Copy(w, file.Reader); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("upload %s: %w", file.Name, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("upload %s: %w", file.Name, err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucket, object), nil
}

func (s *gcsStorage) UploadAll(ctx context.Context, files []UploadFile) ([]string, int) {
	return uploadAll(ctx, s, files)
}

// uploadAll is shared by every StorageService implementation so fakes in
// tests exercise the same fan-out.
func uploadAll(ctx context.Context, uploader StorageService, files []UploadFile) ([]string, int) {
	var (
		mu     sync.Mutex
		wg     sync.WaitGroup
		urls   []string
		failed int
	)

	for _, f := range files {
		wg.Add(1)
		go func(f UploadFile) {
			defer wg.Done()
			url, err := uploader.Upload(ctx, f)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				utils.Logger.WithError(err).Warnf("File upload failed: %s", f.Name)
				failed++
				return
			}
			urls = append(urls, url)
		}(f)
	}
	wg.Wait()

	return urls, failed
}
