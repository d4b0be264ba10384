package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/go-resty/resty/v2"
)

// SupabaseStore bicara ke Supabase Storage REST API
type SupabaseStore struct {
	client     *resty.Client
	bucket     string
	publicBase string
}

func NewSupabaseStore(baseURL, apiKey, bucket, publicBase string) *SupabaseStore {
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("apikey", apiKey).
		SetAuthToken(apiKey)

	return &SupabaseStore{
		client:     client,
		bucket:     bucket,
		publicBase: publicBase,
	}
}

func (s *SupabaseStore) Upload(ctx context.Context, objectPath string, body io.Reader, contentType string) error {
	if objectPath == "" {
		return fmt.Errorf("empty object path")
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", contentType).
		SetHeader("Cache-Control", "3600").
		SetBody(body).
		Post(s.objectURL(objectPath))
	if err != nil {
		return fmt.Errorf("upload %s: %w", objectPath, err)
	}
	if resp.IsError() {
		return fmt.Errorf("upload %s: status %d: %s", objectPath, resp.StatusCode(), resp.String())
	}
	return nil
}

// Remove menghapus beberapa objek sekaligus. Objek yang sudah tidak ada tidak dianggap error.
func (s *SupabaseStore) Remove(ctx context.Context, objectPaths ...string) error {
	if len(objectPaths) == 0 {
		return nil
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(map[string][]string{"prefixes": objectPaths}).
		Delete("/storage/v1/object/" + s.bucket)
	if err != nil {
		return fmt.Errorf("remove %v: %w", objectPaths, err)
	}
	if resp.IsError() {
		return fmt.Errorf("remove %v: status %d: %s", objectPaths, resp.StatusCode(), resp.String())
	}
	return nil
}

func (s *SupabaseStore) PublicURL(objectPath string) string {
	return publicURL(s.publicBase, objectPath)
}

func (s *SupabaseStore) objectURL(objectPath string) string {
	return "/storage/v1/object/" + s.bucket + "/" + strings.TrimLeft(objectPath, "/")
}
