package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	gcs "cloud.google.com/go/storage"
	firebase "firebase.google.com/go"
	"google.golang.org/api/option"
)

// FirebaseStore menyimpan foto di bucket Firebase Storage
type FirebaseStore struct {
	bucket     *gcs.BucketHandle
	publicBase string
}

// NewFirebaseStore menginisialisasi app Firebase dari file service account
func NewFirebaseStore(ctx context.Context, credentialsFile, bucketName, publicBase string) (*FirebaseStore, error) {
	opt := option.WithCredentialsFile(credentialsFile)
	app, err := firebase.NewApp(ctx, &firebase.Config{StorageBucket: bucketName}, opt)
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}

	client, err := app.Storage(ctx)
	if err != nil {
		return nil, fmt.Errorf("get storage client: %w", err)
	}

	bkt, err := client.DefaultBucket()
	if err != nil {
		return nil, fmt.Errorf("open bucket %s: %w", bucketName, err)
	}

	return &FirebaseStore{bucket: bkt, publicBase: publicBase}, nil
}

func (s *FirebaseStore) Upload(ctx context.Context, objectPath string, body io.Reader, contentType string) error {
	w := s.bucket.Object(objectPath).NewWriter(ctx)
	w.ContentType = contentType
	w.CacheControl = "public, max-age=3600"

	if _, err := io.Copy(w, body); err != nil {
		_ = w.Close()
		return fmt.Errorf("upload %s: %w", objectPath, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("upload %s: %w", objectPath, err)
	}
	return nil
}

// Remove berhenti di objek pertama yang gagal dihapus
func (s *FirebaseStore) Remove(ctx context.Context, objectPaths ...string) error {
	for _, p := range objectPaths {
		err := s.bucket.Object(p).Delete(ctx)
		if err != nil && !errors.Is(err, gcs.ErrObjectNotExist) {
			return fmt.Errorf("remove %s: %w", p, err)
		}
	}
	return nil
}

func (s *FirebaseStore) PublicURL(objectPath string) string {
	return publicURL(s.publicBase, objectPath)
}
