package imagehost

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"vidstream-backend/pkg/config"

	gcs "cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	"github.com/google/uuid"
	"google.golang.org/api/option"
)

// FirebaseUploader stores images in a Firebase Storage bucket and serves
// them through the public googleapis URL.
type FirebaseUploader struct {
	bucket     *gcs.BucketHandle
	bucketName string
}

// NewFirebaseUploader creates an uploader using the provided credentials file.
func NewFirebaseUploader(ctx context.Context, cfg *config.Config) (*FirebaseUploader, error) {
	var opts []option.ClientOption
	if cfg.FirebaseCredentials != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.FirebaseCredentials))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{StorageBucket: cfg.FirebaseStorageBucket}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Storage(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get storage client: %w", err)
	}

	bucket, err := client.DefaultBucket()
	if err != nil {
		return nil, fmt.Errorf("failed to get default bucket: %w", err)
	}

	log.Println("[ImageHost] Firebase Storage uploader initialized")
	return &FirebaseUploader{bucket: bucket, bucketName: cfg.FirebaseStorageBucket}, nil
}

func (u *FirebaseUploader) Upload(ctx context.Context, localPath string) (string, error) {
	f, err := os.Open(localPath)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", localPath, err)
	}
	defer f.Close()

	name := "images/" + uuid.New().String() + filepath.Ext(localPath)
	obj := u.bucket.Object(name)

	w := obj.NewWriter(ctx)
	if _, err := io.Copy(w, f); err != nil {
		w.Close()
		return "", fmt.Errorf("failed to write object %s: %w", name, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize object %s: %w", name, err)
	}

	if err := obj.ACL().Set(ctx, gcs.AllUsers, gcs.RoleReader); err != nil {
		return "", fmt.Errorf("failed to make object %s public: %w", name, err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", u.bucketName, name), nil
}
