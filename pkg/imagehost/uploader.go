package imagehost

import (
	"context"
	"fmt"

	"vidstream-backend/pkg/config"
)

// Uploader pushes a locally saved file to the configured image host and
// returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, localPath string) (string, error)
}

// New selects the uploader driver from config.
func New(ctx context.Context, cfg *config.Config) (Uploader, error) {
	switch cfg.ImageHost {
	case "s3":
		return NewS3Uploader(ctx, cfg)
	case "disk":
		return NewDiskUploader(cfg.DiskImageDir, cfg.DiskImageBaseURL)
	case "firebase", "":
		return NewFirebaseUploader(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown image host %q", cfg.ImageHost)
	}
}
