package imagehost

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"vidstream-backend/pkg/config"

	"github.com/stretchr/testify/require"
)

func TestDiskUploader(t *testing.T) {
	dir := t.TempDir()
	uploader, err := NewDiskUploader(dir, "http://localhost:8080/uploads/")
	require.NoError(t, err)

	src := filepath.Join(t.TempDir(), "avatar.png")
	require.NoError(t, os.WriteFile(src, []byte("png-bytes"), 0o644))

	url, err := uploader.Upload(context.Background(), src)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(url, "http://localhost:8080/uploads/"))
	require.True(t, strings.HasSuffix(url, ".png"))

	stored := filepath.Join(dir, filepath.Base(url))
	data, err := os.ReadFile(stored)
	require.NoError(t, err)
	require.Equal(t, []byte("png-bytes"), data)
}

func TestDiskUploaderMissingSource(t *testing.T) {
	uploader, err := NewDiskUploader(t.TempDir(), "http://localhost:8080/uploads")
	require.NoError(t, err)

	_, err = uploader.Upload(context.Background(), "/does/not/exist.png")
	require.Error(t, err)
}

func TestNewSelectsDriver(t *testing.T) {
	cfg := &config.Config{ImageHost: "disk", DiskImageDir: t.TempDir(), DiskImageBaseURL: "http://x"}
	uploader, err := New(context.Background(), cfg)
	require.NoError(t, err)
	require.IsType(t, &DiskUploader{}, uploader)

	_, err = New(context.Background(), &config.Config{ImageHost: "ftp"})
	require.Error(t, err)
}
