// Package archive stores rendered inspection reports on the local
// filesystem or in an S3-compatible bucket.
package archive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/heartmarshall/inspection-registry/internal/config"
)

// Driver names accepted in configuration.
const (
	DriverNone = "none"
	DriverFS   = "fs"
	DriverS3   = "s3"
)

// ErrNotFound is returned by Get when no object exists under the key.
var ErrNotFound = errors.New("archive: object not found")

// Store persists immutable report objects under slash-separated keys.
type Store interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	// Ping reports whether the backing storage is reachable.
	Ping(ctx context.Context) error
	Driver() string
}

// New builds the store selected by cfg. It returns a nil Store for the
// "none" driver.
func New(ctx context.Context, cfg config.ArchiveConfig) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Driver)) {
	case "", DriverNone:
		return nil, nil
	case DriverFS:
		return NewFS(cfg.Dir)
	case DriverS3:
		return NewS3(ctx, S3Config{
			Bucket:          cfg.S3Bucket,
			Region:          cfg.S3Region,
			Endpoint:        cfg.S3Endpoint,
			PathStyle:       cfg.S3PathStyle,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretKey,
		})
	default:
		return nil, fmt.Errorf("archive: unknown driver %q", cfg.Driver)
	}
}

// cleanKey rejects keys that are empty, absolute or escape the store root.
func cleanKey(key string) (string, error) {
	if key == "" || strings.HasPrefix(key, "/") {
		return "", fmt.Errorf("archive: invalid key %q", key)
	}
	clean := path.Clean(key)
	if clean == "." || clean == ".." || strings.HasPrefix(clean, "../") {
		return "", fmt.Errorf("archive: invalid key %q", key)
	}
	return clean, nil
}
