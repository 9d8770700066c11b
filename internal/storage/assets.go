package storage

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"path"

	"pizzeria/internal/catalog"

	"go.uber.org/zap"
)

// Uploader is satisfied by *R2Client.
type Uploader interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
}

// SyncAssets uploads every topping image of the catalog from fsys, keyed by
// the image's catalog path, and returns the public URLs in catalog order.
// Point ASSET_BASE_URL at the bucket's public base to serve them from there.
func SyncAssets(
	ctx context.Context,
	up Uploader,
	cat *catalog.Catalog,
	fsys fs.FS,
	logger *zap.Logger,
) ([]string, error) {
	var urls []string
	for _, t := range cat.Toppings() {
		url, err := uploadFile(ctx, up, fsys, t.Image)
		if err != nil {
			return urls, fmt.Errorf("topping %s: %w", t.ID, err)
		}
		logger.Info("asset uploaded", zap.String("topping", t.ID), zap.String("url", url))
		urls = append(urls, url)
	}
	return urls, nil
}

func uploadFile(ctx context.Context, up Uploader, fsys fs.FS, key string) (string, error) {
	f, err := fsys.Open(key)
	if err != nil {
		return "", err
	}
	defer f.Close()

	contentType := mime.TypeByExtension(path.Ext(key))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return up.Upload(ctx, key, f, contentType)
}
