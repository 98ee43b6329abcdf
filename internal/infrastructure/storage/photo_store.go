// Package storage implements the photo store: uploaded images are written
// under a configurable directory and served back as relative URLs.
package storage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/home4paws/home4paws/internal/config"
	"github.com/home4paws/home4paws/internal/infrastructure/monitoring"
	"github.com/home4paws/home4paws/pkg/constants"
	"github.com/home4paws/home4paws/pkg/errors"
	"github.com/home4paws/home4paws/pkg/logger"
)

// PhotoStore persists uploaded photos and returns their public URLs.
type PhotoStore interface {
	// SavePhotos writes the given multipart files under the category
	// subdirectory and returns one URL per stored file, in input order.
	SavePhotos(ctx context.Context, category string, files []*multipart.FileHeader) ([]string, error)

	// Remove deletes a previously stored photo by its URL. Unknown URLs are
	// ignored.
	Remove(ctx context.Context, url string)
}

type diskPhotoStore struct {
	root    string
	baseURL string
	metrics *monitoring.Metrics
	log     logger.Logger
}

// NewPhotoStore builds a disk-backed photo store rooted at cfg.Dir.
func NewPhotoStore(cfg *config.UploadsConfig, metrics *monitoring.Metrics, log logger.Logger) (PhotoStore, error) {
	for _, category := range []string{constants.UploadCategoryReports, constants.UploadCategorySurrenderDogs} {
		if err := os.MkdirAll(filepath.Join(cfg.Dir, category), 0o755); err != nil {
			return nil, fmt.Errorf("create upload directory: %w", err)
		}
	}
	return &diskPhotoStore{
		root:    cfg.Dir,
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		metrics: metrics,
		log:     log.WithComponent("photo_store"),
	}, nil
}

func (s *diskPhotoStore) SavePhotos(ctx context.Context, category string, files []*multipart.FileHeader) ([]string, error) {
	if len(files) > constants.MaxPhotosPerRequest {
		return nil, errors.ErrValidation(fmt.Sprintf("Maximum %d photos allowed", constants.MaxPhotosPerRequest))
	}

	urls := make([]string, 0, len(files))
	for _, fh := range files {
		url, err := s.saveOne(category, fh)
		if err != nil {
			// Roll back the files already written for this request.
			for _, u := range urls {
				s.Remove(ctx, u)
			}
			s.log.Error(ctx, "store photo failed", err, logger.Fields{"category": category})
			return nil, errors.ErrInternalServer.WithError(err)
		}
		urls = append(urls, url)
	}
	s.metrics.RecordPhotosStored(len(urls))
	return urls, nil
}

func (s *diskPhotoStore) saveOne(category string, fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	name := uuid.NewString() + ext
	dst, err := os.Create(filepath.Join(s.root, category, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return "", err
	}
	return path.Join(s.baseURL, category, name), nil
}

func (s *diskPhotoStore) Remove(ctx context.Context, url string) {
	rel, ok := strings.CutPrefix(url, s.baseURL+"/")
	if !ok {
		return
	}
	// Refuse anything that escapes the upload root.
	rel = path.Clean(rel)
	if rel == "." || strings.HasPrefix(rel, "..") {
		return
	}
	if err := os.Remove(filepath.Join(s.root, filepath.FromSlash(rel))); err != nil && !os.IsNotExist(err) {
		s.log.Warn(ctx, "remove photo failed", logger.Fields{"url": url, "error": err.Error()})
	}
}
