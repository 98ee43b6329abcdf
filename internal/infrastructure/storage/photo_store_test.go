package storage

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/home4paws/home4paws/internal/config"
	"github.com/home4paws/home4paws/internal/infrastructure/monitoring"
	"github.com/home4paws/home4paws/pkg/constants"
	"github.com/home4paws/home4paws/pkg/errors"
	"github.com/home4paws/home4paws/pkg/logger"
)

func multipartFiles(t *testing.T, field string, names ...string) []*multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, name := range names {
		fw, err := w.CreateFormFile(field, name)
		require.NoError(t, err)
		_, err = fw.Write([]byte("image-bytes-" + name))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req, err := http.NewRequest(http.MethodPost, "/", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))
	return req.MultipartForm.File[field]
}

func newTestStore(t *testing.T) (PhotoStore, string) {
	t.Helper()
	dir := t.TempDir()
	metrics := monitoring.NewMetrics(prometheus.NewRegistry())
	store, err := NewPhotoStore(&config.UploadsConfig{Dir: dir, BaseURL: "/uploads"}, metrics, logger.NewNoopLogger())
	require.NoError(t, err)
	return store, dir
}

func TestSavePhotos_WritesFilesAndReturnsURLs(t *testing.T) {
	store, dir := newTestStore(t)

	files := multipartFiles(t, "photos", "one.jpg", "two.PNG")
	urls, err := store.SavePhotos(context.Background(), constants.UploadCategoryReports, files)
	require.NoError(t, err)
	require.Len(t, urls, 2)

	for i, url := range urls {
		assert.True(t, strings.HasPrefix(url, "/uploads/reports/"), url)
		rel := strings.TrimPrefix(url, "/uploads/")
		data, err := os.ReadFile(filepath.Join(dir, rel))
		require.NoError(t, err)
		assert.Contains(t, string(data), "image-bytes-")
		// Stored names are generated, never the client's filename.
		assert.NotContains(t, url, "one.jpg")
		if i == 1 {
			assert.True(t, strings.HasSuffix(url, ".png"), url)
		}
	}
}

func TestSavePhotos_RejectsTooMany(t *testing.T) {
	store, _ := newTestStore(t)

	files := multipartFiles(t, "photos", "1.jpg", "2.jpg", "3.jpg", "4.jpg", "5.jpg", "6.jpg")
	_, err := store.SavePhotos(context.Background(), constants.UploadCategorySurrenderDogs, files)
	assert.ErrorIs(t, err, errors.ErrInvalidRequest)
}

func TestRemove_DeletesStoredPhoto(t *testing.T) {
	store, dir := newTestStore(t)

	files := multipartFiles(t, "photos", "gone.jpg")
	urls, err := store.SavePhotos(context.Background(), constants.UploadCategoryReports, files)
	require.NoError(t, err)
	require.Len(t, urls, 1)

	store.Remove(context.Background(), urls[0])
	rel := strings.TrimPrefix(urls[0], "/uploads/")
	_, statErr := os.Stat(filepath.Join(dir, rel))
	assert.True(t, os.IsNotExist(statErr))

	// Removing again, or removing garbage, is a no-op.
	store.Remove(context.Background(), urls[0])
	store.Remove(context.Background(), "/uploads/../../etc/passwd")
	store.Remove(context.Background(), "https://elsewhere.example/x.jpg")
}
