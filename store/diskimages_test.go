package store

import (
	"os"
	"path"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Minimal valid PNG signature; enough for content sniffing.
var pngBytes = []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0, 0, 0, 0}

func TestUploadStoresImageAndReturnsPublicURL(t *testing.T) {
	dir := t.TempDir()
	s := NewDiskImageStore(dir, "/uploads/products")

	url, err := s.Upload(pngBytes, "saree photo.png")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "/uploads/products/product_"), "unexpected url %q", url)
	assert.True(t, strings.HasSuffix(url, ".png"))

	data, err := os.ReadFile(filepath.Join(dir, path.Base(url)))
	require.NoError(t, err)
	assert.Equal(t, pngBytes, data)
}

func TestUploadGeneratesUniqueNames(t *testing.T) {
	s := NewDiskImageStore(t.TempDir(), "/uploads/products")

	first, err := s.Upload(pngBytes, "a.png")
	require.NoError(t, err)
	second, err := s.Upload(pngBytes, "a.png")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestUploadRejectsNonImageContent(t *testing.T) {
	dir := t.TempDir()
	s := NewDiskImageStore(dir, "/uploads/products")

	_, err := s.Upload([]byte("%PDF-1.4 definitely not an image"), "fake.png")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = s.Upload(nil, "empty.png")
	assert.ErrorIs(t, err, ErrValidation)

	entries, err := os.ReadDir(dir)
	if err == nil {
		assert.Empty(t, entries, "nothing should reach disk on rejection")
	}
}

func TestRemoveDeletesUploadedFile(t *testing.T) {
	dir := t.TempDir()
	s := NewDiskImageStore(dir, "/uploads/products")

	url, err := s.Upload(pngBytes, "a.png")
	require.NoError(t, err)

	require.NoError(t, s.Remove(url))
	_, err = os.Stat(filepath.Join(dir, path.Base(url)))
	assert.True(t, os.IsNotExist(err))
}

func TestRemoveMissingFileReturnsError(t *testing.T) {
	s := NewDiskImageStore(t.TempDir(), "/uploads/products")
	assert.Error(t, s.Remove("/uploads/products/product_404.png"))
}
