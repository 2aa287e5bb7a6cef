package filestore_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mihretabn/taskhub/internal/infrastructure/filestore"
)

func uploadHeader(t *testing.T, field, filename, content string) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req, err := http.NewRequest("POST", "/", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	_, fh, err := req.FormFile(field)
	require.NoError(t, err)
	return fh
}

func TestDiskStoreSave(t *testing.T) {
	dir := t.TempDir()
	store, err := filestore.NewDiskStore(dir)
	require.NoError(t, err)

	fh := uploadHeader(t, "profileImage", "avatar.png", "png-bytes")
	name, err := store.Save(fh)
	require.NoError(t, err)
	assert.Contains(t, name, "avatar.png")

	data, err := os.ReadFile(filepath.Join(dir, filepath.Base(name)))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))
}

func TestDiskStoreSave_UniqueNames(t *testing.T) {
	dir := t.TempDir()
	store, err := filestore.NewDiskStore(dir)
	require.NoError(t, err)

	first, err := store.Save(uploadHeader(t, "f", "doc.pdf", "a"))
	require.NoError(t, err)
	second, err := store.Save(uploadHeader(t, "f", "doc.pdf", "b"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
