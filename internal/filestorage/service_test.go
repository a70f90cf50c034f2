// File: internal/filestorage/service_test.go
package filestorage

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"

	"uniconnect_backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func makeFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	reader := multipart.NewReader(&body, writer.Boundary())
	form, err := reader.ReadForm(int64(len(content)) + 1024)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	files := form.File["file"]
	require.Len(t, files, 1)
	return files[0]
}

func setupStorage(t *testing.T) (Service, string) {
	t.Helper()

	dir := t.TempDir()
	cfg := &config.Config{
		FileStoragePath:   dir,
		FilePublicBaseURL: "http://localhost:8080/uploads/",
	}
	svc, err := NewLocalService(cfg, zap.NewNop())
	require.NoError(t, err)
	return svc, dir
}

func TestUploadAndDelete(t *testing.T) {
	svc, dir := setupStorage(t)

	header := makeFileHeader(t, "paper.pdf", []byte("fake pdf bytes"))
	result, err := svc.Upload(header, "pyq")
	require.NoError(t, err)

	assert.Contains(t, result.URL, "http://localhost:8080/uploads/pyq/")
	assert.Contains(t, result.ObjectID, "pyq/")
	assert.Equal(t, ".pdf", filepath.Ext(result.ObjectID), "the original extension is preserved")

	stored, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(result.ObjectID)))
	require.NoError(t, err)
	assert.Equal(t, []byte("fake pdf bytes"), stored)

	require.NoError(t, svc.Delete(result.ObjectID))
	_, err = os.Stat(filepath.Join(dir, filepath.FromSlash(result.ObjectID)))
	assert.True(t, os.IsNotExist(err))
}

func TestDelete_MissingObjectIsNotAnError(t *testing.T) {
	svc, _ := setupStorage(t)
	assert.NoError(t, svc.Delete("pyq/never-existed.pdf"))
}

func TestDelete_RejectsTraversal(t *testing.T) {
	svc, _ := setupStorage(t)
	assert.Error(t, svc.Delete("../outside.txt"))
	assert.Error(t, svc.Delete("/etc/passwd"))
	assert.Error(t, svc.Delete(""))
}

func TestUpload_RejectsTraversalFolder(t *testing.T) {
	svc, _ := setupStorage(t)
	header := makeFileHeader(t, "x.txt", []byte("x"))

	_, err := svc.Upload(header, "../escape")
	assert.Error(t, err)
}
