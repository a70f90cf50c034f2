// File: internal/filestorage/service.go
package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"uniconnect_backend/internal/config"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UploadResult identifies a stored object: the public URL handed to clients
// and the opaque object ID used for later deletion.
type UploadResult struct {
	URL      string
	ObjectID string
}

// Service is the opaque binary-object storage capability consumed by upload
// features.
type Service interface {
	Upload(fileHeader *multipart.FileHeader, folder string) (*UploadResult, error)
	Delete(objectID string) error
}

// LocalService stores uploads on the local filesystem under a base path and
// serves them from a public base URL.
type LocalService struct {
	storagePath   string
	publicBaseURL string
	logger        *zap.Logger
}

// NewLocalService creates a new local file storage service.
func NewLocalService(cfg *config.Config, logger *zap.Logger) (Service, error) {
	if cfg.FileStoragePath == "" {
		return nil, fmt.Errorf("storage path cannot be empty")
	}
	if err := os.MkdirAll(cfg.FileStoragePath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage path %s: %w", cfg.FileStoragePath, err)
	}
	logger.Info("File storage initialized", zap.String("storagePath", cfg.FileStoragePath))
	return &LocalService{
		storagePath:   cfg.FileStoragePath,
		publicBaseURL: strings.TrimRight(cfg.FilePublicBaseURL, "/"),
		logger:        logger,
	}, nil
}

// Upload saves a multipart file under folder with a generated unique name.
// The returned object ID is the storage-relative path.
func (s *LocalService) Upload(fileHeader *multipart.FileHeader, folder string) (*UploadResult, error) {
	if fileHeader == nil {
		return nil, fmt.Errorf("fileHeader cannot be nil")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	cleanFolder := filepath.Clean(folder)
	if strings.HasPrefix(cleanFolder, "..") || filepath.IsAbs(cleanFolder) {
		return nil, fmt.Errorf("invalid folder path")
	}

	extension := filepath.Ext(filepath.Base(fileHeader.Filename))
	objectID := filepath.ToSlash(filepath.Join(cleanFolder, uuid.New().String()+extension))

	destinationDir := filepath.Join(s.storagePath, cleanFolder)
	if err := os.MkdirAll(destinationDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create directory %s: %w", destinationDir, err)
	}

	destinationPath := filepath.Join(s.storagePath, filepath.FromSlash(objectID))
	dst, err := os.Create(destinationPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create file %s: %w", destinationPath, err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, src); err != nil {
		os.Remove(destinationPath)
		return nil, fmt.Errorf("failed to save file: %w", err)
	}

	s.logger.Info("File uploaded", zap.String("objectID", objectID))
	return &UploadResult{
		URL:      s.publicBaseURL + "/" + objectID,
		ObjectID: objectID,
	}, nil
}

// Delete removes a stored object by ID. A missing object is not an error.
func (s *LocalService) Delete(objectID string) error {
	if objectID == "" {
		return fmt.Errorf("object ID cannot be empty")
	}

	cleanID := filepath.Clean(filepath.FromSlash(objectID))
	if strings.Contains(cleanID, "..") || filepath.IsAbs(cleanID) {
		return fmt.Errorf("invalid object ID")
	}

	fullPath := filepath.Join(s.storagePath, cleanID)
	if err := os.Remove(fullPath); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to delete file %s: %w", fullPath, err)
	}
	s.logger.Info("File deleted", zap.String("objectID", objectID))
	return nil
}
