// File: internal/pyq/service.go
package pyq

import (
	"context"
	"mime/multipart"

	"uniconnect_backend/internal/authz"
	"uniconnect_backend/internal/common"
	"uniconnect_backend/internal/filestorage"
	"uniconnect_backend/internal/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const uploadFolder = "pyq"

// Service handles business logic for past-year question papers.
type Service struct {
	repo    Repository
	users   *user.Service
	storage filestorage.Service
	logger  *zap.Logger
}

// NewService creates a new paper service.
func NewService(repo Repository, users *user.Service, storage filestorage.Service, logger *zap.Logger) *Service {
	return &Service{repo: repo, users: users, storage: storage, logger: logger.Named("PYQService")}
}

// UploadPaper stores the attachment and records the paper under the
// caller's university.
func (s *Service) UploadPaper(ctx context.Context, callerID uuid.UUID, req UploadPaperRequest, file *multipart.FileHeader) (*Paper, error) {
	uploader, err := s.users.GetByID(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if uploader.UniversityID == nil {
		return nil, common.ErrBadRequest.WithDetails("You must set your university before uploading papers.")
	}

	uploaded, err := s.storage.Upload(file, uploadFolder)
	if err != nil {
		s.logger.Error("Paper upload to storage failed", zap.Error(err))
		return nil, common.ErrInternalServer.WithDetails("Failed to store the uploaded file.")
	}

	paper := &Paper{
		UploaderID:   callerID,
		UniversityID: *uploader.UniversityID,
		Subject:      req.Subject,
		CourseCode:   req.CourseCode,
		Year:         req.Year,
		FileURL:      uploaded.URL,
		FileObjectID: uploaded.ObjectID,
	}
	if err := s.repo.Create(ctx, paper); err != nil {
		// Best effort cleanup of the orphaned file.
		if delErr := s.storage.Delete(uploaded.ObjectID); delErr != nil {
			s.logger.Warn("Failed to clean up orphaned upload",
				zap.String("objectID", uploaded.ObjectID), zap.Error(delErr))
		}
		return nil, err
	}

	s.logger.Info("Paper uploaded",
		zap.String("paperID", paper.ID.String()),
		zap.String("subject", paper.Subject),
		zap.Int("year", paper.Year))
	return paper, nil
}

// Search returns papers in a university matching a subject fragment and,
// when year > 0, an exact year.
func (s *Service) Search(ctx context.Context, universityID uuid.UUID, subject string, year int) ([]Paper, error) {
	return s.repo.Search(ctx, universityID, subject, year)
}

// DeletePaper removes a paper. Only the uploader may delete. A storage
// delete failure is logged but does not block removing the record.
func (s *Service) DeletePaper(ctx context.Context, callerID, paperID uuid.UUID) error {
	existing, err := s.repo.FindByID(ctx, paperID)
	if err != nil {
		return err
	}
	if err := authz.CheckOwner(callerID, existing.UploaderID); err != nil {
		return err
	}

	if err := s.storage.Delete(existing.FileObjectID); err != nil {
		s.logger.Warn("Failed to delete paper attachment from storage, removing record anyway",
			zap.String("paperID", paperID.String()),
			zap.String("objectID", existing.FileObjectID),
			zap.Error(err))
	}

	if err := s.repo.Delete(ctx, paperID); err != nil {
		return err
	}
	s.logger.Info("Paper deleted", zap.String("paperID", paperID.String()))
	return nil
}
