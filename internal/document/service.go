package document

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/tusharpolymers/onboard-portal/internal"
)

// Repository defines the data access methods for document metadata
type Repository interface {
	Create(d *Document) error
	GetByUserID(userID int64) ([]*Document, error)
}

// UploadInput is one file part plus its form metadata, as extracted by the
// HTTP handler. Content is the unread file stream.
type UploadInput struct {
	DocumentType string
	OriginalName string
	ContentType  string
	Content      io.Reader
}

// Service owns the upload pipeline: validate, store, then record. Metadata
// is only written after the file is durably on disk, so a Document row never
// references a missing file.
type Service struct {
	repo      Repository
	store     FileStore
	maxSize   int64
	logger    *slog.Logger
	timestamp func() int64
}

func NewService(repo Repository, store FileStore, maxSize int64, logger *slog.Logger) *Service {
	if maxSize <= 0 {
		maxSize = internal.DefaultMaxUploadSize
	}
	return &Service{
		repo:      repo,
		store:     store,
		maxSize:   maxSize,
		logger:    logger,
		timestamp: func() int64 { return time.Now().UnixNano() },
	}
}

// Upload runs the pipeline for an authenticated caller. The caller identity
// must already be resolved; it is baked into the stored file name.
func (s *Service) Upload(callerID int64, in UploadInput) (*Document, error) {
	if in.Content == nil {
		return nil, internal.ErrMissingFile
	}

	if !ValidDocumentType(in.DocumentType) {
		s.logger.Warn("upload rejected: unknown document type",
			"user_id", callerID, "document_type", in.DocumentType)
		return nil, internal.NewValidationError(
			"document type must be one of PAN, Aadhar, Certificate, OfferLetter",
			internal.ErrCodeValidationFailed)
	}

	if !CheckFileType(in.OriginalName, in.ContentType) {
		s.logger.Warn("upload rejected: file type",
			"user_id", callerID, "content_type", in.ContentType)
		return nil, internal.ErrBadFileType
	}

	fileName := s.generateFileName(callerID, Ext(in.OriginalName))

	// Copy at most maxSize+1 bytes; anything past the limit means the file
	// is oversized and the partial write is discarded. The stream is never
	// buffered whole, so an oversized body cannot exhaust disk beyond the
	// limit.
	limited := io.LimitReader(in.Content, s.maxSize+1)
	path, written, err := s.store.Save(fileName, limited)
	if err != nil {
		s.logger.Error("upload failed: storage write",
			"user_id", callerID, "file_name", fileName, "error", err)
		return nil, internal.NewStorageIOError(err)
	}
	if written > s.maxSize {
		if rmErr := s.store.Remove(fileName); rmErr != nil {
			s.logger.Error("failed to remove oversized upload", "file_name", fileName, "error", rmErr)
		}
		s.logger.Warn("upload rejected: size",
			"user_id", callerID, "written", written, "limit", s.maxSize)
		return nil, internal.ErrFileTooLarge
	}

	d := &Document{
		UserID:       callerID,
		DocumentType: in.DocumentType,
		FileName:     fileName,
		FilePath:     path,
		Status:       StatusPending,
	}

	if err := s.repo.Create(d); err != nil {
		// No orphan files either: a failed metadata write discards the blob.
		if rmErr := s.store.Remove(fileName); rmErr != nil {
			s.logger.Error("failed to remove file after metadata failure", "file_name", fileName, "error", rmErr)
		}
		s.logger.Error("upload failed: metadata write", "user_id", callerID, "error", err)
		return nil, err
	}

	s.logger.Info("document uploaded",
		"document_id", d.ID,
		"user_id", callerID,
		"document_type", d.DocumentType,
		"file_name", d.FileName,
		"size_bytes", written)

	return d, nil
}

// GetDocumentsForUser returns the caller's documents in insertion order.
func (s *Service) GetDocumentsForUser(userID int64) ([]*Document, error) {
	docs, err := s.repo.GetByUserID(userID)
	if err != nil {
		s.logger.Error("failed to get documents", "error", err, "user_id", userID)
		return nil, err
	}
	return docs, nil
}

// generateFileName composes the stored name from a fixed field tag, the
// owner id, and a nanosecond timestamp. Two uploads by the same user in the
// same millisecond still get distinct names.
func (s *Service) generateFileName(callerID int64, ext string) string {
	return fmt.Sprintf("document-%d-%d%s", callerID, s.timestamp(), ext)
}
