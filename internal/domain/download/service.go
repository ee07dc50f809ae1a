package download

import (
	"context"
	"time"

	"dms/internal/domain/upload"
)

// Service appends audit events and resolves the file to stream.
type Service struct {
	repo    Repository
	uploads UploadGetter
	now     func() time.Time
}

func NewService(repo Repository, uploads UploadGetter) *Service {
	return &Service{repo: repo, uploads: uploads, now: time.Now}
}

// RecordAndFetch looks up the upload, appends the ledger event, and returns
// the record whose file should be streamed. A missing upload id returns
// upload.ErrUploadNotFound with no ledger write. The event is committed
// before any bytes leave the process; if the file later turns out to be
// missing on disk, the event stays.
func (s *Service) RecordAndFetch(ctx context.Context, uploadID int64, username string) (*upload.Record, error) {
	rec, err := s.uploads.GetByID(ctx, uploadID)
	if err != nil {
		return nil, err
	}

	event := &Event{
		UploadID:       rec.ID,
		DocumentNumber: rec.DocumentNumber,
		DownloadedBy:   username,
		DownloadDate:   s.now().Format("2006-01-02"),
	}
	if err := s.repo.Create(ctx, event); err != nil {
		return nil, err
	}

	return rec, nil
}

// ListWithUploads returns the full ledger joined with upload filenames.
func (s *Service) ListWithUploads(ctx context.Context) ([]EventWithFile, error) {
	return s.repo.ListWithUploads(ctx)
}
