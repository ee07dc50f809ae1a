package report

import (
	"context"

	"dms/internal/domain/document"
	"dms/internal/domain/download"
	"dms/internal/domain/upload"
)

// Report is everything the /view_report page shows: document lines matching
// the filters, every upload, and the full download ledger with filenames.
type Report struct {
	Documents []document.Line
	Uploads   []upload.Record
	Downloads []download.EventWithFile
}

type Service struct {
	documents DocumentSearcher
	uploads   UploadLister
	downloads DownloadLister
}

func NewService(documents DocumentSearcher, uploads UploadLister, downloads DownloadLister) *Service {
	return &Service{documents: documents, uploads: uploads, downloads: downloads}
}

func (s *Service) Build(ctx context.Context, f document.Filters) (*Report, error) {
	docs, err := s.documents.Search(ctx, f)
	if err != nil {
		return nil, err
	}
	uploads, err := s.uploads.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	downloads, err := s.downloads.ListWithUploads(ctx)
	if err != nil {
		return nil, err
	}
	return &Report{Documents: docs, Uploads: uploads, Downloads: downloads}, nil
}
