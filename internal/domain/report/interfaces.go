package report

import (
	"context"

	"dms/internal/domain/document"
	"dms/internal/domain/download"
	"dms/internal/domain/upload"
)

// The report only reads; these are the slices of the other domains it needs.

type DocumentSearcher interface {
	Search(ctx context.Context, f document.Filters) ([]document.Line, error)
}

type UploadLister interface {
	ListAll(ctx context.Context) ([]upload.Record, error)
}

type DownloadLister interface {
	ListWithUploads(ctx context.Context) ([]download.EventWithFile, error)
}
