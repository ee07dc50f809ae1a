package download

import (
	"context"

	"dms/internal/domain/upload"
)

// UploadGetter is the slice of the File Registry this package needs.
type UploadGetter interface {
	GetByID(ctx context.Context, id int64) (*upload.Record, error)
}
