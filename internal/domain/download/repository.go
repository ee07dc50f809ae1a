package download

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, e *Event) error
	ListWithUploads(ctx context.Context) ([]EventWithFile, error)
	CountByUploadID(ctx context.Context, uploadID int64) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, e *Event) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) ListWithUploads(ctx context.Context) ([]EventWithFile, error) {
	var rows []EventWithFile
	err := r.db.WithContext(ctx).
		Table("downloads").
		Select("downloads.*, uploads.filename").
		Joins("JOIN uploads ON downloads.upload_id = uploads.id").
		Order("downloads.id ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) CountByUploadID(ctx context.Context, uploadID int64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&Event{}).Where("upload_id = ?", uploadID).Count(&n).Error
	return n, err
}
