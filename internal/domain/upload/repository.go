package upload

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, rec *Record) error
	GetByID(ctx context.Context, id int64) (*Record, error)
	Search(ctx context.Context, f Filters) ([]Record, error)
	ListAll(ctx context.Context) ([]Record, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, rec *Record) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Record, error) {
	var rec Record
	if err := r.db.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUploadNotFound
		}
		return nil, err
	}
	return &rec, nil
}

func (r *repository) Search(ctx context.Context, f Filters) ([]Record, error) {
	q := r.db.WithContext(ctx).Model(&Record{})
	if f.DocumentNumber != "" {
		q = q.Where("document_number LIKE ?", "%"+f.DocumentNumber+"%")
	}
	if f.RevisionNumber != "" {
		q = q.Where("revision_number LIKE ?", "%"+f.RevisionNumber+"%")
	}

	var recs []Record
	err := q.Find(&recs).Error
	return recs, err
}

func (r *repository) ListAll(ctx context.Context) ([]Record, error) {
	var recs []Record
	err := r.db.WithContext(ctx).Order("id ASC").Find(&recs).Error
	return recs, err
}
