package document

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

const suggestLimit = 10

type Repository interface {
	CreateLines(ctx context.Context, lines []Line) error
	ReplaceLine(ctx context.Context, id int64, lines []Line) error
	GetByID(ctx context.Context, id int64) (*Line, error)
	Delete(ctx context.Context, id int64) error
	ListAll(ctx context.Context) ([]Line, error)
	Search(ctx context.Context, f Filters) ([]Line, error)
	Suggest(ctx context.Context, term string) ([]Suggestion, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateLines(ctx context.Context, lines []Line) error {
	if len(lines) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&lines).Error
}

// ReplaceLine removes the single row identified by id and inserts the new
// line set in one transaction. Only that one row is deleted, even when other
// rows share its document/revision keys.
func (r *repository) ReplaceLine(ctx context.Context, id int64, lines []Line) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&Line{}, "id = ?", id).Error; err != nil {
			return err
		}
		if len(lines) == 0 {
			return nil
		}
		return tx.Create(&lines).Error
	})
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Line, error) {
	var line Line
	if err := r.db.WithContext(ctx).First(&line, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLineNotFound
		}
		return nil, err
	}
	return &line, nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&Line{}, "id = ?", id).Error
}

func (r *repository) ListAll(ctx context.Context) ([]Line, error) {
	var lines []Line
	err := r.db.WithContext(ctx).Order("id DESC").Find(&lines).Error
	return lines, err
}

func (r *repository) Search(ctx context.Context, f Filters) ([]Line, error) {
	q := r.db.WithContext(ctx).Model(&Line{})
	if f.DocumentNumber != "" {
		q = q.Where("document_number LIKE ?", "%"+f.DocumentNumber+"%")
	}
	if f.RevisionNumber != "" {
		q = q.Where("revision_number LIKE ?", "%"+f.RevisionNumber+"%")
	}
	if f.Date != "" {
		q = q.Where("date LIKE ?", "%"+f.Date+"%")
	}
	if f.MaterialName != "" {
		q = q.Where("material_name LIKE ?", "%"+f.MaterialName+"%")
	}

	var lines []Line
	err := q.Find(&lines).Error
	return lines, err
}

// Suggest returns up to 10 distinct (document_number, revision_number)
// pairs matching the term in either column. An empty term matches all rows.
func (r *repository) Suggest(ctx context.Context, term string) ([]Suggestion, error) {
	like := "%" + term + "%"
	var pairs []Suggestion
	err := r.db.WithContext(ctx).
		Model(&Line{}).
		Distinct("document_number", "revision_number").
		Where("document_number LIKE ? OR revision_number LIKE ?", like, like).
		Limit(suggestLimit).
		Find(&pairs).Error
	return pairs, err
}
