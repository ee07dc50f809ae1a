package document

import (
	"context"
	"strings"
	"time"
)

const DefaultStatus = "ACTIVE"

// Service contains the catalog business logic.
type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// CreateRevision persists one row per submitted line that has at least one
// non-blank field after trimming; fully blank rows are dropped. Every
// persisted row shares the header fields and the same date (server clock,
// date-only). Returns the number of rows written.
func (s *Service) CreateRevision(ctx context.Context, header Header, inputs []LineInput) (int, error) {
	lines := s.buildLines(header, inputs)
	if err := s.repo.CreateLines(ctx, lines); err != nil {
		return 0, err
	}
	return len(lines), nil
}

// ReplaceLine deletes the single row identified by lineID and inserts the
// submitted line set under the submitted header fields. Editing one line
// therefore replaces one row with a new set, possibly under different
// document/revision keys; rows that shared the old keys are untouched.
func (s *Service) ReplaceLine(ctx context.Context, lineID int64, header Header, inputs []LineInput) error {
	return s.repo.ReplaceLine(ctx, lineID, s.buildLines(header, inputs))
}

func (s *Service) DeleteLine(ctx context.Context, lineID int64) error {
	return s.repo.Delete(ctx, lineID)
}

func (s *Service) GetLine(ctx context.Context, lineID int64) (*Line, error) {
	return s.repo.GetByID(ctx, lineID)
}

func (s *Service) ListAll(ctx context.Context) ([]Line, error) {
	return s.repo.ListAll(ctx)
}

func (s *Service) Search(ctx context.Context, f Filters) ([]Line, error) {
	return s.repo.Search(ctx, f)
}

func (s *Service) Suggest(ctx context.Context, term string) ([]Suggestion, error) {
	return s.repo.Suggest(ctx, term)
}

func (s *Service) buildLines(header Header, inputs []LineInput) []Line {
	status := header.Status
	if status == "" {
		status = DefaultStatus
	}
	date := s.now().Format("2006-01-02")

	lines := make([]Line, 0, len(inputs))
	for _, in := range inputs {
		quantity := strings.TrimSpace(in.Quantity)
		materialNumber := strings.TrimSpace(in.MaterialNumber)
		materialName := strings.TrimSpace(in.MaterialName)
		vendor := strings.TrimSpace(in.Vendor)
		price := strings.TrimSpace(in.Price)

		if quantity == "" && materialNumber == "" && materialName == "" && vendor == "" && price == "" {
			continue
		}

		lines = append(lines, Line{
			Quantity:       quantity,
			MaterialNumber: materialNumber,
			MaterialName:   materialName,
			Vendor:         vendor,
			DocumentNumber: strings.TrimSpace(header.DocumentNumber),
			RevisionNumber: strings.TrimSpace(header.RevisionNumber),
			Price:          price,
			Date:           date,
			Status:         status,
		})
	}
	return lines
}
