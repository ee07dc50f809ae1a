package upload

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service stores uploaded files on local disk and records them in the
// registry. Files live under baseDir as <uuid>_<sanitized original name>,
// so repeated uploads of the same filename never overwrite each other; the
// sanitized original name is kept on the record for display and download.
type Service struct {
	repo    Repository
	baseDir string
	now     func() time.Time
}

func NewService(repo Repository, baseDir string) *Service {
	return &Service{repo: repo, baseDir: baseDir, now: time.Now}
}

// Store writes the file to disk, then inserts the registry row. The file is
// removed again if the insert fails, so a row never points at nothing.
func (s *Service) Store(ctx context.Context, documentNumber, revisionNumber string, fileHeader *multipart.FileHeader, uploader string) (*Record, error) {
	if fileHeader == nil || fileHeader.Filename == "" {
		return nil, ErrNoFile
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer file.Close()

	if err := os.MkdirAll(s.baseDir, 0755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}

	safeName := sanitizeName(fileHeader.Filename)
	storedName := fmt.Sprintf("%s_%s", uuid.New().String(), safeName)
	absPath := filepath.Join(s.baseDir, storedName)

	dst, err := os.Create(absPath)
	if err != nil {
		return nil, fmt.Errorf("create file: %w", err)
	}
	if _, err := io.Copy(dst, file); err != nil {
		dst.Close()
		_ = os.Remove(absPath)
		return nil, fmt.Errorf("write file: %w", err)
	}
	if err := dst.Close(); err != nil {
		_ = os.Remove(absPath)
		return nil, fmt.Errorf("close file: %w", err)
	}

	rec := &Record{
		DocumentNumber: documentNumber,
		RevisionNumber: revisionNumber,
		Date:           s.now().Format("2006-01-02"),
		Filename:       safeName,
		Filepath:       absPath,
		UploadedBy:     uploader,
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		_ = os.Remove(absPath)
		return nil, fmt.Errorf("save upload record: %w", err)
	}

	return rec, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*Record, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Search(ctx context.Context, f Filters) ([]Record, error) {
	return s.repo.Search(ctx, f)
}

func (s *Service) ListAll(ctx context.Context) ([]Record, error) {
	return s.repo.ListAll(ctx)
}

// sanitizeName strips any path components and maps everything outside
// [a-zA-Z0-9._-] to underscores, keeping the extension usable.
func sanitizeName(name string) string {
	name = filepath.Base(name)
	name = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_' || r == '.' {
			return r
		}
		return '_'
	}, name)
	name = strings.Trim(name, ".")
	if name == "" {
		return "file"
	}
	return name
}
