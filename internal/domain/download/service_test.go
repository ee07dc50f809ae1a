package download

import (
	"context"
	"testing"

	"dms/internal/domain/upload"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(
		gormsqlite.New(gormsqlite.Config{DriverName: "sqlite", DSN: ":memory:"}),
		&gorm.Config{},
	)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&upload.Record{}, &Event{}))
	return db
}

func TestService_RecordAndFetch_UnknownIDWritesNothing(t *testing.T) {
	db := setupDB(t)
	svc := NewService(NewRepository(db), upload.NewRepository(db))

	_, err := svc.RecordAndFetch(context.Background(), 99999, "alice")
	assert.ErrorIs(t, err, upload.ErrUploadNotFound)

	var count int64
	require.NoError(t, db.Model(&Event{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestService_RecordAndFetch_AppendsOneEvent(t *testing.T) {
	db := setupDB(t)
	uploadRepo := upload.NewRepository(db)
	svc := NewService(NewRepository(db), uploadRepo)
	ctx := context.Background()

	rec := &upload.Record{
		DocumentNumber: "DOC-1",
		RevisionNumber: "REV-A",
		Date:           "2026-03-14",
		Filename:       "spec.pdf",
		Filepath:       "/tmp/uploads/abc_spec.pdf",
		UploadedBy:     "alice",
	}
	require.NoError(t, uploadRepo.Create(ctx, rec))

	got, err := svc.RecordAndFetch(ctx, rec.ID, "bob")
	require.NoError(t, err)
	assert.Equal(t, rec.Filepath, got.Filepath)
	assert.Equal(t, "spec.pdf", got.Filename)

	var events []Event
	require.NoError(t, db.Find(&events).Error)
	require.Len(t, events, 1)
	assert.Equal(t, rec.ID, events[0].UploadID)
	assert.Equal(t, "DOC-1", events[0].DocumentNumber, "document number is denormalized onto the event")
	assert.Equal(t, "bob", events[0].DownloadedBy)
	assert.NotEmpty(t, events[0].DownloadDate)

	// the ledger row is written even when the file is missing on disk;
	// a second fetch simply appends another event
	_, err = svc.RecordAndFetch(ctx, rec.ID, "carol")
	require.NoError(t, err)
	var count int64
	require.NoError(t, db.Model(&Event{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestService_ListWithUploads_JoinsFilenames(t *testing.T) {
	db := setupDB(t)
	uploadRepo := upload.NewRepository(db)
	svc := NewService(NewRepository(db), uploadRepo)
	ctx := context.Background()

	rec := &upload.Record{DocumentNumber: "DOC-1", RevisionNumber: "REV-A", Filename: "spec.pdf", Filepath: "/x"}
	require.NoError(t, uploadRepo.Create(ctx, rec))
	_, err := svc.RecordAndFetch(ctx, rec.ID, "alice")
	require.NoError(t, err)

	rows, err := svc.ListWithUploads(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "spec.pdf", rows[0].Filename)
	assert.Equal(t, "alice", rows[0].DownloadedBy)
	assert.Equal(t, rec.ID, rows[0].UploadID)
}
