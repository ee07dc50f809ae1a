package download

// Event is one append-only audit entry. A row is written the moment access
// to a file is authorized, before the bytes go out, so the ledger records
// attempted-and-authorized access rather than guaranteed transfer. Events
// are never updated or deleted.
type Event struct {
	ID             int64  `gorm:"column:id;primaryKey" json:"id"`
	UploadID       int64  `gorm:"column:upload_id;index" json:"upload_id"`
	DocumentNumber string `gorm:"column:document_number" json:"document_number"`
	DownloadedBy   string `gorm:"column:downloaded_by" json:"downloaded_by"`
	DownloadDate   string `gorm:"column:download_date" json:"download_date"`
}

func (Event) TableName() string { return "downloads" }

// EventWithFile is a ledger row joined with its upload's display filename,
// used by the report page.
type EventWithFile struct {
	Event
	Filename string `gorm:"column:filename" json:"filename"`
}
