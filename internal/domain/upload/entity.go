package upload

// Record is the registry row for one uploaded file. Filename is the
// sanitized original name used for display and download; Filepath is where
// the bytes actually live on disk. Uploads correlate with document lines
// only through the shared document/revision numbers, not a foreign key.
type Record struct {
	ID             int64  `gorm:"column:id;primaryKey" json:"id"`
	DocumentNumber string `gorm:"column:document_number" json:"document_number"`
	RevisionNumber string `gorm:"column:revision_number" json:"revision_number"`
	Date           string `gorm:"column:date" json:"date"`
	Filename       string `gorm:"column:filename" json:"filename"`
	Filepath       string `gorm:"column:filepath" json:"-"`
	UploadedBy     string `gorm:"column:uploaded_by" json:"uploaded_by"`
}

func (Record) TableName() string { return "uploads" }

// Filters are AND-combined substring matches; empty fields are skipped.
type Filters struct {
	DocumentNumber string
	RevisionNumber string
}
