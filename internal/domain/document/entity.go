package document

// Line is one line item of a document revision. A document revision is the
// set of lines sharing (document_number, revision_number); there is no
// separate header table and no uniqueness constraint across revisions.
// All values are stored as the free text the form submitted.
type Line struct {
	ID             int64  `gorm:"column:id;primaryKey" json:"id"`
	Quantity       string `gorm:"column:quantity" json:"quantity"`
	MaterialNumber string `gorm:"column:material_number" json:"material_number"`
	MaterialName   string `gorm:"column:material_name" json:"material_name"`
	Vendor         string `gorm:"column:vendor" json:"vendor"`
	DocumentNumber string `gorm:"column:document_number" json:"document_number"`
	RevisionNumber string `gorm:"column:revision_number" json:"revision_number"`
	Price          string `gorm:"column:price" json:"price"`
	Date           string `gorm:"column:date" json:"date"`
	Status         string `gorm:"column:status" json:"status"`
}

func (Line) TableName() string { return "documents" }

// Header carries the fields shared by every line of a submitted revision.
type Header struct {
	DocumentNumber string
	RevisionNumber string
	Status         string
}

// LineInput is one submitted form row before trimming and blank filtering.
type LineInput struct {
	Quantity       string
	MaterialNumber string
	MaterialName   string
	Vendor         string
	Price          string
}

// Filters are combined with AND; empty fields are not applied. Each value
// matches as a substring (LIKE with wildcards on both sides).
type Filters struct {
	DocumentNumber string
	RevisionNumber string
	Date           string
	MaterialName   string
}

// Suggestion is one autocomplete pair for the search endpoint.
type Suggestion struct {
	DocumentNumber string `gorm:"column:document_number" json:"document_number"`
	RevisionNumber string `gorm:"column:revision_number" json:"revision_number"`
}
