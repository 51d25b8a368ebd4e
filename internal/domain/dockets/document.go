package dockets

import "time"

// Document type constants.
const (
	DocumentTypeMain       = "main"
	DocumentTypeAttachment = "attachment"
)

// CaseDocument entity. A filed document (or attachment) on a docket entry.
type CaseDocument struct {
	ID               string `validate:"required,uuid4"`
	DocketEntryID    string `validate:"required,uuid4"`
	DocketEntry      *DocketEntry
	DocumentNumber   string `validate:"max=50"`
	AttachmentNumber *int   `validate:"omitempty,min=0"`
	DocumentType     string `validate:"required,oneof=main attachment"`
	Description      string `validate:"max=2000"`
	PageCount        *int   `validate:"omitempty,min=0"`
	FilePath         string `validate:"max=500"`
	SHA1             string `validate:"omitempty,len=40"`
	IsAvailable      bool
	DateUpload       *time.Time
	DateCreated      time.Time `validate:"required"`
	DateModified     time.Time `validate:"required"`

	// Prefetched relations
	Tags []*Tag
}

// Validate for validating CaseDocument struct
func (d *CaseDocument) Validate() error {
	return validateStruct(d)
}
