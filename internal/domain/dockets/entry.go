package dockets

import "time"

// DocketEntry entity. One numbered entry on a docket, holding zero or more
// case documents.
type DocketEntry struct {
	ID           string `validate:"required,uuid4"`
	DocketID     string `validate:"required,uuid4"`
	Docket       *Docket
	EntryNumber  int64  `validate:"min=0"`
	Description  string `validate:"max=2000"`
	DateFiled    *time.Time
	DateCreated  time.Time `validate:"required"`
	DateModified time.Time `validate:"required"`

	// Prefetched relations
	Documents []*CaseDocument
	Tags      []*Tag
}

// Validate for validating DocketEntry struct
func (e *DocketEntry) Validate() error {
	return validateStruct(e)
}
