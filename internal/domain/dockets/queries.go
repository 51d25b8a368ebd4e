package dockets

import "time"

// DocketQuery carries the filter, ordering and pagination parameters for
// docket list requests.
type DocketQuery struct {
	CourtID      string `validate:"omitempty,min=2,max=15"`
	CaseName     string `validate:"omitempty,max=500"`
	DocketNumber string `validate:"omitempty,max=100"`
	Blocked      *bool
	FiledAfter   *time.Time
	FiledBefore  *time.Time
	Limit        int    `validate:"min=0,max=500"`
	Offset       int    `validate:"min=0"`
	SortBy       string `validate:"omitempty,oneof=date_created date_modified date_argued date_filed date_terminated date_last_filing date_blocked"`
	SortOrder    string `validate:"omitempty,oneof=asc desc"`
}

// NewDocketQuery creates a DocketQuery with default pagination values.
func NewDocketQuery() *DocketQuery {
	return &DocketQuery{
		Limit:  50,
		Offset: 0,
	}
}

// Validate for validating DocketQuery struct
func (q *DocketQuery) Validate() error {
	return validateStruct(q)
}

// DocketEntryQuery carries the filter, ordering and pagination parameters
// for docket entry list requests.
type DocketEntryQuery struct {
	DocketID    string `validate:"omitempty,uuid4"`
	EntryNumber *int64 `validate:"omitempty"`
	FiledAfter  *time.Time
	FiledBefore *time.Time
	Limit       int    `validate:"min=0,max=500"`
	Offset      int    `validate:"min=0"`
	SortBy      string `validate:"omitempty,oneof=date_created date_modified date_filed"`
	SortOrder   string `validate:"omitempty,oneof=asc desc"`
}

// NewDocketEntryQuery creates a DocketEntryQuery with default pagination values.
func NewDocketEntryQuery() *DocketEntryQuery {
	return &DocketEntryQuery{
		Limit:  50,
		Offset: 0,
	}
}

// Validate for validating DocketEntryQuery struct
func (q *DocketEntryQuery) Validate() error {
	return validateStruct(q)
}

// CaseDocumentQuery carries the filter, ordering and pagination parameters
// for case document list requests.
type CaseDocumentQuery struct {
	DocketEntryID  string `validate:"omitempty,uuid4"`
	DocumentNumber string `validate:"omitempty,max=50"`
	DocumentType   string `validate:"omitempty,oneof=main attachment"`
	IsAvailable    *bool
	Limit          int    `validate:"min=0,max=500"`
	Offset         int    `validate:"min=0"`
	SortBy         string `validate:"omitempty,oneof=date_created date_modified date_upload"`
	SortOrder      string `validate:"omitempty,oneof=asc desc"`
}

// NewCaseDocumentQuery creates a CaseDocumentQuery with default pagination values.
func NewCaseDocumentQuery() *CaseDocumentQuery {
	return &CaseDocumentQuery{
		Limit:  50,
		Offset: 0,
	}
}

// Validate for validating CaseDocumentQuery struct
func (q *CaseDocumentQuery) Validate() error {
	return validateStruct(q)
}

// TagQuery carries the filter, ordering and pagination parameters for tag
// list requests.
type TagQuery struct {
	Name      string `validate:"omitempty,max=50"`
	Limit     int    `validate:"min=0,max=500"`
	Offset    int    `validate:"min=0"`
	SortBy    string `validate:"omitempty,oneof=date_created date_modified name"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
}

// NewTagQuery creates a TagQuery with default pagination values.
func NewTagQuery() *TagQuery {
	return &TagQuery{
		Limit:  50,
		Offset: 0,
	}
}

// Validate for validating TagQuery struct
func (q *TagQuery) Validate() error {
	return validateStruct(q)
}
