package opinions

import "time"

// OpinionClusterQuery carries the filter, ordering and pagination parameters
// for opinion cluster list requests.
type OpinionClusterQuery struct {
	DocketID           string `validate:"omitempty,uuid4"`
	CaseName           string `validate:"omitempty,max=500"`
	PrecedentialStatus string `validate:"omitempty,oneof=Published Unpublished Errata In-chambers"`
	CitationCountGt    *int64 `validate:"omitempty"`
	CitationCountLt    *int64 `validate:"omitempty"`
	FiledAfter         *time.Time
	FiledBefore        *time.Time
	Blocked            *bool
	Limit              int    `validate:"min=0,max=500"`
	Offset             int    `validate:"min=0"`
	SortBy             string `validate:"omitempty,oneof=date_created date_modified date_filed citation_count date_blocked"`
	SortOrder          string `validate:"omitempty,oneof=asc desc"`
}

// NewOpinionClusterQuery creates an OpinionClusterQuery with default
// pagination values.
func NewOpinionClusterQuery() *OpinionClusterQuery {
	return &OpinionClusterQuery{
		Limit:  50,
		Offset: 0,
	}
}

// Validate for validating OpinionClusterQuery struct
func (q *OpinionClusterQuery) Validate() error {
	return validateStruct(q)
}

// OpinionQuery carries the filter, ordering and pagination parameters for
// opinion list requests.
type OpinionQuery struct {
	ClusterID      string `validate:"omitempty,uuid4"`
	Type           string `validate:"omitempty,oneof=lead concurrence dissent addendum"`
	AuthorStr      string `validate:"omitempty,max=200"`
	ExtractedByOCR *bool
	PerCuriam      *bool
	Limit          int    `validate:"min=0,max=500"`
	Offset         int    `validate:"min=0"`
	SortBy         string `validate:"omitempty,oneof=id date_created date_modified"`
	SortOrder      string `validate:"omitempty,oneof=asc desc"`
}

// NewOpinionQuery creates an OpinionQuery with default pagination values.
func NewOpinionQuery() *OpinionQuery {
	return &OpinionQuery{
		Limit:  50,
		Offset: 0,
	}
}

// Validate for validating OpinionQuery struct
func (q *OpinionQuery) Validate() error {
	return validateStruct(q)
}

// CitationQuery carries the filter and pagination parameters for citation
// edge list requests. The original endpoint exposes no custom ordering.
type CitationQuery struct {
	CitingOpinionID string `validate:"omitempty,uuid4"`
	CitedOpinionID  string `validate:"omitempty,uuid4"`
	DepthGte        *int   `validate:"omitempty"`
	Limit           int    `validate:"min=0,max=500"`
	Offset          int    `validate:"min=0"`
}

// NewCitationQuery creates a CitationQuery with default pagination values.
func NewCitationQuery() *CitationQuery {
	return &CitationQuery{
		Limit:  50,
		Offset: 0,
	}
}

// Validate for validating CitationQuery struct
func (q *CitationQuery) Validate() error {
	return validateStruct(q)
}
