package opinions

import "time"

// Precedential status values carried on a cluster.
const (
	StatusPublished   = "Published"
	StatusUnpublished = "Unpublished"
	StatusErrata      = "Errata"
	StatusInChambers  = "In-chambers"
)

// OpinionCluster entity. A cluster groups the opinions issued together for
// one decision (lead opinion, concurrences, dissents).
type OpinionCluster struct {
	ID                 string `validate:"required,uuid4"`
	DocketID           string `validate:"required,uuid4"`
	CaseName           string `validate:"required,min=1,max=500"`
	CaseNameShort      string `validate:"max=200"`
	JudgeNames         string `validate:"max=500"`
	PrecedentialStatus string `validate:"required,oneof=Published Unpublished Errata In-chambers"`
	CitationCount      int64  `validate:"min=0"`
	Blocked            bool
	DateFiled          time.Time `validate:"required"`
	DateBlocked        *time.Time
	DateCreated        time.Time `validate:"required"`
	DateModified       time.Time `validate:"required"`

	// Prefetched relations
	SubOpinions []*Opinion
	Citations   []*ReporterCitation
}

// Validate for validating OpinionCluster struct
func (c *OpinionCluster) Validate() error {
	return validateStruct(c)
}

// ReporterCitation is one parallel reporter citation for a cluster
// (e.g. 410 U.S. 113).
type ReporterCitation struct {
	ID        string `validate:"required,uuid4"`
	ClusterID string `validate:"required,uuid4"`
	Volume    int    `validate:"min=1"`
	Reporter  string `validate:"required,min=1,max=50"`
	Page      string `validate:"required,min=1,max=20"`
}

// Validate for validating ReporterCitation struct
func (r *ReporterCitation) Validate() error {
	return validateStruct(r)
}
