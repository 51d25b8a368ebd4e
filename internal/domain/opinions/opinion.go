package opinions

import "time"

// Opinion type constants.
const (
	TypeLead        = "lead"
	TypeConcurrence = "concurrence"
	TypeDissent     = "dissent"
	TypeAddendum    = "addendum"
)

// Opinion entity. One authored text within a cluster.
type Opinion struct {
	ID             string `validate:"required,uuid4"`
	ClusterID      string `validate:"required,uuid4"`
	Cluster        *OpinionCluster
	Type           string `validate:"required,oneof=lead concurrence dissent addendum"`
	AuthorStr      string `validate:"max=200"`
	JoinedByStr    string `validate:"max=500"`
	PerCuriam      bool
	ExtractedByOCR bool
	SHA1           string `validate:"omitempty,len=40"`
	PlainText      string
	HTML           string
	DateCreated    time.Time `validate:"required"`
	DateModified   time.Time `validate:"required"`

	// Prefetched relations
	OpinionsCited []*Citation
}

// Validate for validating Opinion struct
func (o *Opinion) Validate() error {
	return validateStruct(o)
}
