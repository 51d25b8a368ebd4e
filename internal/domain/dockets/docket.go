package dockets

import (
	"time"

	"github.com/SharpenYourSword/courtlistener/internal/domain/courts"
	"github.com/SharpenYourSword/courtlistener/internal/domain/opinions"
)

// Docket entity. A docket belongs to a court and aggregates entries,
// opinion clusters and tags for one case.
type Docket struct {
	ID                     string `validate:"required,uuid4"`
	CourtID                string `validate:"required,min=2,max=15"`
	Court                  *courts.Court
	OriginatingCourtInfoID *string `validate:"omitempty,uuid4"`
	OriginatingCourtInfo   *courts.OriginatingCourtInfo
	CaseName               string `validate:"required,min=1,max=500"`
	CaseNameShort          string `validate:"max=200"`
	DocketNumber           string `validate:"max=100"`
	AssignedToStr          string `validate:"max=200"`
	ReferredToStr          string `validate:"max=200"`
	Source                 string `validate:"max=50"`
	Blocked                bool
	DateFiled              *time.Time
	DateArgued             *time.Time
	DateTerminated         *time.Time
	DateLastFiling         *time.Time
	DateBlocked            *time.Time
	DateCreated            time.Time `validate:"required"`
	DateModified           time.Time `validate:"required"`

	// Prefetched relations
	Clusters []*opinions.OpinionCluster
	Tags     []*Tag
}

// Validate for validating Docket struct
func (d *Docket) Validate() error {
	return validateStruct(d)
}
