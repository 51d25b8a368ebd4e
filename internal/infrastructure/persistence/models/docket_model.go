package models

import (
	"time"

	"github.com/SharpenYourSword/courtlistener/internal/domain/dockets"
)

// DocketModel is the GORM database model for dockets (infrastructure concern)
type DocketModel struct {
	ID                     string                     `gorm:"primaryKey;type:uuid"`
	CourtID                string                     `gorm:"not null;index;type:varchar(15)"`
	Court                  *CourtModel                `gorm:"foreignKey:CourtID"`
	OriginatingCourtInfoID *string                    `gorm:"type:uuid;index"`
	OriginatingCourtInfo   *OriginatingCourtInfoModel `gorm:"foreignKey:OriginatingCourtInfoID"`
	CaseName               string                     `gorm:"not null;type:varchar(500)"`
	CaseNameShort          string                     `gorm:"type:varchar(200)"`
	DocketNumber           string                     `gorm:"type:varchar(100);index"`
	AssignedToStr          string                     `gorm:"type:varchar(200)"`
	ReferredToStr          string                     `gorm:"type:varchar(200)"`
	Source                 string                     `gorm:"type:varchar(50)"`
	Blocked                bool                       `gorm:"not null"`
	DateFiled              *time.Time                 `gorm:"index"`
	DateArgued             *time.Time
	DateTerminated         *time.Time
	DateLastFiling         *time.Time
	DateBlocked            *time.Time
	DateCreated            time.Time `gorm:"not null;index"`
	DateModified           time.Time `gorm:"not null;index"`

	Clusters []OpinionClusterModel `gorm:"foreignKey:DocketID"`
	Tags     []TagModel            `gorm:"many2many:docket_tags"`
}

// TableName specifies the table name for GORM
func (DocketModel) TableName() string {
	return "dockets"
}

// ToDomain converts GORM model to domain entity
func (m *DocketModel) ToDomain() *dockets.Docket {
	docket := &dockets.Docket{
		ID:                     m.ID,
		CourtID:                m.CourtID,
		OriginatingCourtInfoID: m.OriginatingCourtInfoID,
		CaseName:               m.CaseName,
		CaseNameShort:          m.CaseNameShort,
		DocketNumber:           m.DocketNumber,
		AssignedToStr:          m.AssignedToStr,
		ReferredToStr:          m.ReferredToStr,
		Source:                 m.Source,
		Blocked:                m.Blocked,
		DateFiled:              m.DateFiled,
		DateArgued:             m.DateArgued,
		DateTerminated:         m.DateTerminated,
		DateLastFiling:         m.DateLastFiling,
		DateBlocked:            m.DateBlocked,
		DateCreated:            m.DateCreated,
		DateModified:           m.DateModified,
	}

	if m.Court != nil {
		docket.Court = m.Court.ToDomain()
	}
	if m.OriginatingCourtInfo != nil {
		docket.OriginatingCourtInfo = m.OriginatingCourtInfo.ToDomain()
	}
	for i := range m.Clusters {
		docket.Clusters = append(docket.Clusters, m.Clusters[i].ToDomain())
	}
	for i := range m.Tags {
		docket.Tags = append(docket.Tags, m.Tags[i].ToDomain())
	}

	return docket
}

// FromDomain converts domain entity to GORM model. Relations are persisted
// through their own repositories; only foreign keys are copied here.
func (m *DocketModel) FromDomain(d *dockets.Docket) {
	m.ID = d.ID
	m.CourtID = d.CourtID
	m.OriginatingCourtInfoID = d.OriginatingCourtInfoID
	m.CaseName = d.CaseName
	m.CaseNameShort = d.CaseNameShort
	m.DocketNumber = d.DocketNumber
	m.AssignedToStr = d.AssignedToStr
	m.ReferredToStr = d.ReferredToStr
	m.Source = d.Source
	m.Blocked = d.Blocked
	m.DateFiled = d.DateFiled
	m.DateArgued = d.DateArgued
	m.DateTerminated = d.DateTerminated
	m.DateLastFiling = d.DateLastFiling
	m.DateBlocked = d.DateBlocked
	m.DateCreated = d.DateCreated
	m.DateModified = d.DateModified
}
