package models

import (
	"time"

	"github.com/SharpenYourSword/courtlistener/internal/domain/opinions"
)

// OpinionClusterModel is the GORM database model for opinion clusters
// (infrastructure concern)
type OpinionClusterModel struct {
	ID                 string    `gorm:"primaryKey;type:uuid"`
	DocketID           string    `gorm:"not null;index;type:uuid"`
	CaseName           string    `gorm:"not null;type:varchar(500)"`
	CaseNameShort      string    `gorm:"type:varchar(200)"`
	JudgeNames         string    `gorm:"type:varchar(500)"`
	PrecedentialStatus string    `gorm:"not null;index;type:varchar(20)"`
	CitationCount      int64     `gorm:"not null;index"`
	Blocked            bool      `gorm:"not null"`
	DateFiled          time.Time `gorm:"not null;index"`
	DateBlocked        *time.Time
	DateCreated        time.Time `gorm:"not null;index"`
	DateModified       time.Time `gorm:"not null;index"`

	SubOpinions []OpinionModel          `gorm:"foreignKey:ClusterID"`
	Citations   []ReporterCitationModel `gorm:"foreignKey:ClusterID"`
}

// TableName specifies the table name for GORM
func (OpinionClusterModel) TableName() string {
	return "opinion_clusters"
}

// ToDomain converts GORM model to domain entity
func (m *OpinionClusterModel) ToDomain() *opinions.OpinionCluster {
	cluster := &opinions.OpinionCluster{
		ID:                 m.ID,
		DocketID:           m.DocketID,
		CaseName:           m.CaseName,
		CaseNameShort:      m.CaseNameShort,
		JudgeNames:         m.JudgeNames,
		PrecedentialStatus: m.PrecedentialStatus,
		CitationCount:      m.CitationCount,
		Blocked:            m.Blocked,
		DateFiled:          m.DateFiled,
		DateBlocked:        m.DateBlocked,
		DateCreated:        m.DateCreated,
		DateModified:       m.DateModified,
	}

	for i := range m.SubOpinions {
		cluster.SubOpinions = append(cluster.SubOpinions, m.SubOpinions[i].ToDomain())
	}
	for i := range m.Citations {
		cluster.Citations = append(cluster.Citations, m.Citations[i].ToDomain())
	}

	return cluster
}

// FromDomain converts domain entity to GORM model
func (m *OpinionClusterModel) FromDomain(c *opinions.OpinionCluster) {
	m.ID = c.ID
	m.DocketID = c.DocketID
	m.CaseName = c.CaseName
	m.CaseNameShort = c.CaseNameShort
	m.JudgeNames = c.JudgeNames
	m.PrecedentialStatus = c.PrecedentialStatus
	m.CitationCount = c.CitationCount
	m.Blocked = c.Blocked
	m.DateFiled = c.DateFiled
	m.DateBlocked = c.DateBlocked
	m.DateCreated = c.DateCreated
	m.DateModified = c.DateModified
}

// ReporterCitationModel is the GORM database model for parallel reporter
// citations on a cluster
type ReporterCitationModel struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	ClusterID string `gorm:"not null;index;type:uuid"`
	Volume    int    `gorm:"not null"`
	Reporter  string `gorm:"not null;type:varchar(50)"`
	Page      string `gorm:"not null;type:varchar(20)"`
}

// TableName specifies the table name for GORM
func (ReporterCitationModel) TableName() string {
	return "reporter_citations"
}

// ToDomain converts GORM model to domain entity
func (m *ReporterCitationModel) ToDomain() *opinions.ReporterCitation {
	return &opinions.ReporterCitation{
		ID:        m.ID,
		ClusterID: m.ClusterID,
		Volume:    m.Volume,
		Reporter:  m.Reporter,
		Page:      m.Page,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ReporterCitationModel) FromDomain(r *opinions.ReporterCitation) {
	m.ID = r.ID
	m.ClusterID = r.ClusterID
	m.Volume = r.Volume
	m.Reporter = r.Reporter
	m.Page = r.Page
}
