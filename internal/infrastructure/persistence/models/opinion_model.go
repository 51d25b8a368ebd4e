package models

import (
	"time"

	"github.com/SharpenYourSword/courtlistener/internal/domain/opinions"
)

// OpinionModel is the GORM database model for opinions (infrastructure
// concern)
type OpinionModel struct {
	ID             string               `gorm:"primaryKey;type:uuid"`
	ClusterID      string               `gorm:"not null;index;type:uuid"`
	Cluster        *OpinionClusterModel `gorm:"foreignKey:ClusterID"`
	Type           string               `gorm:"not null;type:varchar(20)"`
	AuthorStr      string               `gorm:"type:varchar(200);index"`
	JoinedByStr    string               `gorm:"type:varchar(500)"`
	PerCuriam      bool                 `gorm:"not null"`
	ExtractedByOCR bool                 `gorm:"not null"`
	SHA1           string               `gorm:"type:varchar(40)"`
	PlainText      string               `gorm:"type:text"`
	HTML           string               `gorm:"type:text"`
	DateCreated    time.Time            `gorm:"not null;index"`
	DateModified   time.Time            `gorm:"not null;index"`

	OpinionsCited []CitationModel `gorm:"foreignKey:CitingOpinionID"`
}

// TableName specifies the table name for GORM
func (OpinionModel) TableName() string {
	return "opinions"
}

// ToDomain converts GORM model to domain entity
func (m *OpinionModel) ToDomain() *opinions.Opinion {
	opinion := &opinions.Opinion{
		ID:             m.ID,
		ClusterID:      m.ClusterID,
		Type:           m.Type,
		AuthorStr:      m.AuthorStr,
		JoinedByStr:    m.JoinedByStr,
		PerCuriam:      m.PerCuriam,
		ExtractedByOCR: m.ExtractedByOCR,
		SHA1:           m.SHA1,
		PlainText:      m.PlainText,
		HTML:           m.HTML,
		DateCreated:    m.DateCreated,
		DateModified:   m.DateModified,
	}

	if m.Cluster != nil {
		opinion.Cluster = m.Cluster.ToDomain()
	}
	for i := range m.OpinionsCited {
		opinion.OpinionsCited = append(opinion.OpinionsCited, m.OpinionsCited[i].ToDomain())
	}

	return opinion
}

// FromDomain converts domain entity to GORM model
func (m *OpinionModel) FromDomain(o *opinions.Opinion) {
	m.ID = o.ID
	m.ClusterID = o.ClusterID
	m.Type = o.Type
	m.AuthorStr = o.AuthorStr
	m.JoinedByStr = o.JoinedByStr
	m.PerCuriam = o.PerCuriam
	m.ExtractedByOCR = o.ExtractedByOCR
	m.SHA1 = o.SHA1
	m.PlainText = o.PlainText
	m.HTML = o.HTML
	m.DateCreated = o.DateCreated
	m.DateModified = o.DateModified
}

// CitationModel is the GORM database model for citing/cited opinion edges
type CitationModel struct {
	ID              string `gorm:"primaryKey;type:uuid"`
	CitingOpinionID string `gorm:"not null;index:idx_citation_pair,unique;type:uuid"`
	CitedOpinionID  string `gorm:"not null;index:idx_citation_pair,unique;type:uuid"`
	Depth           int    `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (CitationModel) TableName() string {
	return "opinions_cited"
}

// ToDomain converts GORM model to domain entity
func (m *CitationModel) ToDomain() *opinions.Citation {
	return &opinions.Citation{
		ID:              m.ID,
		CitingOpinionID: m.CitingOpinionID,
		CitedOpinionID:  m.CitedOpinionID,
		Depth:           m.Depth,
	}
}

// FromDomain converts domain entity to GORM model
func (m *CitationModel) FromDomain(c *opinions.Citation) {
	m.ID = c.ID
	m.CitingOpinionID = c.CitingOpinionID
	m.CitedOpinionID = c.CitedOpinionID
	m.Depth = c.Depth
}
