package models

import (
	"time"

	"github.com/SharpenYourSword/courtlistener/internal/domain/courts"
)

// CourtModel is the GORM database model for courts (infrastructure concern)
type CourtModel struct {
	ID             string  `gorm:"primaryKey;type:varchar(15)"`
	FullName       string  `gorm:"not null;type:varchar(200)"`
	ShortName      string  `gorm:"not null;type:varchar(100)"`
	CitationString string  `gorm:"type:varchar(100)"`
	Jurisdiction   string  `gorm:"not null;index;type:varchar(3)"`
	Position       float64 `gorm:"not null;index"`
	URL            string  `gorm:"type:varchar(500)"`
	InUse          bool    `gorm:"not null"`
	StartDate      *time.Time
	EndDate        *time.Time
	DateModified   time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (CourtModel) TableName() string {
	return "courts"
}

// ToDomain converts GORM model to domain entity
func (m *CourtModel) ToDomain() *courts.Court {
	return &courts.Court{
		ID:             m.ID,
		FullName:       m.FullName,
		ShortName:      m.ShortName,
		CitationString: m.CitationString,
		Jurisdiction:   m.Jurisdiction,
		Position:       m.Position,
		URL:            m.URL,
		InUse:          m.InUse,
		StartDate:      m.StartDate,
		EndDate:        m.EndDate,
		DateModified:   m.DateModified,
	}
}

// FromDomain converts domain entity to GORM model
func (m *CourtModel) FromDomain(c *courts.Court) {
	m.ID = c.ID
	m.FullName = c.FullName
	m.ShortName = c.ShortName
	m.CitationString = c.CitationString
	m.Jurisdiction = c.Jurisdiction
	m.Position = c.Position
	m.URL = c.URL
	m.InUse = c.InUse
	m.StartDate = c.StartDate
	m.EndDate = c.EndDate
	m.DateModified = c.DateModified
}
