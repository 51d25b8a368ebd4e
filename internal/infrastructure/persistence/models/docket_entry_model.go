package models

import (
	"time"

	"github.com/SharpenYourSword/courtlistener/internal/domain/dockets"
)

// DocketEntryModel is the GORM database model for docket entries
// (infrastructure concern)
type DocketEntryModel struct {
	ID           string       `gorm:"primaryKey;type:uuid"`
	DocketID     string       `gorm:"not null;index;type:uuid"`
	Docket       *DocketModel `gorm:"foreignKey:DocketID"`
	EntryNumber  int64        `gorm:"not null;index"`
	Description  string       `gorm:"type:text"`
	DateFiled    *time.Time   `gorm:"index"`
	DateCreated  time.Time    `gorm:"not null;index"`
	DateModified time.Time    `gorm:"not null;index"`

	Documents []CaseDocumentModel `gorm:"foreignKey:DocketEntryID"`
	Tags      []TagModel          `gorm:"many2many:docket_entry_tags"`
}

// TableName specifies the table name for GORM
func (DocketEntryModel) TableName() string {
	return "docket_entries"
}

// ToDomain converts GORM model to domain entity
func (m *DocketEntryModel) ToDomain() *dockets.DocketEntry {
	entry := &dockets.DocketEntry{
		ID:           m.ID,
		DocketID:     m.DocketID,
		EntryNumber:  m.EntryNumber,
		Description:  m.Description,
		DateFiled:    m.DateFiled,
		DateCreated:  m.DateCreated,
		DateModified: m.DateModified,
	}

	if m.Docket != nil {
		entry.Docket = m.Docket.ToDomain()
	}
	for i := range m.Documents {
		entry.Documents = append(entry.Documents, m.Documents[i].ToDomain())
	}
	for i := range m.Tags {
		entry.Tags = append(entry.Tags, m.Tags[i].ToDomain())
	}

	return entry
}

// FromDomain converts domain entity to GORM model
func (m *DocketEntryModel) FromDomain(e *dockets.DocketEntry) {
	m.ID = e.ID
	m.DocketID = e.DocketID
	m.EntryNumber = e.EntryNumber
	m.Description = e.Description
	m.DateFiled = e.DateFiled
	m.DateCreated = e.DateCreated
	m.DateModified = e.DateModified
}
