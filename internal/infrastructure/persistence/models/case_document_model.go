package models

import (
	"time"

	"github.com/SharpenYourSword/courtlistener/internal/domain/dockets"
)

// CaseDocumentModel is the GORM database model for case documents
// (infrastructure concern)
type CaseDocumentModel struct {
	ID               string            `gorm:"primaryKey;type:uuid"`
	DocketEntryID    string            `gorm:"not null;index;type:uuid"`
	DocketEntry      *DocketEntryModel `gorm:"foreignKey:DocketEntryID"`
	DocumentNumber   string            `gorm:"type:varchar(50);index"`
	AttachmentNumber *int
	DocumentType     string `gorm:"not null;type:varchar(20)"`
	Description      string `gorm:"type:text"`
	PageCount        *int
	FilePath         string `gorm:"type:varchar(500)"`
	SHA1             string `gorm:"type:varchar(40)"`
	IsAvailable      bool   `gorm:"not null;index"`
	DateUpload       *time.Time
	DateCreated      time.Time `gorm:"not null;index"`
	DateModified     time.Time `gorm:"not null;index"`

	Tags []TagModel `gorm:"many2many:case_document_tags"`
}

// TableName specifies the table name for GORM
func (CaseDocumentModel) TableName() string {
	return "case_documents"
}

// ToDomain converts GORM model to domain entity
func (m *CaseDocumentModel) ToDomain() *dockets.CaseDocument {
	doc := &dockets.CaseDocument{
		ID:               m.ID,
		DocketEntryID:    m.DocketEntryID,
		DocumentNumber:   m.DocumentNumber,
		AttachmentNumber: m.AttachmentNumber,
		DocumentType:     m.DocumentType,
		Description:      m.Description,
		PageCount:        m.PageCount,
		FilePath:         m.FilePath,
		SHA1:             m.SHA1,
		IsAvailable:      m.IsAvailable,
		DateUpload:       m.DateUpload,
		DateCreated:      m.DateCreated,
		DateModified:     m.DateModified,
	}

	if m.DocketEntry != nil {
		doc.DocketEntry = m.DocketEntry.ToDomain()
	}
	for i := range m.Tags {
		doc.Tags = append(doc.Tags, m.Tags[i].ToDomain())
	}

	return doc
}

// FromDomain converts domain entity to GORM model
func (m *CaseDocumentModel) FromDomain(d *dockets.CaseDocument) {
	m.ID = d.ID
	m.DocketEntryID = d.DocketEntryID
	m.DocumentNumber = d.DocumentNumber
	m.AttachmentNumber = d.AttachmentNumber
	m.DocumentType = d.DocumentType
	m.Description = d.Description
	m.PageCount = d.PageCount
	m.FilePath = d.FilePath
	m.SHA1 = d.SHA1
	m.IsAvailable = d.IsAvailable
	m.DateUpload = d.DateUpload
	m.DateCreated = d.DateCreated
	m.DateModified = d.DateModified
}
