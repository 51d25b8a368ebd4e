package models

import (
	"time"

	"github.com/SharpenYourSword/courtlistener/internal/domain/dockets"
)

// TagModel is the GORM database model for tags (infrastructure concern)
type TagModel struct {
	ID           string    `gorm:"primaryKey;type:uuid"`
	Name         string    `gorm:"not null;uniqueIndex;type:varchar(50)"`
	DateCreated  time.Time `gorm:"not null"`
	DateModified time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (TagModel) TableName() string {
	return "tags"
}

// ToDomain converts GORM model to domain entity
func (m *TagModel) ToDomain() *dockets.Tag {
	return &dockets.Tag{
		ID:           m.ID,
		Name:         m.Name,
		DateCreated:  m.DateCreated,
		DateModified: m.DateModified,
	}
}

// FromDomain converts domain entity to GORM model
func (m *TagModel) FromDomain(t *dockets.Tag) {
	m.ID = t.ID
	m.Name = t.Name
	m.DateCreated = t.DateCreated
	m.DateModified = t.DateModified
}
