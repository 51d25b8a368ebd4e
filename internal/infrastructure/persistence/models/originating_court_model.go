package models

import (
	"time"

	"github.com/SharpenYourSword/courtlistener/internal/domain/courts"
)

// OriginatingCourtInfoModel is the GORM database model for originating
// court information (infrastructure concern)
type OriginatingCourtInfoModel struct {
	ID               string `gorm:"primaryKey;type:uuid"`
	DocketNumber     string `gorm:"type:varchar(100);index"`
	AssignedToStr    string `gorm:"type:varchar(200)"`
	OrderingJudgeStr string `gorm:"type:varchar(200)"`
	CourtReporter    string `gorm:"type:varchar(200)"`
	DateDisposed     *time.Time
	DateFiled        *time.Time
	DateJudgment     *time.Time
	DateReceived     *time.Time
	DateCreated      time.Time `gorm:"not null;index"`
	DateModified     time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (OriginatingCourtInfoModel) TableName() string {
	return "originating_court_information"
}

// ToDomain converts GORM model to domain entity
func (m *OriginatingCourtInfoModel) ToDomain() *courts.OriginatingCourtInfo {
	return &courts.OriginatingCourtInfo{
		ID:               m.ID,
		DocketNumber:     m.DocketNumber,
		AssignedToStr:    m.AssignedToStr,
		OrderingJudgeStr: m.OrderingJudgeStr,
		CourtReporter:    m.CourtReporter,
		DateDisposed:     m.DateDisposed,
		DateFiled:        m.DateFiled,
		DateJudgment:     m.DateJudgment,
		DateReceived:     m.DateReceived,
		DateCreated:      m.DateCreated,
		DateModified:     m.DateModified,
	}
}

// FromDomain converts domain entity to GORM model
func (m *OriginatingCourtInfoModel) FromDomain(o *courts.OriginatingCourtInfo) {
	m.ID = o.ID
	m.DocketNumber = o.DocketNumber
	m.AssignedToStr = o.AssignedToStr
	m.OrderingJudgeStr = o.OrderingJudgeStr
	m.CourtReporter = o.CourtReporter
	m.DateDisposed = o.DateDisposed
	m.DateFiled = o.DateFiled
	m.DateJudgment = o.DateJudgment
	m.DateReceived = o.DateReceived
	m.DateCreated = o.DateCreated
	m.DateModified = o.DateModified
}
