package persistence

import (
	"github.com/SharpenYourSword/courtlistener/internal/infrastructure/persistence/models"

	"gorm.io/gorm"
)

// MigrateAll migrates every persistence model onto the given connection.
func MigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.CourtModel{},
		&models.OriginatingCourtInfoModel{},
		&models.DocketModel{},
		&models.DocketEntryModel{},
		&models.CaseDocumentModel{},
		&models.TagModel{},
		&models.OpinionClusterModel{},
		&models.ReporterCitationModel{},
		&models.OpinionModel{},
		&models.CitationModel{},
	)
}
