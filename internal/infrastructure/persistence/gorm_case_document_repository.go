package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/SharpenYourSword/courtlistener/internal/domain/dockets"
	"github.com/SharpenYourSword/courtlistener/internal/infrastructure/persistence/models"
	"github.com/SharpenYourSword/courtlistener/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormCaseDocumentRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormCaseDocumentRepository creates a new GORM-based
// CaseDocumentRepository implementation
func NewGormCaseDocumentRepository(db *gorm.DB, logger logger.Logger) (dockets.CaseDocumentRepository, error) {
	return &gormCaseDocumentRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormCaseDocumentRepository) Create(ctx context.Context, document *dockets.CaseDocument) error {
	if err := document.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.CaseDocumentModel{}
	model.FromDomain(document)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create case document: %w", err)
	}

	r.logger.Info("Created case document with id ", document.ID)
	return nil
}

func (r *gormCaseDocumentRepository) List(ctx context.Context, query *dockets.CaseDocumentQuery) ([]*dockets.CaseDocument, int64, error) {
	if err := query.Validate(); err != nil {
		return nil, 0, fmt.Errorf("invalid query parameters: %w", err)
	}

	dbQuery := r.db.WithContext(ctx).Model(&models.CaseDocumentModel{})

	if query.DocketEntryID != "" {
		dbQuery = dbQuery.Where("docket_entry_id = ?", query.DocketEntryID)
	}
	if query.DocumentNumber != "" {
		dbQuery = dbQuery.Where("document_number = ?", query.DocumentNumber)
	}
	if query.DocumentType != "" {
		dbQuery = dbQuery.Where("document_type = ?", query.DocumentType)
	}
	if query.IsAvailable != nil {
		dbQuery = dbQuery.Where("is_available = ?", *query.IsAvailable)
	}

	var total int64
	if err := dbQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count case documents: %w", err)
	}

	dbQuery = applyOrdering(dbQuery, query.SortBy, query.SortOrder)
	dbQuery = applyPagination(dbQuery, query.Limit, query.Offset)

	var modelList []*models.CaseDocumentModel
	err := dbQuery.
		Preload("DocketEntry").
		Preload("DocketEntry.Docket").
		Preload("Tags").
		Find(&modelList).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch case documents: %w", err)
	}

	domainList := make([]*dockets.CaseDocument, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, total, nil
}

func (r *gormCaseDocumentRepository) GetByID(ctx context.Context, documentID string) (*dockets.CaseDocument, error) {
	var model models.CaseDocumentModel
	err := r.db.WithContext(ctx).
		Preload("DocketEntry").
		Preload("DocketEntry.Docket").
		Preload("Tags").
		Where("id = ?", documentID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("case document with ID %s not found: %w", documentID, err)
		}
		return nil, fmt.Errorf("failed to fetch case document: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormCaseDocumentRepository) UpdateByID(ctx context.Context, document *dockets.CaseDocument) error {
	if err := document.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.CaseDocumentModel{}
	model.FromDomain(document)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update case document: %w", err)
	}

	r.logger.Info("Updated case document with id ", document.ID)
	return nil
}

func (r *gormCaseDocumentRepository) DeleteByID(ctx context.Context, documentID string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", documentID).Delete(&models.CaseDocumentModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete case document: %w", err)
	}

	r.logger.Info("Deleted case document with id ", documentID)
	return nil
}
