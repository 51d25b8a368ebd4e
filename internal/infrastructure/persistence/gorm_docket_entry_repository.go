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

type gormDocketEntryRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormDocketEntryRepository creates a new GORM-based DocketEntryRepository
// implementation
func NewGormDocketEntryRepository(db *gorm.DB, logger logger.Logger) (dockets.DocketEntryRepository, error) {
	return &gormDocketEntryRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormDocketEntryRepository) Create(ctx context.Context, entry *dockets.DocketEntry) error {
	if err := entry.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.DocketEntryModel{}
	model.FromDomain(entry)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create docket entry: %w", err)
	}

	r.logger.Info("Created docket entry with id ", entry.ID)
	return nil
}

func (r *gormDocketEntryRepository) List(ctx context.Context, query *dockets.DocketEntryQuery) ([]*dockets.DocketEntry, int64, error) {
	if err := query.Validate(); err != nil {
		return nil, 0, fmt.Errorf("invalid query parameters: %w", err)
	}

	dbQuery := r.db.WithContext(ctx).Model(&models.DocketEntryModel{})

	if query.DocketID != "" {
		dbQuery = dbQuery.Where("docket_id = ?", query.DocketID)
	}
	if query.EntryNumber != nil {
		dbQuery = dbQuery.Where("entry_number = ?", *query.EntryNumber)
	}
	if query.FiledAfter != nil {
		dbQuery = dbQuery.Where("date_filed >= ?", *query.FiledAfter)
	}
	if query.FiledBefore != nil {
		dbQuery = dbQuery.Where("date_filed <= ?", *query.FiledBefore)
	}

	var total int64
	if err := dbQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count docket entries: %w", err)
	}

	dbQuery = applyOrdering(dbQuery, query.SortBy, query.SortOrder)
	dbQuery = applyPagination(dbQuery, query.Limit, query.Offset)

	var modelList []*models.DocketEntryModel
	err := dbQuery.
		Preload("Docket").
		Preload("Documents").
		Preload("Documents.Tags").
		Preload("Tags").
		Find(&modelList).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch docket entries: %w", err)
	}

	domainList := make([]*dockets.DocketEntry, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, total, nil
}

func (r *gormDocketEntryRepository) GetByID(ctx context.Context, entryID string) (*dockets.DocketEntry, error) {
	var model models.DocketEntryModel
	err := r.db.WithContext(ctx).
		Preload("Docket").
		Preload("Documents").
		Preload("Documents.Tags").
		Preload("Tags").
		Where("id = ?", entryID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("docket entry with ID %s not found: %w", entryID, err)
		}
		return nil, fmt.Errorf("failed to fetch docket entry: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormDocketEntryRepository) UpdateByID(ctx context.Context, entry *dockets.DocketEntry) error {
	if err := entry.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.DocketEntryModel{}
	model.FromDomain(entry)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update docket entry: %w", err)
	}

	r.logger.Info("Updated docket entry with id ", entry.ID)
	return nil
}

func (r *gormDocketEntryRepository) DeleteByID(ctx context.Context, entryID string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", entryID).Delete(&models.DocketEntryModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete docket entry: %w", err)
	}

	r.logger.Info("Deleted docket entry with id ", entryID)
	return nil
}
