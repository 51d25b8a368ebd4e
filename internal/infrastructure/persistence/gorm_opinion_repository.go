package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/SharpenYourSword/courtlistener/internal/domain/opinions"
	"github.com/SharpenYourSword/courtlistener/internal/infrastructure/persistence/models"
	"github.com/SharpenYourSword/courtlistener/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormOpinionRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormOpinionRepository creates a new GORM-based OpinionRepository
// implementation
func NewGormOpinionRepository(db *gorm.DB, logger logger.Logger) (opinions.OpinionRepository, error) {
	return &gormOpinionRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormOpinionRepository) Create(ctx context.Context, opinion *opinions.Opinion) error {
	if err := opinion.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.OpinionModel{}
	model.FromDomain(opinion)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create opinion: %w", err)
	}

	r.logger.Info("Created opinion with id ", opinion.ID)
	return nil
}

func (r *gormOpinionRepository) List(ctx context.Context, query *opinions.OpinionQuery) ([]*opinions.Opinion, int64, error) {
	if err := query.Validate(); err != nil {
		return nil, 0, fmt.Errorf("invalid query parameters: %w", err)
	}

	dbQuery := r.db.WithContext(ctx).Model(&models.OpinionModel{})

	if query.ClusterID != "" {
		dbQuery = dbQuery.Where("cluster_id = ?", query.ClusterID)
	}
	if query.Type != "" {
		dbQuery = dbQuery.Where("type = ?", query.Type)
	}
	if query.AuthorStr != "" {
		dbQuery = dbQuery.Where("author_str LIKE ?", "%"+query.AuthorStr+"%")
	}
	if query.ExtractedByOCR != nil {
		dbQuery = dbQuery.Where("extracted_by_ocr = ?", *query.ExtractedByOCR)
	}
	if query.PerCuriam != nil {
		dbQuery = dbQuery.Where("per_curiam = ?", *query.PerCuriam)
	}

	var total int64
	if err := dbQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count opinions: %w", err)
	}

	dbQuery = applyOrdering(dbQuery, query.SortBy, query.SortOrder)
	dbQuery = applyPagination(dbQuery, query.Limit, query.Offset)

	var modelList []*models.OpinionModel
	err := dbQuery.
		Preload("Cluster").
		Preload("OpinionsCited").
		Find(&modelList).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch opinions: %w", err)
	}

	domainList := make([]*opinions.Opinion, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, total, nil
}

func (r *gormOpinionRepository) GetByID(ctx context.Context, opinionID string) (*opinions.Opinion, error) {
	var model models.OpinionModel
	err := r.db.WithContext(ctx).
		Preload("Cluster").
		Preload("OpinionsCited").
		Where("id = ?", opinionID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("opinion with ID %s not found: %w", opinionID, err)
		}
		return nil, fmt.Errorf("failed to fetch opinion: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormOpinionRepository) UpdateByID(ctx context.Context, opinion *opinions.Opinion) error {
	if err := opinion.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.OpinionModel{}
	model.FromDomain(opinion)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update opinion: %w", err)
	}

	r.logger.Info("Updated opinion with id ", opinion.ID)
	return nil
}

func (r *gormOpinionRepository) DeleteByID(ctx context.Context, opinionID string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", opinionID).Delete(&models.OpinionModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete opinion: %w", err)
	}

	r.logger.Info("Deleted opinion with id ", opinionID)
	return nil
}
