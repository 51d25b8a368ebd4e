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

type gormTagRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormTagRepository creates a new GORM-based TagRepository implementation
func NewGormTagRepository(db *gorm.DB, logger logger.Logger) (dockets.TagRepository, error) {
	return &gormTagRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormTagRepository) Create(ctx context.Context, tag *dockets.Tag) error {
	if err := tag.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.TagModel{}
	model.FromDomain(tag)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create tag: %w", err)
	}

	r.logger.Info("Created tag with id ", tag.ID)
	return nil
}

func (r *gormTagRepository) List(ctx context.Context, query *dockets.TagQuery) ([]*dockets.Tag, int64, error) {
	if err := query.Validate(); err != nil {
		return nil, 0, fmt.Errorf("invalid query parameters: %w", err)
	}

	dbQuery := r.db.WithContext(ctx).Model(&models.TagModel{})

	if query.Name != "" {
		dbQuery = dbQuery.Where("name = ?", query.Name)
	}

	var total int64
	if err := dbQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tags: %w", err)
	}

	dbQuery = applyOrdering(dbQuery, query.SortBy, query.SortOrder)
	dbQuery = applyPagination(dbQuery, query.Limit, query.Offset)

	var modelList []*models.TagModel
	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch tags: %w", err)
	}

	domainList := make([]*dockets.Tag, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, total, nil
}

func (r *gormTagRepository) GetByID(ctx context.Context, tagID string) (*dockets.Tag, error) {
	var model models.TagModel
	if err := r.db.WithContext(ctx).Where("id = ?", tagID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("tag with ID %s not found: %w", tagID, err)
		}
		return nil, fmt.Errorf("failed to fetch tag: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormTagRepository) UpdateByID(ctx context.Context, tag *dockets.Tag) error {
	if err := tag.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.TagModel{}
	model.FromDomain(tag)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update tag: %w", err)
	}

	r.logger.Info("Updated tag with id ", tag.ID)
	return nil
}

func (r *gormTagRepository) DeleteByID(ctx context.Context, tagID string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", tagID).Delete(&models.TagModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete tag: %w", err)
	}

	r.logger.Info("Deleted tag with id ", tagID)
	return nil
}
