package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/SharpenYourSword/courtlistener/internal/domain/courts"
	"github.com/SharpenYourSword/courtlistener/internal/infrastructure/persistence/models"
	"github.com/SharpenYourSword/courtlistener/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormOriginatingCourtInfoRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormOriginatingCourtInfoRepository creates a new GORM-based
// OriginatingCourtInfoRepository implementation
func NewGormOriginatingCourtInfoRepository(db *gorm.DB, logger logger.Logger) (courts.OriginatingCourtInfoRepository, error) {
	return &gormOriginatingCourtInfoRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormOriginatingCourtInfoRepository) Create(ctx context.Context, info *courts.OriginatingCourtInfo) error {
	if err := info.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.OriginatingCourtInfoModel{}
	model.FromDomain(info)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create originating court info: %w", err)
	}

	r.logger.Info("Created originating court info with id ", info.ID)
	return nil
}

func (r *gormOriginatingCourtInfoRepository) List(ctx context.Context, query *courts.OriginatingCourtInfoQuery) ([]*courts.OriginatingCourtInfo, int64, error) {
	if err := query.Validate(); err != nil {
		return nil, 0, fmt.Errorf("invalid query parameters: %w", err)
	}

	dbQuery := r.db.WithContext(ctx).Model(&models.OriginatingCourtInfoModel{})

	if query.DocketNumber != "" {
		dbQuery = dbQuery.Where("docket_number = ?", query.DocketNumber)
	}

	var total int64
	if err := dbQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count originating court info: %w", err)
	}

	dbQuery = applyOrdering(dbQuery, query.SortBy, query.SortOrder)
	dbQuery = applyPagination(dbQuery, query.Limit, query.Offset)

	var modelList []*models.OriginatingCourtInfoModel
	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch originating court info: %w", err)
	}

	domainList := make([]*courts.OriginatingCourtInfo, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, total, nil
}

func (r *gormOriginatingCourtInfoRepository) GetByID(ctx context.Context, id string) (*courts.OriginatingCourtInfo, error) {
	var model models.OriginatingCourtInfoModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("originating court info with ID %s not found: %w", id, err)
		}
		return nil, fmt.Errorf("failed to fetch originating court info: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormOriginatingCourtInfoRepository) UpdateByID(ctx context.Context, info *courts.OriginatingCourtInfo) error {
	if err := info.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.OriginatingCourtInfoModel{}
	model.FromDomain(info)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update originating court info: %w", err)
	}

	r.logger.Info("Updated originating court info with id ", info.ID)
	return nil
}

func (r *gormOriginatingCourtInfoRepository) DeleteByID(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.OriginatingCourtInfoModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete originating court info: %w", err)
	}

	r.logger.Info("Deleted originating court info with id ", id)
	return nil
}
