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

type gormDocketRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormDocketRepository creates a new GORM-based DocketRepository implementation
func NewGormDocketRepository(db *gorm.DB, logger logger.Logger) (dockets.DocketRepository, error) {
	return &gormDocketRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormDocketRepository) Create(ctx context.Context, docket *dockets.Docket) error {
	if err := docket.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.DocketModel{}
	model.FromDomain(docket)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create docket: %w", err)
	}

	r.logger.Info("Created docket with id ", docket.ID)
	return nil
}

func (r *gormDocketRepository) List(ctx context.Context, query *dockets.DocketQuery) ([]*dockets.Docket, int64, error) {
	if err := query.Validate(); err != nil {
		return nil, 0, fmt.Errorf("invalid query parameters: %w", err)
	}

	dbQuery := r.db.WithContext(ctx).Model(&models.DocketModel{})

	if query.CourtID != "" {
		dbQuery = dbQuery.Where("court_id = ?", query.CourtID)
	}
	if query.CaseName != "" {
		dbQuery = dbQuery.Where("case_name LIKE ?", "%"+query.CaseName+"%")
	}
	if query.DocketNumber != "" {
		dbQuery = dbQuery.Where("docket_number = ?", query.DocketNumber)
	}
	if query.Blocked != nil {
		dbQuery = dbQuery.Where("blocked = ?", *query.Blocked)
	}
	if query.FiledAfter != nil {
		dbQuery = dbQuery.Where("date_filed >= ?", *query.FiledAfter)
	}
	if query.FiledBefore != nil {
		dbQuery = dbQuery.Where("date_filed <= ?", *query.FiledBefore)
	}

	var total int64
	if err := dbQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count dockets: %w", err)
	}

	dbQuery = applyOrdering(dbQuery, query.SortBy, query.SortOrder)
	dbQuery = applyPagination(dbQuery, query.Limit, query.Offset)

	var modelList []*models.DocketModel
	err := dbQuery.
		Preload("Court").
		Preload("OriginatingCourtInfo").
		Preload("Clusters").
		Preload("Tags").
		Find(&modelList).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch dockets: %w", err)
	}

	domainList := make([]*dockets.Docket, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, total, nil
}

func (r *gormDocketRepository) GetByID(ctx context.Context, docketID string) (*dockets.Docket, error) {
	var model models.DocketModel
	err := r.db.WithContext(ctx).
		Preload("Court").
		Preload("OriginatingCourtInfo").
		Preload("Clusters").
		Preload("Tags").
		Where("id = ?", docketID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("docket with ID %s not found: %w", docketID, err)
		}
		return nil, fmt.Errorf("failed to fetch docket: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormDocketRepository) UpdateByID(ctx context.Context, docket *dockets.Docket) error {
	if err := docket.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.DocketModel{}
	model.FromDomain(docket)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update docket: %w", err)
	}

	r.logger.Info("Updated docket with id ", docket.ID)
	return nil
}

func (r *gormDocketRepository) DeleteByID(ctx context.Context, docketID string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", docketID).Delete(&models.DocketModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete docket: %w", err)
	}

	r.logger.Info("Deleted docket with id ", docketID)
	return nil
}
