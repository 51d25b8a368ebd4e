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

type gormCourtRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormCourtRepository creates a new GORM-based CourtRepository implementation
func NewGormCourtRepository(db *gorm.DB, logger logger.Logger) (courts.CourtRepository, error) {
	return &gormCourtRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormCourtRepository) Create(ctx context.Context, court *courts.Court) error {
	if err := court.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.CourtModel{}
	model.FromDomain(court)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create court: %w", err)
	}

	r.logger.Info("Created court with id ", court.ID)
	return nil
}

func (r *gormCourtRepository) List(ctx context.Context, query *courts.CourtQuery) ([]*courts.Court, int64, error) {
	if err := query.Validate(); err != nil {
		return nil, 0, fmt.Errorf("invalid query parameters: %w", err)
	}

	// The testing jurisdiction never leaves the database layer.
	dbQuery := r.db.WithContext(ctx).Model(&models.CourtModel{}).
		Where("jurisdiction <> ?", courts.JurisdictionTesting)

	if query.Jurisdiction != "" {
		dbQuery = dbQuery.Where("jurisdiction = ?", query.Jurisdiction)
	}
	if query.InUse != nil {
		dbQuery = dbQuery.Where("in_use = ?", *query.InUse)
	}
	if query.FullName != "" {
		dbQuery = dbQuery.Where("full_name LIKE ?", "%"+query.FullName+"%")
	}

	var total int64
	if err := dbQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count courts: %w", err)
	}

	dbQuery = applyOrdering(dbQuery, query.SortBy, query.SortOrder)
	dbQuery = applyPagination(dbQuery, query.Limit, query.Offset)

	var modelList []*models.CourtModel
	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch courts: %w", err)
	}

	domainList := make([]*courts.Court, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, total, nil
}

func (r *gormCourtRepository) GetByID(ctx context.Context, courtID string) (*courts.Court, error) {
	var model models.CourtModel
	err := r.db.WithContext(ctx).
		Where("id = ? AND jurisdiction <> ?", courtID, courts.JurisdictionTesting).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("court with ID %s not found: %w", courtID, err)
		}
		return nil, fmt.Errorf("failed to fetch court: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormCourtRepository) UpdateByID(ctx context.Context, court *courts.Court) error {
	if err := court.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.CourtModel{}
	model.FromDomain(court)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update court: %w", err)
	}

	r.logger.Info("Updated court with id ", court.ID)
	return nil
}

func (r *gormCourtRepository) DeleteByID(ctx context.Context, courtID string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", courtID).Delete(&models.CourtModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete court: %w", err)
	}

	r.logger.Info("Deleted court with id ", courtID)
	return nil
}
