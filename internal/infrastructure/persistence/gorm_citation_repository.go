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

type gormCitationRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormCitationRepository creates a new GORM-based CitationRepository
// implementation
func NewGormCitationRepository(db *gorm.DB, logger logger.Logger) (opinions.CitationRepository, error) {
	return &gormCitationRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormCitationRepository) Create(ctx context.Context, citation *opinions.Citation) error {
	if err := citation.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.CitationModel{}
	model.FromDomain(citation)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create citation: %w", err)
	}

	r.logger.Info("Created citation with id ", citation.ID)
	return nil
}

func (r *gormCitationRepository) List(ctx context.Context, query *opinions.CitationQuery) ([]*opinions.Citation, int64, error) {
	if err := query.Validate(); err != nil {
		return nil, 0, fmt.Errorf("invalid query parameters: %w", err)
	}

	dbQuery := r.db.WithContext(ctx).Model(&models.CitationModel{})

	if query.CitingOpinionID != "" {
		dbQuery = dbQuery.Where("citing_opinion_id = ?", query.CitingOpinionID)
	}
	if query.CitedOpinionID != "" {
		dbQuery = dbQuery.Where("cited_opinion_id = ?", query.CitedOpinionID)
	}
	if query.DepthGte != nil {
		dbQuery = dbQuery.Where("depth >= ?", *query.DepthGte)
	}

	var total int64
	if err := dbQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count citations: %w", err)
	}

	dbQuery = applyPagination(dbQuery, query.Limit, query.Offset)

	var modelList []*models.CitationModel
	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch citations: %w", err)
	}

	domainList := make([]*opinions.Citation, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, total, nil
}

func (r *gormCitationRepository) GetByID(ctx context.Context, citationID string) (*opinions.Citation, error) {
	var model models.CitationModel
	if err := r.db.WithContext(ctx).Where("id = ?", citationID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("citation with ID %s not found: %w", citationID, err)
		}
		return nil, fmt.Errorf("failed to fetch citation: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormCitationRepository) UpdateByID(ctx context.Context, citation *opinions.Citation) error {
	if err := citation.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.CitationModel{}
	model.FromDomain(citation)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update citation: %w", err)
	}

	r.logger.Info("Updated citation with id ", citation.ID)
	return nil
}

func (r *gormCitationRepository) DeleteByID(ctx context.Context, citationID string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", citationID).Delete(&models.CitationModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete citation: %w", err)
	}

	r.logger.Info("Deleted citation with id ", citationID)
	return nil
}
