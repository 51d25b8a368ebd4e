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

type gormOpinionClusterRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormOpinionClusterRepository creates a new GORM-based
// OpinionClusterRepository implementation
func NewGormOpinionClusterRepository(db *gorm.DB, logger logger.Logger) (opinions.OpinionClusterRepository, error) {
	return &gormOpinionClusterRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormOpinionClusterRepository) Create(ctx context.Context, cluster *opinions.OpinionCluster) error {
	if err := cluster.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.OpinionClusterModel{}
	model.FromDomain(cluster)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create opinion cluster: %w", err)
	}

	r.logger.Info("Created opinion cluster with id ", cluster.ID)
	return nil
}

func (r *gormOpinionClusterRepository) List(ctx context.Context, query *opinions.OpinionClusterQuery) ([]*opinions.OpinionCluster, int64, error) {
	if err := query.Validate(); err != nil {
		return nil, 0, fmt.Errorf("invalid query parameters: %w", err)
	}

	dbQuery := r.db.WithContext(ctx).Model(&models.OpinionClusterModel{})

	if query.DocketID != "" {
		dbQuery = dbQuery.Where("docket_id = ?", query.DocketID)
	}
	if query.CaseName != "" {
		dbQuery = dbQuery.Where("case_name LIKE ?", "%"+query.CaseName+"%")
	}
	if query.PrecedentialStatus != "" {
		dbQuery = dbQuery.Where("precedential_status = ?", query.PrecedentialStatus)
	}
	if query.CitationCountGt != nil {
		dbQuery = dbQuery.Where("citation_count > ?", *query.CitationCountGt)
	}
	if query.CitationCountLt != nil {
		dbQuery = dbQuery.Where("citation_count < ?", *query.CitationCountLt)
	}
	if query.FiledAfter != nil {
		dbQuery = dbQuery.Where("date_filed >= ?", *query.FiledAfter)
	}
	if query.FiledBefore != nil {
		dbQuery = dbQuery.Where("date_filed <= ?", *query.FiledBefore)
	}
	if query.Blocked != nil {
		dbQuery = dbQuery.Where("blocked = ?", *query.Blocked)
	}

	var total int64
	if err := dbQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count opinion clusters: %w", err)
	}

	dbQuery = applyOrdering(dbQuery, query.SortBy, query.SortOrder)
	dbQuery = applyPagination(dbQuery, query.Limit, query.Offset)

	var modelList []*models.OpinionClusterModel
	err := dbQuery.
		Preload("SubOpinions").
		Preload("Citations").
		Find(&modelList).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch opinion clusters: %w", err)
	}

	domainList := make([]*opinions.OpinionCluster, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, total, nil
}

func (r *gormOpinionClusterRepository) GetByID(ctx context.Context, clusterID string) (*opinions.OpinionCluster, error) {
	var model models.OpinionClusterModel
	err := r.db.WithContext(ctx).
		Preload("SubOpinions").
		Preload("Citations").
		Where("id = ?", clusterID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("opinion cluster with ID %s not found: %w", clusterID, err)
		}
		return nil, fmt.Errorf("failed to fetch opinion cluster: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormOpinionClusterRepository) UpdateByID(ctx context.Context, cluster *opinions.OpinionCluster) error {
	if err := cluster.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.OpinionClusterModel{}
	model.FromDomain(cluster)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update opinion cluster: %w", err)
	}

	r.logger.Info("Updated opinion cluster with id ", cluster.ID)
	return nil
}

func (r *gormOpinionClusterRepository) DeleteByID(ctx context.Context, clusterID string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", clusterID).Delete(&models.OpinionClusterModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete opinion cluster: %w", err)
	}

	r.logger.Info("Deleted opinion cluster with id ", clusterID)
	return nil
}
