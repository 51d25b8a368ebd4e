package app

import (
	"context"
	"fmt"
	"time"

	"github.com/SharpenYourSword/courtlistener/internal/domain/opinions"
	"github.com/SharpenYourSword/courtlistener/internal/pkg/logger"

	"github.com/google/uuid"
)

// opinionClusterService implements the OpinionClusterService interface on top
// of the cluster repository
type opinionClusterService struct {
	clusterRepo opinions.OpinionClusterRepository
	logger      logger.Logger
}

// NewOpinionClusterService creates a new instance of OpinionClusterService
func NewOpinionClusterService(clusterRepo opinions.OpinionClusterRepository, logger logger.Logger) (opinions.OpinionClusterService, error) {
	return &opinionClusterService{
		clusterRepo: clusterRepo,
		logger:      logger,
	}, nil
}

// List retrieves clusters matching the query with sub-opinions and reporter
// citations loaded
func (s *opinionClusterService) List(ctx context.Context, query *opinions.OpinionClusterQuery) ([]*opinions.OpinionCluster, int64, error) {
	clusterList, total, err := s.clusterRepo.List(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("%w", err)
	}

	return clusterList, total, nil
}

// GetByID retrieves a cluster by ID with its relations loaded
func (s *opinionClusterService) GetByID(ctx context.Context, clusterID string) (*opinions.OpinionCluster, error) {
	cluster, err := s.clusterRepo.GetByID(ctx, clusterID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return cluster, nil
}

// Create persists a new cluster
func (s *opinionClusterService) Create(ctx context.Context, cluster *opinions.OpinionCluster) error {
	if cluster.ID == "" {
		cluster.ID = uuid.NewString()
	}
	now := time.Now()
	if cluster.DateCreated.IsZero() {
		cluster.DateCreated = now
	}
	if cluster.DateModified.IsZero() {
		cluster.DateModified = now
	}

	if err := s.clusterRepo.Create(ctx, cluster); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// UpdateByID updates an existing cluster
func (s *opinionClusterService) UpdateByID(ctx context.Context, cluster *opinions.OpinionCluster) error {
	cluster.DateModified = time.Now()

	if err := s.clusterRepo.UpdateByID(ctx, cluster); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// DeleteByID deletes a cluster by ID
func (s *opinionClusterService) DeleteByID(ctx context.Context, clusterID string) error {
	if err := s.clusterRepo.DeleteByID(ctx, clusterID); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// opinionService implements the OpinionService interface
type opinionService struct {
	opinionRepo opinions.OpinionRepository
	logger      logger.Logger
}

// NewOpinionService creates a new instance of OpinionService
func NewOpinionService(opinionRepo opinions.OpinionRepository, logger logger.Logger) (opinions.OpinionService, error) {
	return &opinionService{
		opinionRepo: opinionRepo,
		logger:      logger,
	}, nil
}

// List retrieves opinions matching the query with their relations loaded
func (s *opinionService) List(ctx context.Context, query *opinions.OpinionQuery) ([]*opinions.Opinion, int64, error) {
	opinionList, total, err := s.opinionRepo.List(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("%w", err)
	}

	return opinionList, total, nil
}

// GetByID retrieves an opinion by ID with its relations loaded
func (s *opinionService) GetByID(ctx context.Context, opinionID string) (*opinions.Opinion, error) {
	opinion, err := s.opinionRepo.GetByID(ctx, opinionID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return opinion, nil
}

// Create persists a new opinion
func (s *opinionService) Create(ctx context.Context, opinion *opinions.Opinion) error {
	if opinion.ID == "" {
		opinion.ID = uuid.NewString()
	}
	now := time.Now()
	if opinion.DateCreated.IsZero() {
		opinion.DateCreated = now
	}
	if opinion.DateModified.IsZero() {
		opinion.DateModified = now
	}

	if err := s.opinionRepo.Create(ctx, opinion); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// UpdateByID updates an existing opinion
func (s *opinionService) UpdateByID(ctx context.Context, opinion *opinions.Opinion) error {
	opinion.DateModified = time.Now()

	if err := s.opinionRepo.UpdateByID(ctx, opinion); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// DeleteByID deletes an opinion by ID
func (s *opinionService) DeleteByID(ctx context.Context, opinionID string) error {
	if err := s.opinionRepo.DeleteByID(ctx, opinionID); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// citationService implements the CitationService interface
type citationService struct {
	citationRepo opinions.CitationRepository
	logger       logger.Logger
}

// NewCitationService creates a new instance of CitationService
func NewCitationService(citationRepo opinions.CitationRepository, logger logger.Logger) (opinions.CitationService, error) {
	return &citationService{
		citationRepo: citationRepo,
		logger:       logger,
	}, nil
}

// List retrieves citation edges matching the query
func (s *citationService) List(ctx context.Context, query *opinions.CitationQuery) ([]*opinions.Citation, int64, error) {
	citationList, total, err := s.citationRepo.List(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("%w", err)
	}

	return citationList, total, nil
}

// GetByID retrieves a citation edge by ID
func (s *citationService) GetByID(ctx context.Context, citationID string) (*opinions.Citation, error) {
	citation, err := s.citationRepo.GetByID(ctx, citationID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return citation, nil
}

// Create persists a new citation edge
func (s *citationService) Create(ctx context.Context, citation *opinions.Citation) error {
	if citation.ID == "" {
		citation.ID = uuid.NewString()
	}

	if err := s.citationRepo.Create(ctx, citation); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// UpdateByID updates an existing citation edge
func (s *citationService) UpdateByID(ctx context.Context, citation *opinions.Citation) error {
	if err := s.citationRepo.UpdateByID(ctx, citation); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// DeleteByID deletes a citation edge by ID
func (s *citationService) DeleteByID(ctx context.Context, citationID string) error {
	if err := s.citationRepo.DeleteByID(ctx, citationID); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
