package app

import (
	"context"
	"fmt"
	"time"

	"github.com/SharpenYourSword/courtlistener/internal/domain/courts"
	"github.com/SharpenYourSword/courtlistener/internal/pkg/logger"

	"github.com/google/uuid"
)

// courtService implements the CourtService interface on top of the court
// repository
type courtService struct {
	courtRepo courts.CourtRepository
	logger    logger.Logger
}

// NewCourtService creates a new instance of CourtService
func NewCourtService(courtRepo courts.CourtRepository, logger logger.Logger) (courts.CourtService, error) {
	return &courtService{
		courtRepo: courtRepo,
		logger:    logger,
	}, nil
}

// List retrieves courts matching the query. The testing jurisdiction is
// filtered out by the repository.
func (s *courtService) List(ctx context.Context, query *courts.CourtQuery) ([]*courts.Court, int64, error) {
	courtList, total, err := s.courtRepo.List(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("%w", err)
	}

	return courtList, total, nil
}

// GetByID retrieves a court by its slug
func (s *courtService) GetByID(ctx context.Context, courtID string) (*courts.Court, error) {
	court, err := s.courtRepo.GetByID(ctx, courtID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return court, nil
}

// Create persists a new court. Courts are keyed by slug, so the caller
// supplies the ID.
func (s *courtService) Create(ctx context.Context, court *courts.Court) error {
	if court.DateModified.IsZero() {
		court.DateModified = time.Now()
	}

	if err := s.courtRepo.Create(ctx, court); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// UpdateByID updates an existing court
func (s *courtService) UpdateByID(ctx context.Context, court *courts.Court) error {
	court.DateModified = time.Now()

	if err := s.courtRepo.UpdateByID(ctx, court); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// DeleteByID deletes a court by its slug
func (s *courtService) DeleteByID(ctx context.Context, courtID string) error {
	if err := s.courtRepo.DeleteByID(ctx, courtID); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// originatingCourtInfoService implements the OriginatingCourtInfoService
// interface
type originatingCourtInfoService struct {
	originatingCourtRepo courts.OriginatingCourtInfoRepository
	logger               logger.Logger
}

// NewOriginatingCourtInfoService creates a new instance of
// OriginatingCourtInfoService
func NewOriginatingCourtInfoService(originatingCourtRepo courts.OriginatingCourtInfoRepository, logger logger.Logger) (courts.OriginatingCourtInfoService, error) {
	return &originatingCourtInfoService{
		originatingCourtRepo: originatingCourtRepo,
		logger:               logger,
	}, nil
}

// List retrieves originating court info records matching the query
func (s *originatingCourtInfoService) List(ctx context.Context, query *courts.OriginatingCourtInfoQuery) ([]*courts.OriginatingCourtInfo, int64, error) {
	infoList, total, err := s.originatingCourtRepo.List(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("%w", err)
	}

	return infoList, total, nil
}

// GetByID retrieves an originating court info record by ID
func (s *originatingCourtInfoService) GetByID(ctx context.Context, id string) (*courts.OriginatingCourtInfo, error) {
	info, err := s.originatingCourtRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return info, nil
}

// Create persists a new originating court info record
func (s *originatingCourtInfoService) Create(ctx context.Context, info *courts.OriginatingCourtInfo) error {
	if info.ID == "" {
		info.ID = uuid.NewString()
	}
	now := time.Now()
	if info.DateCreated.IsZero() {
		info.DateCreated = now
	}
	if info.DateModified.IsZero() {
		info.DateModified = now
	}

	if err := s.originatingCourtRepo.Create(ctx, info); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// UpdateByID updates an existing originating court info record
func (s *originatingCourtInfoService) UpdateByID(ctx context.Context, info *courts.OriginatingCourtInfo) error {
	info.DateModified = time.Now()

	if err := s.originatingCourtRepo.UpdateByID(ctx, info); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// DeleteByID deletes an originating court info record by ID
func (s *originatingCourtInfoService) DeleteByID(ctx context.Context, id string) error {
	if err := s.originatingCourtRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
