package app

import (
	"context"
	"fmt"
	"time"

	"github.com/SharpenYourSword/courtlistener/internal/domain/dockets"
	"github.com/SharpenYourSword/courtlistener/internal/pkg/logger"

	"github.com/google/uuid"
)

// docketService implements the DocketService interface on top of the docket
// repository
type docketService struct {
	docketRepo dockets.DocketRepository
	logger     logger.Logger
}

// NewDocketService creates a new instance of DocketService
func NewDocketService(docketRepo dockets.DocketRepository, logger logger.Logger) (dockets.DocketService, error) {
	return &docketService{
		docketRepo: docketRepo,
		logger:     logger,
	}, nil
}

// List retrieves dockets matching the query with their relations loaded
func (s *docketService) List(ctx context.Context, query *dockets.DocketQuery) ([]*dockets.Docket, int64, error) {
	docketList, total, err := s.docketRepo.List(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("%w", err)
	}

	return docketList, total, nil
}

// GetByID retrieves a docket by ID with its relations loaded
func (s *docketService) GetByID(ctx context.Context, docketID string) (*dockets.Docket, error) {
	docket, err := s.docketRepo.GetByID(ctx, docketID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return docket, nil
}

// Create persists a new docket
func (s *docketService) Create(ctx context.Context, docket *dockets.Docket) error {
	if docket.ID == "" {
		docket.ID = uuid.NewString()
	}
	now := time.Now()
	if docket.DateCreated.IsZero() {
		docket.DateCreated = now
	}
	if docket.DateModified.IsZero() {
		docket.DateModified = now
	}

	if err := s.docketRepo.Create(ctx, docket); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// UpdateByID updates an existing docket
func (s *docketService) UpdateByID(ctx context.Context, docket *dockets.Docket) error {
	docket.DateModified = time.Now()

	if err := s.docketRepo.UpdateByID(ctx, docket); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// DeleteByID deletes a docket by ID
func (s *docketService) DeleteByID(ctx context.Context, docketID string) error {
	if err := s.docketRepo.DeleteByID(ctx, docketID); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// docketEntryService implements the DocketEntryService interface
type docketEntryService struct {
	docketEntryRepo dockets.DocketEntryRepository
	logger          logger.Logger
}

// NewDocketEntryService creates a new instance of DocketEntryService
func NewDocketEntryService(docketEntryRepo dockets.DocketEntryRepository, logger logger.Logger) (dockets.DocketEntryService, error) {
	return &docketEntryService{
		docketEntryRepo: docketEntryRepo,
		logger:          logger,
	}, nil
}

// List retrieves docket entries matching the query with their relations loaded
func (s *docketEntryService) List(ctx context.Context, query *dockets.DocketEntryQuery) ([]*dockets.DocketEntry, int64, error) {
	entryList, total, err := s.docketEntryRepo.List(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("%w", err)
	}

	return entryList, total, nil
}

// GetByID retrieves a docket entry by ID with its relations loaded
func (s *docketEntryService) GetByID(ctx context.Context, entryID string) (*dockets.DocketEntry, error) {
	entry, err := s.docketEntryRepo.GetByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return entry, nil
}

// Create persists a new docket entry
func (s *docketEntryService) Create(ctx context.Context, entry *dockets.DocketEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	now := time.Now()
	if entry.DateCreated.IsZero() {
		entry.DateCreated = now
	}
	if entry.DateModified.IsZero() {
		entry.DateModified = now
	}

	if err := s.docketEntryRepo.Create(ctx, entry); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// UpdateByID updates an existing docket entry
func (s *docketEntryService) UpdateByID(ctx context.Context, entry *dockets.DocketEntry) error {
	entry.DateModified = time.Now()

	if err := s.docketEntryRepo.UpdateByID(ctx, entry); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// DeleteByID deletes a docket entry by ID
func (s *docketEntryService) DeleteByID(ctx context.Context, entryID string) error {
	if err := s.docketEntryRepo.DeleteByID(ctx, entryID); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// caseDocumentService implements the CaseDocumentService interface
type caseDocumentService struct {
	caseDocumentRepo dockets.CaseDocumentRepository
	logger           logger.Logger
}

// NewCaseDocumentService creates a new instance of CaseDocumentService
func NewCaseDocumentService(caseDocumentRepo dockets.CaseDocumentRepository, logger logger.Logger) (dockets.CaseDocumentService, error) {
	return &caseDocumentService{
		caseDocumentRepo: caseDocumentRepo,
		logger:           logger,
	}, nil
}

// List retrieves case documents matching the query with their relations loaded
func (s *caseDocumentService) List(ctx context.Context, query *dockets.CaseDocumentQuery) ([]*dockets.CaseDocument, int64, error) {
	documentList, total, err := s.caseDocumentRepo.List(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("%w", err)
	}

	return documentList, total, nil
}

// GetByID retrieves a case document by ID with its relations loaded
func (s *caseDocumentService) GetByID(ctx context.Context, documentID string) (*dockets.CaseDocument, error) {
	document, err := s.caseDocumentRepo.GetByID(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return document, nil
}

// Create persists a new case document
func (s *caseDocumentService) Create(ctx context.Context, document *dockets.CaseDocument) error {
	if document.ID == "" {
		document.ID = uuid.NewString()
	}
	now := time.Now()
	if document.DateCreated.IsZero() {
		document.DateCreated = now
	}
	if document.DateModified.IsZero() {
		document.DateModified = now
	}

	if err := s.caseDocumentRepo.Create(ctx, document); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// UpdateByID updates an existing case document
func (s *caseDocumentService) UpdateByID(ctx context.Context, document *dockets.CaseDocument) error {
	document.DateModified = time.Now()

	if err := s.caseDocumentRepo.UpdateByID(ctx, document); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// DeleteByID deletes a case document by ID
func (s *caseDocumentService) DeleteByID(ctx context.Context, documentID string) error {
	if err := s.caseDocumentRepo.DeleteByID(ctx, documentID); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// tagService implements the TagService interface
type tagService struct {
	tagRepo dockets.TagRepository
	logger  logger.Logger
}

// NewTagService creates a new instance of TagService
func NewTagService(tagRepo dockets.TagRepository, logger logger.Logger) (dockets.TagService, error) {
	return &tagService{
		tagRepo: tagRepo,
		logger:  logger,
	}, nil
}

// List retrieves tags matching the query
func (s *tagService) List(ctx context.Context, query *dockets.TagQuery) ([]*dockets.Tag, int64, error) {
	tagList, total, err := s.tagRepo.List(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("%w", err)
	}

	return tagList, total, nil
}

// GetByID retrieves a tag by ID
func (s *tagService) GetByID(ctx context.Context, tagID string) (*dockets.Tag, error) {
	tag, err := s.tagRepo.GetByID(ctx, tagID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return tag, nil
}

// Create persists a new tag
func (s *tagService) Create(ctx context.Context, tag *dockets.Tag) error {
	if tag.ID == "" {
		tag.ID = uuid.NewString()
	}
	now := time.Now()
	if tag.DateCreated.IsZero() {
		tag.DateCreated = now
	}
	if tag.DateModified.IsZero() {
		tag.DateModified = now
	}

	if err := s.tagRepo.Create(ctx, tag); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// UpdateByID updates an existing tag
func (s *tagService) UpdateByID(ctx context.Context, tag *dockets.Tag) error {
	tag.DateModified = time.Now()

	if err := s.tagRepo.UpdateByID(ctx, tag); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// DeleteByID deletes a tag by ID
func (s *tagService) DeleteByID(ctx context.Context, tagID string) error {
	if err := s.tagRepo.DeleteByID(ctx, tagID); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
