package app

import (
	"context"
	"fmt"

	"github.com/SharpenYourSword/courtlistener/internal/domain/search"
	"github.com/SharpenYourSword/courtlistener/internal/pkg/logger"
)

// searchService implements the SearchService interface by delegating to a
// search provider
type searchService struct {
	provider search.Provider
	logger   logger.Logger
}

// NewSearchService creates a new instance of SearchService
func NewSearchService(provider search.Provider, logger logger.Logger) (search.SearchService, error) {
	return &searchService{
		provider: provider,
		logger:   logger,
	}, nil
}

// Search runs a cleaned query against the provider and returns one page of
// results plus the total number of matches
func (s *searchService) Search(ctx context.Context, query *search.Query) ([]*search.Result, int64, error) {
	results, total, err := s.provider.Search(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("%w", err)
	}

	s.logger.Info("Executed ", query.Type, " search for ", query.Q, " with ", total, " matches")

	return results, total, nil
}
