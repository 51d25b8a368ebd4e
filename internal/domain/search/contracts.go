package search

import "context"

// Provider builds the object list for a cleaned search query. It returns
// one page of results and the total number of matches.
type Provider interface {
	Search(ctx context.Context, query *Query) ([]*Result, int64, error)
}

// SearchService defines the operation exposed on the search endpoint.
type SearchService interface {
	// Search runs a cleaned query against the provider.
	Search(ctx context.Context, query *Query) ([]*Result, int64, error)
}
