package opinions

import "context"

// OpinionClusterService defines the operations exposed on the opinion
// cluster resource.
type OpinionClusterService interface {
	// List retrieves clusters matching the query with sub-opinions and
	// reporter citations loaded. It returns the page of clusters and the
	// total number of matches.
	List(ctx context.Context, query *OpinionClusterQuery) ([]*OpinionCluster, int64, error)

	// GetByID retrieves a cluster by ID with its relations loaded.
	GetByID(ctx context.Context, clusterID string) (*OpinionCluster, error)

	// Create persists a new cluster.
	Create(ctx context.Context, cluster *OpinionCluster) error

	// UpdateByID updates an existing cluster.
	UpdateByID(ctx context.Context, cluster *OpinionCluster) error

	// DeleteByID deletes a cluster by ID.
	DeleteByID(ctx context.Context, clusterID string) error
}

// OpinionService defines the operations exposed on the opinion resource.
type OpinionService interface {
	List(ctx context.Context, query *OpinionQuery) ([]*Opinion, int64, error)
	GetByID(ctx context.Context, opinionID string) (*Opinion, error)
	Create(ctx context.Context, opinion *Opinion) error
	UpdateByID(ctx context.Context, opinion *Opinion) error
	DeleteByID(ctx context.Context, opinionID string) error
}

// CitationService defines the operations exposed on the citation edge
// resource.
type CitationService interface {
	List(ctx context.Context, query *CitationQuery) ([]*Citation, int64, error)
	GetByID(ctx context.Context, citationID string) (*Citation, error)
	Create(ctx context.Context, citation *Citation) error
	UpdateByID(ctx context.Context, citation *Citation) error
	DeleteByID(ctx context.Context, citationID string) error
}

// OpinionClusterRepository defines the interface for cluster persistence.
type OpinionClusterRepository interface {
	Create(ctx context.Context, cluster *OpinionCluster) error
	List(ctx context.Context, query *OpinionClusterQuery) ([]*OpinionCluster, int64, error)
	GetByID(ctx context.Context, clusterID string) (*OpinionCluster, error)
	UpdateByID(ctx context.Context, cluster *OpinionCluster) error
	DeleteByID(ctx context.Context, clusterID string) error
}

// OpinionRepository defines the interface for opinion persistence.
type OpinionRepository interface {
	Create(ctx context.Context, opinion *Opinion) error
	List(ctx context.Context, query *OpinionQuery) ([]*Opinion, int64, error)
	GetByID(ctx context.Context, opinionID string) (*Opinion, error)
	UpdateByID(ctx context.Context, opinion *Opinion) error
	DeleteByID(ctx context.Context, opinionID string) error
}

// CitationRepository defines the interface for citation edge persistence.
type CitationRepository interface {
	Create(ctx context.Context, citation *Citation) error
	List(ctx context.Context, query *CitationQuery) ([]*Citation, int64, error)
	GetByID(ctx context.Context, citationID string) (*Citation, error)
	UpdateByID(ctx context.Context, citation *Citation) error
	DeleteByID(ctx context.Context, citationID string) error
}
