package dockets

import "context"

// DocketService defines the operations exposed on the docket resource.
type DocketService interface {
	// List retrieves dockets matching the query with their court,
	// originating court info, clusters and tags loaded. It returns the page
	// of dockets and the total number of matches.
	List(ctx context.Context, query *DocketQuery) ([]*Docket, int64, error)

	// GetByID retrieves a docket by ID with its relations loaded.
	GetByID(ctx context.Context, docketID string) (*Docket, error)

	// Create persists a new docket.
	Create(ctx context.Context, docket *Docket) error

	// UpdateByID updates an existing docket.
	UpdateByID(ctx context.Context, docket *Docket) error

	// DeleteByID deletes a docket by ID.
	DeleteByID(ctx context.Context, docketID string) error
}

// DocketEntryService defines the operations exposed on the docket entry
// resource. The HTTP layer only permits reads; writes exist for imports.
type DocketEntryService interface {
	List(ctx context.Context, query *DocketEntryQuery) ([]*DocketEntry, int64, error)
	GetByID(ctx context.Context, entryID string) (*DocketEntry, error)
	Create(ctx context.Context, entry *DocketEntry) error
	UpdateByID(ctx context.Context, entry *DocketEntry) error
	DeleteByID(ctx context.Context, entryID string) error
}

// CaseDocumentService defines the operations exposed on the case document
// resource. The HTTP layer only permits reads; writes exist for imports.
type CaseDocumentService interface {
	List(ctx context.Context, query *CaseDocumentQuery) ([]*CaseDocument, int64, error)
	GetByID(ctx context.Context, documentID string) (*CaseDocument, error)
	Create(ctx context.Context, document *CaseDocument) error
	UpdateByID(ctx context.Context, document *CaseDocument) error
	DeleteByID(ctx context.Context, documentID string) error
}

// TagService defines the operations exposed on the tag resource.
type TagService interface {
	List(ctx context.Context, query *TagQuery) ([]*Tag, int64, error)
	GetByID(ctx context.Context, tagID string) (*Tag, error)
	Create(ctx context.Context, tag *Tag) error
	UpdateByID(ctx context.Context, tag *Tag) error
	DeleteByID(ctx context.Context, tagID string) error
}

// DocketRepository defines the interface for docket persistence.
type DocketRepository interface {
	Create(ctx context.Context, docket *Docket) error
	List(ctx context.Context, query *DocketQuery) ([]*Docket, int64, error)
	GetByID(ctx context.Context, docketID string) (*Docket, error)
	UpdateByID(ctx context.Context, docket *Docket) error
	DeleteByID(ctx context.Context, docketID string) error
}

// DocketEntryRepository defines the interface for docket entry persistence.
type DocketEntryRepository interface {
	Create(ctx context.Context, entry *DocketEntry) error
	List(ctx context.Context, query *DocketEntryQuery) ([]*DocketEntry, int64, error)
	GetByID(ctx context.Context, entryID string) (*DocketEntry, error)
	UpdateByID(ctx context.Context, entry *DocketEntry) error
	DeleteByID(ctx context.Context, entryID string) error
}

// CaseDocumentRepository defines the interface for case document persistence.
type CaseDocumentRepository interface {
	Create(ctx context.Context, document *CaseDocument) error
	List(ctx context.Context, query *CaseDocumentQuery) ([]*CaseDocument, int64, error)
	GetByID(ctx context.Context, documentID string) (*CaseDocument, error)
	UpdateByID(ctx context.Context, document *CaseDocument) error
	DeleteByID(ctx context.Context, documentID string) error
}

// TagRepository defines the interface for tag persistence.
type TagRepository interface {
	Create(ctx context.Context, tag *Tag) error
	List(ctx context.Context, query *TagQuery) ([]*Tag, int64, error)
	GetByID(ctx context.Context, tagID string) (*Tag, error)
	UpdateByID(ctx context.Context, tag *Tag) error
	DeleteByID(ctx context.Context, tagID string) error
}
