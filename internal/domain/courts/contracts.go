package courts

import "context"

// CourtService defines the operations exposed on the court resource.
type CourtService interface {
	// List retrieves courts matching the query. Courts in the testing
	// jurisdiction are always excluded. It returns the page of courts and
	// the total number of matches.
	List(ctx context.Context, query *CourtQuery) ([]*Court, int64, error)

	// GetByID retrieves a court by its slug ID.
	GetByID(ctx context.Context, courtID string) (*Court, error)

	// Create persists a new court.
	Create(ctx context.Context, court *Court) error

	// UpdateByID updates an existing court.
	UpdateByID(ctx context.Context, court *Court) error

	// DeleteByID deletes a court by its slug ID.
	DeleteByID(ctx context.Context, courtID string) error
}

// CourtRepository defines the interface for court persistence.
type CourtRepository interface {
	// Create adds a new Court to the database
	Create(ctx context.Context, court *Court) error
	// List lists Courts in the database with optional filter, excluding the
	// testing jurisdiction, and returns the total match count
	List(ctx context.Context, query *CourtQuery) ([]*Court, int64, error)
	// GetByID retrieves a Court from the database by slug ID
	GetByID(ctx context.Context, courtID string) (*Court, error)
	// UpdateByID updates a Court in the database by slug ID
	UpdateByID(ctx context.Context, court *Court) error
	// DeleteByID deletes a Court in the database by slug ID
	DeleteByID(ctx context.Context, courtID string) error
}

// OriginatingCourtInfoService defines the operations exposed on the
// originating court info resource.
type OriginatingCourtInfoService interface {
	List(ctx context.Context, query *OriginatingCourtInfoQuery) ([]*OriginatingCourtInfo, int64, error)
	GetByID(ctx context.Context, id string) (*OriginatingCourtInfo, error)
	Create(ctx context.Context, info *OriginatingCourtInfo) error
	UpdateByID(ctx context.Context, info *OriginatingCourtInfo) error
	DeleteByID(ctx context.Context, id string) error
}

// OriginatingCourtInfoRepository defines the interface for originating court
// info persistence.
type OriginatingCourtInfoRepository interface {
	Create(ctx context.Context, info *OriginatingCourtInfo) error
	List(ctx context.Context, query *OriginatingCourtInfoQuery) ([]*OriginatingCourtInfo, int64, error)
	GetByID(ctx context.Context, id string) (*OriginatingCourtInfo, error)
	UpdateByID(ctx context.Context, info *OriginatingCourtInfo) error
	DeleteByID(ctx context.Context, id string) error
}
