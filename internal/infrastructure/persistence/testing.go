//go:build integration
// +build integration

package persistence

import (
	"strings"
	"testing"
	"time"

	"github.com/SharpenYourSword/courtlistener/internal/domain/courts"
	"github.com/SharpenYourSword/courtlistener/internal/domain/dockets"
	"github.com/SharpenYourSword/courtlistener/internal/domain/opinions"
	"github.com/SharpenYourSword/courtlistener/internal/pkg/config"
	"github.com/SharpenYourSword/courtlistener/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds the test database and repositories
type TestContext struct {
	DB                   *gorm.DB
	CourtRepo            courts.CourtRepository
	OriginatingCourtRepo courts.OriginatingCourtInfoRepository
	DocketRepo           dockets.DocketRepository
	DocketEntryRepo      dockets.DocketEntryRepository
	CaseDocumentRepo     dockets.CaseDocumentRepository
	TagRepo              dockets.TagRepository
	ClusterRepo          opinions.OpinionClusterRepository
	OpinionRepo          opinions.OpinionRepository
	CitationRepo         opinions.CitationRepository
}

// SetupTestDB initializes a test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	var cleanupFunc func()

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}
		cleanupFunc = func() {
			// SQLite in-memory cleanup is automatic
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	require.NoError(t, MigrateAll(db), "Failed to migrate schema")

	logger := testutil.SetupTestLogger(t)

	courtRepo, err := NewGormCourtRepository(db, logger)
	require.NoError(t, err, "Failed to create court repository")

	originatingCourtRepo, err := NewGormOriginatingCourtInfoRepository(db, logger)
	require.NoError(t, err, "Failed to create originating court info repository")

	docketRepo, err := NewGormDocketRepository(db, logger)
	require.NoError(t, err, "Failed to create docket repository")

	docketEntryRepo, err := NewGormDocketEntryRepository(db, logger)
	require.NoError(t, err, "Failed to create docket entry repository")

	caseDocumentRepo, err := NewGormCaseDocumentRepository(db, logger)
	require.NoError(t, err, "Failed to create case document repository")

	tagRepo, err := NewGormTagRepository(db, logger)
	require.NoError(t, err, "Failed to create tag repository")

	clusterRepo, err := NewGormOpinionClusterRepository(db, logger)
	require.NoError(t, err, "Failed to create opinion cluster repository")

	opinionRepo, err := NewGormOpinionRepository(db, logger)
	require.NoError(t, err, "Failed to create opinion repository")

	citationRepo, err := NewGormCitationRepository(db, logger)
	require.NoError(t, err, "Failed to create citation repository")

	return &TestContext{
		DB:                   db,
		CourtRepo:            courtRepo,
		OriginatingCourtRepo: originatingCourtRepo,
		DocketRepo:           docketRepo,
		DocketEntryRepo:      docketEntryRepo,
		CaseDocumentRepo:     caseDocumentRepo,
		TagRepo:              tagRepo,
		ClusterRepo:          clusterRepo,
		OpinionRepo:          opinionRepo,
		CitationRepo:         citationRepo,
	}
}

// CreateTestCourt creates a test court with default values
func CreateTestCourt(t *testing.T, id string) *courts.Court {
	t.Helper()

	if id == "" {
		id = "scotus"
	}

	return &courts.Court{
		ID:             id,
		FullName:       "Supreme Court of the United States",
		ShortName:      "SCOTUS",
		CitationString: "U.S.",
		Jurisdiction:   courts.JurisdictionFederalAppellate,
		Position:       1,
		InUse:          true,
		DateModified:   time.Now(),
	}
}

// CreateTestCourtWithOptions creates a test court with custom options
func CreateTestCourtWithOptions(t *testing.T, id, fullName, jurisdiction string) *courts.Court {
	t.Helper()

	return &courts.Court{
		ID:           id,
		FullName:     fullName,
		ShortName:    id,
		Jurisdiction: jurisdiction,
		Position:     1,
		InUse:        true,
		DateModified: time.Now(),
	}
}

// CreateTestDocket creates a test docket bound to the given court
func CreateTestDocket(t *testing.T, courtID, caseName string) *dockets.Docket {
	t.Helper()

	if caseName == "" {
		caseName = "Lorem v. Ipsum"
	}

	now := time.Now()
	filed := now.AddDate(-1, 0, 0)

	return &dockets.Docket{
		ID:           uuid.NewString(),
		CourtID:      courtID,
		CaseName:     caseName,
		DocketNumber: "21-1234",
		DateFiled:    &filed,
		DateCreated:  now,
		DateModified: now,
	}
}

// CreateTestDocketEntry creates a test docket entry bound to the given docket
func CreateTestDocketEntry(t *testing.T, docketID string, entryNumber int64) *dockets.DocketEntry {
	t.Helper()

	now := time.Now()
	filed := now.AddDate(0, -6, 0)

	return &dockets.DocketEntry{
		ID:           uuid.NewString(),
		DocketID:     docketID,
		EntryNumber:  entryNumber,
		Description:  "Complaint filed",
		DateFiled:    &filed,
		DateCreated:  now,
		DateModified: now,
	}
}

// CreateTestCaseDocument creates a test case document bound to the given entry
func CreateTestCaseDocument(t *testing.T, entryID string) *dockets.CaseDocument {
	t.Helper()

	now := time.Now()

	return &dockets.CaseDocument{
		ID:             uuid.NewString(),
		DocketEntryID:  entryID,
		DocumentNumber: "1",
		DocumentType:   dockets.DocumentTypeMain,
		Description:    "Main document",
		IsAvailable:    true,
		DateCreated:    now,
		DateModified:   now,
	}
}

// CreateTestTag creates a test tag with the given name
func CreateTestTag(t *testing.T, name string) *dockets.Tag {
	t.Helper()

	if name == "" {
		name = "test-tag"
	}

	now := time.Now()

	return &dockets.Tag{
		ID:           uuid.NewString(),
		Name:         name,
		DateCreated:  now,
		DateModified: now,
	}
}

// CreateTestCluster creates a test opinion cluster bound to the given docket
func CreateTestCluster(t *testing.T, docketID, caseName string) *opinions.OpinionCluster {
	t.Helper()

	if caseName == "" {
		caseName = "Lorem v. Ipsum"
	}

	now := time.Now()

	return &opinions.OpinionCluster{
		ID:                 uuid.NewString(),
		DocketID:           docketID,
		CaseName:           caseName,
		JudgeNames:         "Lorem",
		PrecedentialStatus: opinions.StatusPublished,
		CitationCount:      0,
		DateFiled:          now.AddDate(-1, 0, 0),
		DateCreated:        now,
		DateModified:       now,
	}
}

// CreateTestOpinion creates a test opinion bound to the given cluster
func CreateTestOpinion(t *testing.T, clusterID, opinionType string) *opinions.Opinion {
	t.Helper()

	if opinionType == "" {
		opinionType = opinions.TypeLead
	}

	now := time.Now()

	return &opinions.Opinion{
		ID:           uuid.NewString(),
		ClusterID:    clusterID,
		Type:         opinionType,
		AuthorStr:    "Lorem",
		PlainText:    "It is so ordered.",
		DateCreated:  now,
		DateModified: now,
	}
}

// CreateTestCitation creates a test citation edge between two opinions
func CreateTestCitation(t *testing.T, citingID, citedID string) *opinions.Citation {
	t.Helper()

	return &opinions.Citation{
		ID:              uuid.NewString(),
		CitingOpinionID: citingID,
		CitedOpinionID:  citedID,
		Depth:           1,
	}
}
