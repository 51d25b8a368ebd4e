//go:build integration
// +build integration

package search

import (
	"context"
	"testing"
	"time"

	domain "github.com/SharpenYourSword/courtlistener/internal/domain/search"
	"github.com/SharpenYourSword/courtlistener/internal/infrastructure/persistence"
	"github.com/SharpenYourSword/courtlistener/internal/pkg/config"
	"github.com/SharpenYourSword/courtlistener/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSearchFixtures(t *testing.T) domain.Provider {
	t.Helper()

	ctx := persistence.SetupTestDB(t, config.SqliteDbType)
	logger := testutil.SetupTestLogger(t)

	court := persistence.CreateTestCourt(t, "scotus")
	require.NoError(t, ctx.CourtRepo.Create(context.Background(), court))

	docket := persistence.CreateTestDocket(t, court.ID, "Miranda v. Arizona")
	docket.DocketNumber = "759"
	require.NoError(t, ctx.DocketRepo.Create(context.Background(), docket))

	cluster := persistence.CreateTestCluster(t, docket.ID, "Miranda v. Arizona")
	cluster.JudgeNames = "Warren"
	cluster.CitationCount = 5000
	cluster.DateFiled = time.Date(1966, 6, 13, 0, 0, 0, 0, time.UTC)
	require.NoError(t, ctx.ClusterRepo.Create(context.Background(), cluster))

	opinion := persistence.CreateTestOpinion(t, cluster.ID, "lead")
	opinion.PlainText = "The person in custody must be warned prior to any questioning."
	require.NoError(t, ctx.OpinionRepo.Create(context.Background(), opinion))

	other := persistence.CreateTestDocket(t, court.ID, "Lorem v. Ipsum")
	require.NoError(t, ctx.DocketRepo.Create(context.Background(), other))

	otherCluster := persistence.CreateTestCluster(t, other.ID, "Lorem v. Ipsum")
	require.NoError(t, ctx.ClusterRepo.Create(context.Background(), otherCluster))

	provider, err := NewSQLProvider(ctx.DB, logger)
	require.NoError(t, err)

	return provider
}

func TestSQLProvider_MatchAll(t *testing.T) {
	provider := setupSearchFixtures(t)

	query := &domain.Query{Q: "*", Type: ResultTypeOpinion, OrderBy: "date_filed desc", Limit: 20}

	results, total, err := provider.Search(context.Background(), query)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, results, 2)
}

func TestSQLProvider_CaseNameMatch(t *testing.T) {
	provider := setupSearchFixtures(t)

	query := &domain.Query{Q: "Miranda", Type: ResultTypeOpinion, OrderBy: "date_filed desc", Limit: 20}

	results, total, err := provider.Search(context.Background(), query)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, results, 1)
	assert.Equal(t, "Miranda v. Arizona", results[0].CaseName)
	assert.Equal(t, "scotus", results[0].CourtID)
	assert.Equal(t, "o", results[0].ResultType)
}

func TestSQLProvider_OpinionTextMatch(t *testing.T) {
	provider := setupSearchFixtures(t)

	query := &domain.Query{Q: "custody", Type: ResultTypeOpinion, OrderBy: "date_filed desc", Limit: 20}

	results, total, err := provider.Search(context.Background(), query)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, results, 1)
	assert.Contains(t, results[0].Snippet, "custody")
}

func TestSQLProvider_CitationCountFilter(t *testing.T) {
	provider := setupSearchFixtures(t)

	minCount := int64(1000)
	query := &domain.Query{Q: "*", Type: ResultTypeOpinion, OrderBy: "citation_count desc", CitedGt: &minCount, Limit: 20}

	results, total, err := provider.Search(context.Background(), query)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, results, 1)
	assert.Equal(t, int64(5000), results[0].CitationCount)
}

func TestSQLProvider_DocketResults(t *testing.T) {
	provider := setupSearchFixtures(t)

	query := &domain.Query{Q: "Miranda", Type: ResultTypeDocket, OrderBy: "date_filed desc", Limit: 20}

	results, total, err := provider.Search(context.Background(), query)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, results, 1)
	assert.Equal(t, "r", results[0].ResultType)
	assert.Equal(t, "759", results[0].DocketNumber)
}

func TestSQLProvider_Pagination(t *testing.T) {
	provider := setupSearchFixtures(t)

	query := &domain.Query{Q: "*", Type: ResultTypeOpinion, OrderBy: "date_filed desc", Limit: 1, Offset: 1}

	results, total, err := provider.Search(context.Background(), query)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, results, 1)
}
