//go:build integration
// +build integration

package app

import (
	"context"
	"testing"

	"github.com/SharpenYourSword/courtlistener/internal/domain/dockets"
	"github.com/SharpenYourSword/courtlistener/internal/domain/opinions"
	domainsearch "github.com/SharpenYourSword/courtlistener/internal/domain/search"
	"github.com/SharpenYourSword/courtlistener/internal/infrastructure/persistence"
	infrasearch "github.com/SharpenYourSword/courtlistener/internal/infrastructure/search"
	"github.com/SharpenYourSword/courtlistener/internal/pkg/config"
	"github.com/SharpenYourSword/courtlistener/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCourtService_CreateAndGet(t *testing.T) {
	ctx := persistence.SetupTestDB(t, config.SqliteDbType)
	logger := testutil.SetupTestLogger(t)

	service, err := NewCourtService(ctx.CourtRepo, logger)
	require.NoError(t, err)

	court := persistence.CreateTestCourt(t, "scotus")
	require.NoError(t, service.Create(context.Background(), court))

	fetchedCourt, err := service.GetByID(context.Background(), court.ID)
	require.NoError(t, err)
	assert.Equal(t, court.FullName, fetchedCourt.FullName)
}

func TestDocketService_CreateFillsDefaults(t *testing.T) {
	ctx := persistence.SetupTestDB(t, config.SqliteDbType)
	logger := testutil.SetupTestLogger(t)

	courtService, err := NewCourtService(ctx.CourtRepo, logger)
	require.NoError(t, err)
	require.NoError(t, courtService.Create(context.Background(), persistence.CreateTestCourt(t, "scotus")))

	docketService, err := NewDocketService(ctx.DocketRepo, logger)
	require.NoError(t, err)

	docket := &dockets.Docket{
		CourtID:  "scotus",
		CaseName: "Lorem v. Ipsum",
	}
	require.NoError(t, docketService.Create(context.Background(), docket))

	assert.NotEmpty(t, docket.ID)
	assert.False(t, docket.DateCreated.IsZero())
	assert.False(t, docket.DateModified.IsZero())

	fetchedDocket, err := docketService.GetByID(context.Background(), docket.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lorem v. Ipsum", fetchedDocket.CaseName)
}

func TestDocketService_UpdateBumpsDateModified(t *testing.T) {
	ctx := persistence.SetupTestDB(t, config.SqliteDbType)
	logger := testutil.SetupTestLogger(t)

	courtService, err := NewCourtService(ctx.CourtRepo, logger)
	require.NoError(t, err)
	require.NoError(t, courtService.Create(context.Background(), persistence.CreateTestCourt(t, "scotus")))

	docketService, err := NewDocketService(ctx.DocketRepo, logger)
	require.NoError(t, err)

	docket := persistence.CreateTestDocket(t, "scotus", "Lorem v. Ipsum")
	require.NoError(t, docketService.Create(context.Background(), docket))

	before := docket.DateModified
	docket.CaseName = "Lorem v. Ipsum et al."
	require.NoError(t, docketService.UpdateByID(context.Background(), docket))

	assert.True(t, docket.DateModified.After(before) || docket.DateModified.Equal(before))
}

func TestOpinionClusterService_List(t *testing.T) {
	ctx := persistence.SetupTestDB(t, config.SqliteDbType)
	logger := testutil.SetupTestLogger(t)

	require.NoError(t, ctx.CourtRepo.Create(context.Background(), persistence.CreateTestCourt(t, "scotus")))
	docket := persistence.CreateTestDocket(t, "scotus", "Lorem v. Ipsum")
	require.NoError(t, ctx.DocketRepo.Create(context.Background(), docket))

	clusterService, err := NewOpinionClusterService(ctx.ClusterRepo, logger)
	require.NoError(t, err)

	cluster := persistence.CreateTestCluster(t, docket.ID, "Lorem v. Ipsum")
	require.NoError(t, clusterService.Create(context.Background(), cluster))

	query := opinions.NewOpinionClusterQuery()
	query.DocketID = docket.ID

	list, total, err := clusterService.List(context.Background(), query)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, list, 1)
}

func TestSearchService_Search(t *testing.T) {
	ctx := persistence.SetupTestDB(t, config.SqliteDbType)
	logger := testutil.SetupTestLogger(t)

	require.NoError(t, ctx.CourtRepo.Create(context.Background(), persistence.CreateTestCourt(t, "scotus")))
	docket := persistence.CreateTestDocket(t, "scotus", "Miranda v. Arizona")
	require.NoError(t, ctx.DocketRepo.Create(context.Background(), docket))
	cluster := persistence.CreateTestCluster(t, docket.ID, "Miranda v. Arizona")
	require.NoError(t, ctx.ClusterRepo.Create(context.Background(), cluster))

	provider, err := infrasearch.NewSQLProvider(ctx.DB, logger)
	require.NoError(t, err)

	searchService, err := NewSearchService(provider, logger)
	require.NoError(t, err)

	query := &domainsearch.Query{Q: "Miranda", Type: "o", OrderBy: "date_filed desc", Limit: 20}

	results, total, err := searchService.Search(context.Background(), query)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, results, 1)
	assert.Equal(t, "Miranda v. Arizona", results[0].CaseName)
}
