//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/SharpenYourSword/courtlistener/internal/domain/dockets"
	"github.com/SharpenYourSword/courtlistener/internal/infrastructure/persistence/models"
	"github.com/SharpenYourSword/courtlistener/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocketSqliteRepository_Create(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	court := CreateTestCourt(t, "scotus")
	require.NoError(t, ctx.CourtRepo.Create(context.Background(), court))

	docket := CreateTestDocket(t, court.ID, "Lorem v. Ipsum")
	err := ctx.DocketRepo.Create(context.Background(), docket)
	require.NoError(t, err)

	var createdDocketModel models.DocketModel
	err = ctx.DB.First(&createdDocketModel, "id = ?", docket.ID).Error
	require.NoError(t, err)
	assert.Equal(t, docket.ID, createdDocketModel.ID)
	assert.Equal(t, docket.CaseName, createdDocketModel.CaseName)
}

func TestDocketSqliteRepository_GetByID_LoadsRelations(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	court := CreateTestCourt(t, "scotus")
	require.NoError(t, ctx.CourtRepo.Create(context.Background(), court))

	docket := CreateTestDocket(t, court.ID, "Lorem v. Ipsum")
	require.NoError(t, ctx.DocketRepo.Create(context.Background(), docket))

	cluster := CreateTestCluster(t, docket.ID, docket.CaseName)
	require.NoError(t, ctx.ClusterRepo.Create(context.Background(), cluster))

	fetchedDocket, err := ctx.DocketRepo.GetByID(context.Background(), docket.ID)
	require.NoError(t, err)
	require.NotNil(t, fetchedDocket.Court)
	assert.Equal(t, court.ID, fetchedDocket.Court.ID)
	require.Len(t, fetchedDocket.Clusters, 1)
	assert.Equal(t, cluster.ID, fetchedDocket.Clusters[0].ID)
}

func TestDocketRepository_Create_InvalidDocket(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	docket := &dockets.Docket{} // Invalid - missing required fields

	err := ctx.DocketRepo.Create(context.Background(), docket)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation")
}

func TestDocketRepository_GetByID_NotFound(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	_, err := ctx.DocketRepo.GetByID(context.Background(), "non-existent-id")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestDocketRepository_List_WithFilters(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	court := CreateTestCourt(t, "scotus")
	require.NoError(t, ctx.CourtRepo.Create(context.Background(), court))

	first := CreateTestDocket(t, court.ID, "Lorem v. Ipsum")
	second := CreateTestDocket(t, court.ID, "Dolor v. Sit")
	second.DocketNumber = "22-0001"

	require.NoError(t, ctx.DocketRepo.Create(context.Background(), first))
	require.NoError(t, ctx.DocketRepo.Create(context.Background(), second))

	query := dockets.NewDocketQuery()
	query.DocketNumber = "22-0001"

	list, total, err := ctx.DocketRepo.List(context.Background(), query)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, list, 1)
	assert.Equal(t, "Dolor v. Sit", list[0].CaseName)
}

func TestDocketRepository_List_DateFiledRange(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	court := CreateTestCourt(t, "scotus")
	require.NoError(t, ctx.CourtRepo.Create(context.Background(), court))

	older := CreateTestDocket(t, court.ID, "Old Case")
	olderFiled := time.Date(2010, 3, 1, 0, 0, 0, 0, time.UTC)
	older.DateFiled = &olderFiled

	newer := CreateTestDocket(t, court.ID, "New Case")
	newerFiled := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	newer.DateFiled = &newerFiled

	require.NoError(t, ctx.DocketRepo.Create(context.Background(), older))
	require.NoError(t, ctx.DocketRepo.Create(context.Background(), newer))

	cutoff := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	query := dockets.NewDocketQuery()
	query.FiledAfter = &cutoff

	list, total, err := ctx.DocketRepo.List(context.Background(), query)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, list, 1)
	assert.Equal(t, "New Case", list[0].CaseName)
}

func TestDocketRepository_List_SortAndPagination(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	court := CreateTestCourt(t, "scotus")
	require.NoError(t, ctx.CourtRepo.Create(context.Background(), court))

	for i := 0; i < 3; i++ {
		docket := CreateTestDocket(t, court.ID, "Case")
		filed := time.Date(2020+i, 1, 1, 0, 0, 0, 0, time.UTC)
		docket.DateFiled = &filed
		require.NoError(t, ctx.DocketRepo.Create(context.Background(), docket))
	}

	query := dockets.NewDocketQuery()
	query.SortBy = "date_filed"
	query.SortOrder = "desc"
	query.Limit = 1
	query.Offset = 1

	list, total, err := ctx.DocketRepo.List(context.Background(), query)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, list, 1)
	assert.Equal(t, 2021, list[0].DateFiled.Year())
}

func TestDocketRepository_List_InvalidQuery(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	query := &dockets.DocketQuery{
		SortBy: "case_name", // not a sortable column
		Limit:  50,
	}
	_, _, err := ctx.DocketRepo.List(context.Background(), query)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid query parameters")
}

func TestDocketSqliteRepository_UpdateByID(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	court := CreateTestCourt(t, "scotus")
	require.NoError(t, ctx.CourtRepo.Create(context.Background(), court))

	docket := CreateTestDocket(t, court.ID, "Lorem v. Ipsum")
	require.NoError(t, ctx.DocketRepo.Create(context.Background(), docket))

	docket.CaseName = "Lorem v. Ipsum et al."
	require.NoError(t, ctx.DocketRepo.UpdateByID(context.Background(), docket))

	var updatedDocketModel models.DocketModel
	require.NoError(t, ctx.DB.First(&updatedDocketModel, "id = ?", docket.ID).Error)
	assert.Equal(t, "Lorem v. Ipsum et al.", updatedDocketModel.CaseName)
}

func TestDocketSqliteRepository_DeleteByID(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	court := CreateTestCourt(t, "scotus")
	require.NoError(t, ctx.CourtRepo.Create(context.Background(), court))

	docket := CreateTestDocket(t, court.ID, "Lorem v. Ipsum")
	require.NoError(t, ctx.DocketRepo.Create(context.Background(), docket))
	require.NoError(t, ctx.DocketRepo.DeleteByID(context.Background(), docket.ID))

	var deletedDocketModel models.DocketModel
	err := ctx.DB.First(&deletedDocketModel, "id = ?", docket.ID).Error
	assert.Error(t, err)
}
