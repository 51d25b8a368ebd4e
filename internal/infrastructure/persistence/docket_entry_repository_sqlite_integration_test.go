//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"

	"github.com/SharpenYourSword/courtlistener/internal/domain/dockets"
	"github.com/SharpenYourSword/courtlistener/internal/infrastructure/persistence/models"
	"github.com/SharpenYourSword/courtlistener/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDocketForEntries(t *testing.T, ctx *TestContext) string {
	t.Helper()

	court := CreateTestCourt(t, "cand")
	court.Jurisdiction = "FD"
	require.NoError(t, ctx.CourtRepo.Create(context.Background(), court))

	docket := CreateTestDocket(t, court.ID, "Lorem v. Ipsum")
	require.NoError(t, ctx.DocketRepo.Create(context.Background(), docket))

	return docket.ID
}

func TestDocketEntrySqliteRepository_CreateAndGet(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	docketID := setupDocketForEntries(t, ctx)

	entry := CreateTestDocketEntry(t, docketID, 1)
	require.NoError(t, ctx.DocketEntryRepo.Create(context.Background(), entry))

	document := CreateTestCaseDocument(t, entry.ID)
	require.NoError(t, ctx.CaseDocumentRepo.Create(context.Background(), document))

	fetchedEntry, err := ctx.DocketEntryRepo.GetByID(context.Background(), entry.ID)
	require.NoError(t, err)
	require.NotNil(t, fetchedEntry.Docket)
	assert.Equal(t, docketID, fetchedEntry.Docket.ID)
	require.Len(t, fetchedEntry.Documents, 1)
	assert.Equal(t, document.ID, fetchedEntry.Documents[0].ID)
}

func TestDocketEntryRepository_List_ByDocket(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	docketID := setupDocketForEntries(t, ctx)

	for i := int64(1); i <= 3; i++ {
		entry := CreateTestDocketEntry(t, docketID, i)
		require.NoError(t, ctx.DocketEntryRepo.Create(context.Background(), entry))
	}

	query := dockets.NewDocketEntryQuery()
	query.DocketID = docketID

	list, total, err := ctx.DocketEntryRepo.List(context.Background(), query)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, list, 3)
}

func TestDocketEntryRepository_GetByID_NotFound(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	_, err := ctx.DocketEntryRepo.GetByID(context.Background(), "non-existent-id")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestCaseDocumentSqliteRepository_CreateAndGet(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	docketID := setupDocketForEntries(t, ctx)

	entry := CreateTestDocketEntry(t, docketID, 1)
	require.NoError(t, ctx.DocketEntryRepo.Create(context.Background(), entry))

	document := CreateTestCaseDocument(t, entry.ID)
	require.NoError(t, ctx.CaseDocumentRepo.Create(context.Background(), document))

	fetchedDocument, err := ctx.CaseDocumentRepo.GetByID(context.Background(), document.ID)
	require.NoError(t, err)
	require.NotNil(t, fetchedDocument.DocketEntry)
	assert.Equal(t, entry.ID, fetchedDocument.DocketEntry.ID)
	require.NotNil(t, fetchedDocument.DocketEntry.Docket)
	assert.Equal(t, docketID, fetchedDocument.DocketEntry.Docket.ID)
}

func TestCaseDocumentRepository_List_WithFilters(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	docketID := setupDocketForEntries(t, ctx)

	entry := CreateTestDocketEntry(t, docketID, 1)
	require.NoError(t, ctx.DocketEntryRepo.Create(context.Background(), entry))

	main := CreateTestCaseDocument(t, entry.ID)
	attachment := CreateTestCaseDocument(t, entry.ID)
	attachment.DocumentType = dockets.DocumentTypeAttachment
	attachmentNumber := 1
	attachment.AttachmentNumber = &attachmentNumber

	require.NoError(t, ctx.CaseDocumentRepo.Create(context.Background(), main))
	require.NoError(t, ctx.CaseDocumentRepo.Create(context.Background(), attachment))

	query := dockets.NewCaseDocumentQuery()
	query.DocketEntryID = entry.ID
	query.DocumentType = dockets.DocumentTypeAttachment

	list, total, err := ctx.CaseDocumentRepo.List(context.Background(), query)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, list, 1)
	assert.Equal(t, attachment.ID, list[0].ID)
}

func TestTagSqliteRepository_CreateListDelete(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	tag := CreateTestTag(t, "appeal")
	require.NoError(t, ctx.TagRepo.Create(context.Background(), tag))

	query := dockets.NewTagQuery()
	query.Name = "appeal"

	list, total, err := ctx.TagRepo.List(context.Background(), query)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, list, 1)
	assert.Equal(t, tag.ID, list[0].ID)

	require.NoError(t, ctx.TagRepo.DeleteByID(context.Background(), tag.ID))

	var deletedTagModel models.TagModel
	err = ctx.DB.First(&deletedTagModel, "id = ?", tag.ID).Error
	assert.Error(t, err)
}
