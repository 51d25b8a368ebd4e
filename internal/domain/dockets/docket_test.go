//go:build unit
// +build unit

package dockets

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func validTestDocket() *Docket {
	return &Docket{
		ID:           uuid.NewString(),
		CourtID:      "scotus",
		CaseName:     "Roe v. Wade",
		DocketNumber: "70-18",
		DateCreated:  time.Now(),
		DateModified: time.Now(),
	}
}

func TestDocketValidation(t *testing.T) {
	docket := validTestDocket()
	require.NoError(t, docket.Validate())

	docket.ID = "not-a-uuid"
	require.Error(t, docket.Validate())

	docket = validTestDocket()
	docket.CaseName = ""
	require.Error(t, docket.Validate())

	docket = validTestDocket()
	docket.CourtID = ""
	require.Error(t, docket.Validate())
}

func TestDocketQueryValidation(t *testing.T) {
	query := NewDocketQuery()
	require.NoError(t, query.Validate())

	query.SortBy = "date_filed"
	query.SortOrder = "desc"
	require.NoError(t, query.Validate())

	query.SortBy = "case_name"
	require.Error(t, query.Validate(), "ordering must be whitelisted")
}

func TestDocketEntryValidation(t *testing.T) {
	entry := &DocketEntry{
		ID:           uuid.NewString(),
		DocketID:     uuid.NewString(),
		EntryNumber:  1,
		Description:  "Complaint filed",
		DateCreated:  time.Now(),
		DateModified: time.Now(),
	}
	require.NoError(t, entry.Validate())

	entry.DocketID = ""
	require.Error(t, entry.Validate())
}

func TestCaseDocumentValidation(t *testing.T) {
	doc := &CaseDocument{
		ID:             uuid.NewString(),
		DocketEntryID:  uuid.NewString(),
		DocumentNumber: "1",
		DocumentType:   DocumentTypeMain,
		DateCreated:    time.Now(),
		DateModified:   time.Now(),
	}
	require.NoError(t, doc.Validate())

	doc.DocumentType = "exhibit"
	require.Error(t, doc.Validate())

	doc.DocumentType = DocumentTypeMain
	doc.SHA1 = "tooshort"
	require.Error(t, doc.Validate())
}

func TestTagValidation(t *testing.T) {
	tag := &Tag{
		ID:           uuid.NewString(),
		Name:         "discovery",
		DateCreated:  time.Now(),
		DateModified: time.Now(),
	}
	require.NoError(t, tag.Validate())

	tag.Name = ""
	require.Error(t, tag.Validate())
}
