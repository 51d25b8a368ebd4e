//go:build unit
// +build unit

package courts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func validTestCourt() *Court {
	return &Court{
		ID:             "scotus",
		FullName:       "Supreme Court of the United States",
		ShortName:      "SCOTUS",
		CitationString: "U.S.",
		Jurisdiction:   JurisdictionFederalAppellate,
		Position:       1,
		InUse:          true,
		DateModified:   time.Now(),
	}
}

func TestCourtValidation(t *testing.T) {
	court := validTestCourt()
	require.NoError(t, court.Validate())

	court.Jurisdiction = "X"
	require.Error(t, court.Validate())

	court = validTestCourt()
	court.ID = "x"
	require.Error(t, court.Validate(), "single-character slug is too short")

	court = validTestCourt()
	court.FullName = ""
	require.Error(t, court.Validate())
}

func TestCourtQueryValidation(t *testing.T) {
	query := NewCourtQuery()
	require.NoError(t, query.Validate())

	query.SortBy = "position"
	query.SortOrder = "desc"
	require.NoError(t, query.Validate())

	query.SortBy = "full_name"
	require.Error(t, query.Validate(), "ordering must be whitelisted")

	query = NewCourtQuery()
	query.SortOrder = "descending"
	require.Error(t, query.Validate())

	query = NewCourtQuery()
	query.Limit = 1000
	require.Error(t, query.Validate())
}
