//go:build unit
// +build unit

package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormClean_Defaults(t *testing.T) {
	form := &Form{}

	query, errs := form.Clean()
	require.Nil(t, errs)

	assert.Equal(t, "*", query.Q, "empty q should match everything")
	assert.Equal(t, TypeOpinion, query.Type)
	assert.Equal(t, DefaultOrdering, query.OrderBy)
}

func TestFormClean_ValidFields(t *testing.T) {
	form := &Form{
		Q:           "fair use",
		Type:        TypeDocket,
		OrderBy:     "date_filed asc",
		Court:       "scotus",
		Judge:       "souter",
		FiledAfter:  "1990-01-01",
		FiledBefore: "1999-12-31",
		CitedGt:     "5",
	}

	query, errs := form.Clean()
	require.Nil(t, errs)

	assert.Equal(t, "fair use", query.Q)
	assert.Equal(t, TypeDocket, query.Type)
	assert.Equal(t, "scotus", query.Court)
	require.NotNil(t, query.FiledAfter)
	assert.Equal(t, 1990, query.FiledAfter.Year())
	require.NotNil(t, query.CitedGt)
	assert.Equal(t, int64(5), *query.CitedGt)
}

func TestFormClean_InvalidType(t *testing.T) {
	form := &Form{Type: "x"}

	query, errs := form.Clean()
	require.Nil(t, query)
	require.Contains(t, errs, "type")
}

func TestFormClean_InvalidDate(t *testing.T) {
	form := &Form{FiledAfter: "01/02/2003"}

	query, errs := form.Clean()
	require.Nil(t, query)
	require.Contains(t, errs, "filed_after")
}

func TestFormClean_InvalidCitedBound(t *testing.T) {
	form := &Form{CitedGt: "-1"}

	query, errs := form.Clean()
	require.Nil(t, query)
	require.Contains(t, errs, "cited_gt")
}

func TestFormClean_InvalidOrdering(t *testing.T) {
	form := &Form{OrderBy: "relevance desc"}

	query, errs := form.Clean()
	require.Nil(t, query)
	require.Contains(t, errs, "order_by")
}

func TestFormClean_InvalidStatus(t *testing.T) {
	form := &Form{Status: "Secret"}

	query, errs := form.Clean()
	require.Nil(t, query)
	require.Contains(t, errs, "status")
}

func TestFormClean_DateRangeInverted(t *testing.T) {
	form := &Form{FiledAfter: "2001-01-01", FiledBefore: "2000-01-01"}

	query, errs := form.Clean()
	require.Nil(t, query)
	require.Contains(t, errs, "filed_after")
}

func TestFormClean_CollectsMultipleErrors(t *testing.T) {
	form := &Form{Type: "x", FiledAfter: "nope", CitedLt: "abc"}

	query, errs := form.Clean()
	require.Nil(t, query)
	assert.Len(t, errs, 3)
}
