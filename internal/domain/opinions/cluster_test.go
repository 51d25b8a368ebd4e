//go:build unit
// +build unit

package opinions

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func validTestCluster() *OpinionCluster {
	return &OpinionCluster{
		ID:                 uuid.NewString(),
		DocketID:           uuid.NewString(),
		CaseName:           "Miranda v. Arizona",
		PrecedentialStatus: StatusPublished,
		DateFiled:          time.Date(1966, 6, 13, 0, 0, 0, 0, time.UTC),
		DateCreated:        time.Now(),
		DateModified:       time.Now(),
	}
}

func TestOpinionClusterValidation(t *testing.T) {
	cluster := validTestCluster()
	require.NoError(t, cluster.Validate())

	cluster.PrecedentialStatus = "Secret"
	require.Error(t, cluster.Validate())

	cluster = validTestCluster()
	cluster.CitationCount = -1
	require.Error(t, cluster.Validate())
}

func TestOpinionValidation(t *testing.T) {
	opinion := &Opinion{
		ID:           uuid.NewString(),
		ClusterID:    uuid.NewString(),
		Type:         TypeLead,
		AuthorStr:    "Warren",
		DateCreated:  time.Now(),
		DateModified: time.Now(),
	}
	require.NoError(t, opinion.Validate())

	opinion.Type = "plurality"
	require.Error(t, opinion.Validate())
}

func TestCitationValidation(t *testing.T) {
	citation := &Citation{
		ID:              uuid.NewString(),
		CitingOpinionID: uuid.NewString(),
		CitedOpinionID:  uuid.NewString(),
		Depth:           1,
	}
	require.NoError(t, citation.Validate())

	citation.Depth = 0
	require.Error(t, citation.Validate())
}

func TestOpinionClusterQueryValidation(t *testing.T) {
	query := NewOpinionClusterQuery()
	require.NoError(t, query.Validate())

	query.SortBy = "citation_count"
	require.NoError(t, query.Validate())

	query.SortBy = "case_name"
	require.Error(t, query.Validate())
}
