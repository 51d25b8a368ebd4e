// Package search provides the database-backed object list builder behind
// the search endpoint.
package search

import (
	"context"
	"fmt"
	"time"

	"github.com/SharpenYourSword/courtlistener/internal/domain/courts"
	"github.com/SharpenYourSword/courtlistener/internal/domain/search"
	"github.com/SharpenYourSword/courtlistener/internal/pkg/logger"

	"gorm.io/gorm"
)

// Result types emitted by the provider.
const (
	ResultTypeOpinion = "o"
	ResultTypeDocket  = "r"
)

// clusterOrderings maps cleaned order_by values onto cluster columns.
var clusterOrderings = map[string]string{
	"date_filed desc":     "opinion_clusters.date_filed DESC",
	"date_filed asc":      "opinion_clusters.date_filed ASC",
	"citation_count desc": "opinion_clusters.citation_count DESC",
	"citation_count asc":  "opinion_clusters.citation_count ASC",
	"case_name asc":       "opinion_clusters.case_name ASC",
}

// docketOrderings maps cleaned order_by values onto docket columns. Dockets
// carry no citation counts, so those orderings fall back to filing date.
var docketOrderings = map[string]string{
	"date_filed desc":     "dockets.date_filed DESC",
	"date_filed asc":      "dockets.date_filed ASC",
	"citation_count desc": "dockets.date_filed DESC",
	"citation_count asc":  "dockets.date_filed ASC",
	"case_name asc":       "dockets.case_name ASC",
}

type sqlProvider struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewSQLProvider creates a search.Provider that builds object lists with
// SQL queries against the primary database.
func NewSQLProvider(db *gorm.DB, logger logger.Logger) (search.Provider, error) {
	return &sqlProvider{
		db:     db,
		logger: logger,
	}, nil
}

func (p *sqlProvider) Search(ctx context.Context, query *search.Query) ([]*search.Result, int64, error) {
	switch query.Type {
	case ResultTypeDocket:
		return p.searchDockets(ctx, query)
	default:
		return p.searchClusters(ctx, query)
	}
}

type clusterRow struct {
	ID            string
	CaseName      string
	JudgeNames    string
	Status        string
	DateFiled     time.Time
	CitationCount int64
	DocketID      string
	DocketNumber  string
	CourtID       string
	CourtName     string
	Snippet       string
}

func (p *sqlProvider) searchClusters(ctx context.Context, query *search.Query) ([]*search.Result, int64, error) {
	dbQuery := p.db.WithContext(ctx).
		Table("opinion_clusters").
		Joins("JOIN dockets ON dockets.id = opinion_clusters.docket_id").
		Joins("JOIN courts ON courts.id = dockets.court_id").
		Where("opinion_clusters.blocked = ?", false).
		Where("courts.jurisdiction <> ?", courts.JurisdictionTesting)

	if query.Q != "" && query.Q != "*" {
		pattern := "%" + query.Q + "%"
		dbQuery = dbQuery.Where(
			"opinion_clusters.case_name LIKE ? OR EXISTS (SELECT 1 FROM opinions WHERE opinions.cluster_id = opinion_clusters.id AND opinions.plain_text LIKE ?)",
			pattern, pattern,
		)
	}
	if query.Court != "" {
		dbQuery = dbQuery.Where("dockets.court_id = ?", query.Court)
	}
	if query.Judge != "" {
		dbQuery = dbQuery.Where("opinion_clusters.judge_names LIKE ?", "%"+query.Judge+"%")
	}
	if query.CaseName != "" {
		dbQuery = dbQuery.Where("opinion_clusters.case_name LIKE ?", "%"+query.CaseName+"%")
	}
	if query.DocketNumber != "" {
		dbQuery = dbQuery.Where("dockets.docket_number = ?", query.DocketNumber)
	}
	if query.Status != "" {
		dbQuery = dbQuery.Where("opinion_clusters.precedential_status = ?", query.Status)
	}
	if query.FiledAfter != nil {
		dbQuery = dbQuery.Where("opinion_clusters.date_filed >= ?", *query.FiledAfter)
	}
	if query.FiledBefore != nil {
		dbQuery = dbQuery.Where("opinion_clusters.date_filed <= ?", *query.FiledBefore)
	}
	if query.CitedGt != nil {
		dbQuery = dbQuery.Where("opinion_clusters.citation_count > ?", *query.CitedGt)
	}
	if query.CitedLt != nil {
		dbQuery = dbQuery.Where("opinion_clusters.citation_count < ?", *query.CitedLt)
	}

	var total int64
	if err := dbQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count opinion results: %w", err)
	}

	ordering, ok := clusterOrderings[query.OrderBy]
	if !ok {
		ordering = clusterOrderings["date_filed desc"]
	}

	var rows []clusterRow
	err := dbQuery.
		Select(`opinion_clusters.id AS id,
			opinion_clusters.case_name AS case_name,
			opinion_clusters.judge_names AS judge_names,
			opinion_clusters.precedential_status AS status,
			opinion_clusters.date_filed AS date_filed,
			opinion_clusters.citation_count AS citation_count,
			dockets.id AS docket_id,
			dockets.docket_number AS docket_number,
			courts.id AS court_id,
			courts.full_name AS court_name,
			COALESCE((SELECT substr(opinions.plain_text, 1, 500) FROM opinions WHERE opinions.cluster_id = opinion_clusters.id ORDER BY opinions.date_created LIMIT 1), '') AS snippet`).
		Order(ordering).
		Limit(query.Limit).
		Offset(query.Offset).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch opinion results: %w", err)
	}

	results := make([]*search.Result, len(rows))
	for i := range rows {
		row := rows[i]
		dateFiled := row.DateFiled
		results[i] = &search.Result{
			ID:            row.ID,
			ResultType:    ResultTypeOpinion,
			CaseName:      row.CaseName,
			CourtID:       row.CourtID,
			Court:         row.CourtName,
			DocketID:      row.DocketID,
			DocketNumber:  row.DocketNumber,
			Judge:         row.JudgeNames,
			Status:        row.Status,
			DateFiled:     &dateFiled,
			CitationCount: row.CitationCount,
			Snippet:       row.Snippet,
			AbsoluteURL:   fmt.Sprintf("/opinion/%s/", row.ID),
		}
	}

	return results, total, nil
}

type docketRow struct {
	ID            string
	CaseName      string
	DocketNumber  string
	AssignedToStr string
	DateFiled     *time.Time
	CourtID       string
	CourtName     string
}

func (p *sqlProvider) searchDockets(ctx context.Context, query *search.Query) ([]*search.Result, int64, error) {
	dbQuery := p.db.WithContext(ctx).
		Table("dockets").
		Joins("JOIN courts ON courts.id = dockets.court_id").
		Where("dockets.blocked = ?", false).
		Where("courts.jurisdiction <> ?", courts.JurisdictionTesting)

	if query.Q != "" && query.Q != "*" {
		pattern := "%" + query.Q + "%"
		dbQuery = dbQuery.Where("dockets.case_name LIKE ? OR dockets.docket_number LIKE ?", pattern, pattern)
	}
	if query.Court != "" {
		dbQuery = dbQuery.Where("dockets.court_id = ?", query.Court)
	}
	if query.Judge != "" {
		dbQuery = dbQuery.Where("dockets.assigned_to_str LIKE ?", "%"+query.Judge+"%")
	}
	if query.CaseName != "" {
		dbQuery = dbQuery.Where("dockets.case_name LIKE ?", "%"+query.CaseName+"%")
	}
	if query.DocketNumber != "" {
		dbQuery = dbQuery.Where("dockets.docket_number = ?", query.DocketNumber)
	}
	if query.FiledAfter != nil {
		dbQuery = dbQuery.Where("dockets.date_filed >= ?", *query.FiledAfter)
	}
	if query.FiledBefore != nil {
		dbQuery = dbQuery.Where("dockets.date_filed <= ?", *query.FiledBefore)
	}

	var total int64
	if err := dbQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count docket results: %w", err)
	}

	ordering, ok := docketOrderings[query.OrderBy]
	if !ok {
		ordering = docketOrderings["date_filed desc"]
	}

	var rows []docketRow
	err := dbQuery.
		Select(`dockets.id AS id,
			dockets.case_name AS case_name,
			dockets.docket_number AS docket_number,
			dockets.assigned_to_str AS assigned_to_str,
			dockets.date_filed AS date_filed,
			courts.id AS court_id,
			courts.full_name AS court_name`).
		Order(ordering).
		Limit(query.Limit).
		Offset(query.Offset).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch docket results: %w", err)
	}

	results := make([]*search.Result, len(rows))
	for i := range rows {
		row := rows[i]
		results[i] = &search.Result{
			ID:           row.ID,
			ResultType:   ResultTypeDocket,
			CaseName:     row.CaseName,
			CourtID:      row.CourtID,
			Court:        row.CourtName,
			DocketID:     row.ID,
			DocketNumber: row.DocketNumber,
			Judge:        row.AssignedToStr,
			DateFiled:    row.DateFiled,
			AbsoluteURL:  fmt.Sprintf("/docket/%s/", row.ID),
		}
	}

	return results, total, nil
}
