package search

import "time"

// Query is the cleaned, typed version of a search form, ready for the
// provider. Limit and Offset are filled in by the paginator at the HTTP
// layer.
type Query struct {
	Q            string
	Type         string
	OrderBy      string
	Court        string
	Judge        string
	CaseName     string
	DocketNumber string
	Status       string
	FiledAfter   *time.Time
	FiledBefore  *time.Time
	CitedGt      *int64
	CitedLt      *int64
	Limit        int
	Offset       int
}

// Result is one search hit. Opinion results carry cluster fields; docket
// results leave the citation fields zeroed.
type Result struct {
	ID            string     `json:"id"`
	ResultType    string     `json:"result_type"`
	CaseName      string     `json:"case_name"`
	CourtID       string     `json:"court_id"`
	Court         string     `json:"court"`
	DocketID      string     `json:"docket_id"`
	DocketNumber  string     `json:"docket_number"`
	Judge         string     `json:"judge"`
	Status        string     `json:"status"`
	DateFiled     *time.Time `json:"date_filed"`
	CitationCount int64      `json:"citation_count"`
	Snippet       string     `json:"snippet"`
	AbsoluteURL   string     `json:"absolute_url"`
}
