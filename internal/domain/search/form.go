package search

import (
	"fmt"
	"strconv"
	"time"
)

// Result type codes accepted by the form.
const (
	TypeOpinion = "o"
	TypeDocket  = "r"
)

// Orderings accepted by the form.
var validOrderings = map[string]bool{
	"date_filed desc":     true,
	"date_filed asc":      true,
	"citation_count desc": true,
	"citation_count asc":  true,
	"case_name asc":       true,
}

// DefaultOrdering is applied when the form carries no order_by value.
const DefaultOrdering = "date_filed desc"

const dateLayout = "2006-01-02"

// Form holds the raw query parameters of a search request before cleaning.
type Form struct {
	Q            string
	Type         string
	OrderBy      string
	Court        string
	Judge        string
	CaseName     string
	DocketNumber string
	FiledAfter   string
	FiledBefore  string
	CitedGt      string
	CitedLt      string
	Status       string
}

// FieldErrors maps a form field to its validation messages. A non-empty map
// is rendered as the body of a 400 response.
type FieldErrors map[string][]string

func (e FieldErrors) add(field, message string) {
	e[field] = append(e[field], message)
}

// Clean validates and converts the raw form values. It returns the typed
// query when the form is valid, or the field-level errors when it is not.
// An empty q is rewritten to "*" to match everything.
func (f *Form) Clean() (*Query, FieldErrors) {
	errs := FieldErrors{}
	query := &Query{
		Q:            f.Q,
		Type:         f.Type,
		OrderBy:      f.OrderBy,
		Court:        f.Court,
		Judge:        f.Judge,
		CaseName:     f.CaseName,
		DocketNumber: f.DocketNumber,
		Status:       f.Status,
	}

	if query.Q == "" {
		query.Q = "*" // Get everything
	}

	if query.Type == "" {
		query.Type = TypeOpinion
	} else if query.Type != TypeOpinion && query.Type != TypeDocket {
		errs.add("type", fmt.Sprintf("%q is not a valid search type", f.Type))
	}

	if query.OrderBy == "" {
		query.OrderBy = DefaultOrdering
	} else if !validOrderings[query.OrderBy] {
		errs.add("order_by", fmt.Sprintf("%q is not a valid ordering", f.OrderBy))
	}

	if f.Status != "" {
		switch f.Status {
		case "Published", "Unpublished", "Errata", "In-chambers":
		default:
			errs.add("status", fmt.Sprintf("%q is not a valid status", f.Status))
		}
	}

	query.FiledAfter = cleanDate(errs, "filed_after", f.FiledAfter)
	query.FiledBefore = cleanDate(errs, "filed_before", f.FiledBefore)
	query.CitedGt = cleanCount(errs, "cited_gt", f.CitedGt)
	query.CitedLt = cleanCount(errs, "cited_lt", f.CitedLt)

	if query.FiledAfter != nil && query.FiledBefore != nil &&
		query.FiledAfter.After(*query.FiledBefore) {
		errs.add("filed_after", "filed_after must not be later than filed_before")
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return query, nil
}

func cleanDate(errs FieldErrors, field, raw string) *time.Time {
	if raw == "" {
		return nil
	}
	parsed, err := time.Parse(dateLayout, raw)
	if err != nil {
		errs.add(field, fmt.Sprintf("%q is not a valid date, expected YYYY-MM-DD", raw))
		return nil
	}
	return &parsed
}

func cleanCount(errs FieldErrors, field, raw string) *int64 {
	if raw == "" {
		return nil
	}
	parsed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || parsed < 0 {
		errs.add(field, fmt.Sprintf("%q is not a valid non-negative integer", raw))
		return nil
	}
	return &parsed
}
