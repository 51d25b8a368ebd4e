package persistence

import (
	"fmt"

	"gorm.io/gorm"
)

// applyOrdering appends an ORDER BY clause for a whitelisted sort column.
// Callers validate sortBy against the per-resource whitelist before this
// runs, so interpolation is safe.
func applyOrdering(dbQuery *gorm.DB, sortBy, sortOrder string) *gorm.DB {
	if sortBy == "" {
		return dbQuery
	}
	order := sortOrder
	if order == "" {
		order = "asc"
	}
	return dbQuery.Order(fmt.Sprintf("%s %s", sortBy, order))
}

// applyPagination appends LIMIT/OFFSET clauses when set.
func applyPagination(dbQuery *gorm.DB, limit, offset int) *gorm.DB {
	if limit > 0 {
		dbQuery = dbQuery.Limit(limit)
	}
	if offset > 0 {
		dbQuery = dbQuery.Offset(offset)
	}
	return dbQuery
}
