// Package services – QueryCatalog
//
// The previous backend exposed a raw SQL passthrough guarded only by a
// substring denylist, which is trivially bypassable. This file replaces it
// with a fixed catalog of named, parameterized statements: callers select a
// statement by name and supply positional parameters, and anything outside
// the catalog is rejected before touching the database. The denylist endpoint
// shape (403 on rejection) is preserved for client compatibility.
package services

import (
	"context"

	"gorm.io/gorm"
)

// catalogStatement pairs a fixed SQL text with the exact number of positional
// parameters it binds.
type catalogStatement struct {
	sql    string
	params int
}

// queryCatalog is the full set of statements reachable through /api/query.
// Every statement uses bound parameters; caller input is never interpolated
// into SQL text.
var queryCatalog = map[string]catalogStatement{
	"public_strategies": {
		sql:    "SELECT id, name, description, created_at FROM strategies WHERE is_public = ? ORDER BY created_at DESC",
		params: 1,
	},
	"user_by_telegram_id": {
		sql:    "SELECT id, telegram_id, username, first_name, last_name, created_at FROM users WHERE telegram_id = ?",
		params: 1,
	},
	"event_type_counts": {
		sql:    "SELECT event_type, COUNT(*) AS total FROM user_events WHERE telegram_user_id = ? GROUP BY event_type",
		params: 1,
	},
}

// QueryService executes statements from the fixed catalog.
type QueryService struct {
	// DB is the GORM handle used for reads.
	DB *gorm.DB
}

// Execute runs the named catalog statement with the given positional
// parameters and returns the result rows as ordered column/value maps.
// Unknown names and parameter count mismatches yield ErrUnknownStatement; no
// caller-supplied SQL ever reaches the database.
func (s *QueryService) Execute(ctx context.Context, name string, params []interface{}) ([]map[string]interface{}, error) {
	stmt, ok := queryCatalog[name]
	if !ok {
		return nil, ErrUnknownStatement
	}
	if len(params) != stmt.params {
		return nil, ErrUnknownStatement
	}

	var rows []map[string]interface{}
	if err := s.DB.WithContext(ctx).Raw(stmt.sql, params...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []map[string]interface{}{}
	}
	return rows, nil
}

// CatalogNames lists the registered statement names; used by the info
// endpoint so clients can discover what /api/query accepts.
func CatalogNames() []string {
	names := make([]string, 0, len(queryCatalog))
	for n := range queryCatalog {
		names = append(names, n)
	}
	return names
}
