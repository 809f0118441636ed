package sqlite

import "database/sql"

// nullIfEmpty maps an optional id to its SQL value: empty string means NULL.
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// strPtr converts a scanned nullable column to an optional string.
func strPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	v := ns.String
	return &v
}
