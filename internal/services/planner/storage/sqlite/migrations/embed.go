package migrations

import "embed"

// FS contains embedded SQLite migrations for planner storage.
//
//go:embed *.sql
var FS embed.FS
