// Package migrations embeds the SQL migration files for Postgres.
package migrations

import "embed"

// FS contains the versioned goose migrations.
//
//go:embed sql/*.sql
var FS embed.FS

// Dir is the directory within FS where the migrations live.
const Dir = "sql"
