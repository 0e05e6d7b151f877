// Package migrations embeds the goose schema migrations for every supported
// database. Each dialect lives in its own directory so that column types can
// follow the engine.
package migrations

import "embed"

// Directories inside FS, one per dialect.
const (
	PostgresDir = "postgres"
	SQLiteDir   = "sqlite"
)

//go:embed postgres/*.sql sqlite/*.sql
var FS embed.FS
