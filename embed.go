package smartgym

import "embed"

// MigrationsFS holds the per-driver SQL migrations applied at startup.
//
//go:embed migrations/sqlite/*.sql migrations/postgres/*.sql
var MigrationsFS embed.FS
