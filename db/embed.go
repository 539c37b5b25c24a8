// Package db carries the SQL migrations that create one Postgres enum type
// per vocabulary enumeration.
package db

import "embed"

//go:embed migrations/*.sql
var Migrations embed.FS

// MigrationsDir is the directory inside Migrations holding the files.
const MigrationsDir = "migrations"
