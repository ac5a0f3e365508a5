package migrations

import "embed"

// Migrations holds the SQL migration files, compiled into the binary so the
// service can bring its own schema up to date at startup.
//
//go:embed *.sql
var Migrations embed.FS
