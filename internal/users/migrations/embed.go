// Package migrations embeds the SQL schema migrations for the Postgres
// directory backend.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
