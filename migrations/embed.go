// Package migrations embeds the versioned Postgres schema files so binaries
// can migrate without shipping the directory.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
