package migrations

import "embed"

// FS embeds the SQL migrations of this directory for the iofs source of
// golang-migrate.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version main migrates to.
const Version = 1
