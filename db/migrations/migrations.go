package migrations

import "embed"

// FS embeds the SQL migration files in this directory. They are applied
// through golang-migrate's iofs source driver at startup.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version the embedded migrations produce.
const Version = 1
