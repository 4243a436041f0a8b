// Package migrations embeds the SQL schema of the decision engine.
package migrations

import "embed"

// FS holds the up and down scripts read by the golang-migrate iofs driver.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version the service expects.
const Version = 1
