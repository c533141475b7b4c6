// Package migrations ships the schema as forward-only SQL files compiled
// into the binary. There are no down migrations.
package migrations

import "embed"

//go:embed *.sql
var Files embed.FS
