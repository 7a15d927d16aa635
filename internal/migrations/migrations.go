// Package migrations embeds the goose SQL migrations for the local client
// database (accounts and the active session).
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
