// Package migrations embeds the goose SQL migrations for each SQL dialect.
package migrations

import (
	"embed"
	"io/fs"
)

//go:embed postgres/*.sql sqlite/*.sql
var files embed.FS

// Postgres returns the migrations for the postgres store driver.
func Postgres() fs.FS {
	return mustSub("postgres")
}

// SQLite returns the migrations for the sqlite store driver.
func SQLite() fs.FS {
	return mustSub("sqlite")
}

func mustSub(dir string) fs.FS {
	sub, err := fs.Sub(files, dir)
	if err != nil {
		panic(err)
	}
	return sub
}
