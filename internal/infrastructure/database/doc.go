// Package database provides SQLite persistence for Autolote Core.
//
// It wraps database/sql with lifecycle management (open at startup, close at
// shutdown), embedded SQL migrations, and health checks. The resulting *DB
// handle is injected into every repository; no package opens its own
// connection.
//
// # Concurrency
//
// SQLite allows one writer at a time. The pool is pinned to a single
// connection and WAL mode is enabled so reads proceed during writes. The
// database is the sole arbiter of write ordering; the application takes no
// locks of its own.
//
// # Usage
//
//	db, err := database.Open(database.Config{Path: "./data/autolote.db", WALMode: true, BusyTimeout: 5})
//	if err != nil {
//	    return err
//	}
//	defer db.Close()
//
//	if err := db.Migrate(ctx); err != nil {
//	    return err
//	}
package database
