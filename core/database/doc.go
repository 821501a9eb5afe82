// Package database handles relational database connections.
//
// It provides a wrapper around GORM to configure MySQL, PostgreSQL or SQLite connections based on
// the application's configuration. The mock REST server uses it for its database-backed store.
//
// # Connect
//
// Connect builds the driver specific DSN, applies pool settings and verifies the connection with
// a ping bounded by the configured timeout. SQLite connections are limited to a single open
// connection so ":memory:" databases stay shared.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
package database
