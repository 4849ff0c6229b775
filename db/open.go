// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/voting-registry/cliparse"
)

// SQLite connection pragmas applied to every connection in the pool
var sqlitePragmas = []string{
	"_pragma=foreign_keys(1)",
	"_pragma=busy_timeout(5000)",
}

// Open connects to the configured database and verifies the connection.
// SQLite pools are limited to a single connection so writers serialize
// instead of failing with SQLITE_BUSY.
func Open(ctx context.Context, databaseType, url string) (*sql.DB, error) {
	var (
		conn *sql.DB
		err  error
	)

	switch databaseType {
	case cliparse.DatabasePostgres:
		conn, err = sql.Open("postgres", url)
	case cliparse.DatabaseSQLite:
		conn, err = sql.Open("sqlite", SQLiteDSN(url))
		if err == nil {
			conn.SetMaxOpenConns(1)
		}
	default:
		return nil, fmt.Errorf("unsupported database type %q", databaseType)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", databaseType, err)
	}

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", databaseType, err)
	}

	return conn, nil
}

// SQLiteDSN appends the connection pragmas to a SQLite file name or URI
func SQLiteDSN(url string) string {
	sep := "?"
	if strings.Contains(url, "?") {
		sep = "&"
	}
	return url + sep + strings.Join(sqlitePragmas, "&")
}
