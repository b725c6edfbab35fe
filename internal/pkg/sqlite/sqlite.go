// Package sqlite registers the pure Go sqlite driver under the "sqlite3" name used by ent,
// with foreign keys enabled on every connection.
package sqlite

import (
	"database/sql"
	"database/sql/driver"
	"fmt"

	"modernc.org/sqlite"
)

type execer interface {
	Exec(stmt string, args []driver.Value) (driver.Result, error)
}

type sqliteDriver struct {
	*sqlite.Driver
}

func (d sqliteDriver) Open(name string) (driver.Conn, error) {
	conn, err := d.Driver.Open(name)
	if err != nil {
		return conn, err
	}

	c, ok := conn.(execer)
	if !ok {
		_ = conn.Close()
		return nil, fmt.Errorf("sqlite: connection %T does not support exec", conn)
	}

	if _, err := c.Exec("PRAGMA foreign_keys = on;", nil); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("sqlite: enable foreign keys: %w", err)
	}

	return conn, nil
}

//nolint:gochecknoinits // driver registration.
func init() {
	sql.Register("sqlite3", sqliteDriver{Driver: &sqlite.Driver{}})
}
