// Package sqlitecatalog reads table metadata from SQLite database files
// through the pure-Go modernc.org/sqlite driver.
package sqlitecatalog

import (
	"context"
	"database/sql"
	"net/url"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver registration

	"github.com/Kedar1021/to-do-app/internal/domain"
	"github.com/Kedar1021/to-do-app/internal/ports"
)

const listTablesQuery = "SELECT name FROM sqlite_master WHERE type='table'"

// Opener opens database files read-only so an inspection can never create or modify one.
type Opener struct{}

func NewOpener() *Opener {
	return &Opener{}
}

var _ ports.CatalogOpener = (*Opener)(nil)

func (o *Opener) Open(ctx context.Context, path string) (ports.Catalog, error) {
	db, err := sql.Open("sqlite", dsn(path))
	if err != nil {
		return nil, &domain.OpError{
			Op:   "sqlitecatalog.open",
			Kind: domain.KindQueryFailure,
			Path: path,
			Err:  err,
		}
	}
	db.SetMaxOpenConns(1)

	// sql.Open is lazy; make connection failures surface here rather than on the first query.
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, &domain.OpError{
			Op:   "sqlitecatalog.open",
			Kind: domain.KindQueryFailure,
			Path: path,
			Err:  err,
		}
	}

	return &Catalog{db: db, path: path}, nil
}

// Catalog is an open read connection to one database file.
type Catalog struct {
	db   *sql.DB
	path string
}

var _ ports.Catalog = (*Catalog)(nil)

// ListTables returns table names in the order sqlite_master yields them.
func (c *Catalog) ListTables(ctx context.Context) ([]string, error) {
	rows, err := c.db.QueryContext(ctx, listTablesQuery)
	if err != nil {
		return nil, c.queryErr(err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, c.queryErr(err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, c.queryErr(err)
	}
	return names, nil
}

func (c *Catalog) Close() error {
	return c.db.Close()
}

func (c *Catalog) queryErr(err error) error {
	return &domain.OpError{
		Op:   "sqlitecatalog.list_tables",
		Kind: domain.KindQueryFailure,
		Path: c.path,
		Err:  err,
	}
}

// dsn renders path as a read-only SQLite URI. The path is escaped so that
// '#', '?' and '%' in file names stay part of the name.
func dsn(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	p := filepath.ToSlash(path)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	u := url.URL{Scheme: "file", Path: p, RawQuery: "mode=ro"}
	return u.String()
}
