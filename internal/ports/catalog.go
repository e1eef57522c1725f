package ports

import "context"

// Catalog reads schema metadata from an open database.
type Catalog interface {
	ListTables(ctx context.Context) ([]string, error)
	Close() error
}

// CatalogOpener opens a read connection to a database file.
type CatalogOpener interface {
	Open(ctx context.Context, path string) (Catalog, error)
}
