// Package store holds the key/value backends that persist list state.
package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/idilsaglam/listkeeper/internal/store/jsonstore"
	"github.com/idilsaglam/listkeeper/internal/store/memstore"
	"github.com/idilsaglam/listkeeper/internal/store/sqlitestore"
)

// Backend is a string key/value store, the moral equivalent of browser storage.
type Backend interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Close() error
}

const (
	KindJSON   = "json"
	KindSQLite = "sqlite"
	KindMemory = "memory"
)

// Kinds lists the accepted backend names.
func Kinds() []string { return []string{KindJSON, KindSQLite, KindMemory} }

// Open returns the backend named kind rooted at dir.
func Open(ctx context.Context, kind, dir string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "", KindJSON:
		return jsonstore.New(dir)
	case KindSQLite:
		return sqlitestore.Open(ctx, dir)
	case KindMemory:
		return memstore.New(), nil
	}
	return nil, fmt.Errorf("unknown storage backend %q (want one of %s)", kind, strings.Join(Kinds(), ", "))
}
