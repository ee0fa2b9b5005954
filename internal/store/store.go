// Package store persists blog documents. The command processor depends
// only on the Store interface; the memory, sqlite, and mongo backends
// are interchangeable.
package store

import (
	"context"
	"errors"

	"github.com/lord-charite/blogApp/internal/document"
)

var ErrNotFound = errors.New("document not found")

// Store is the storage collaborator contract. Scans return documents
// in insertion order unless a sort option says otherwise; permalink
// lookups and updates bind to the first inserted match, so duplicate
// permalinks coexist without breaking resolution.
type Store interface {
	Insert(ctx context.Context, doc document.Document) error
	FindByPermalink(ctx context.Context, permalink string) (document.Document, error)
	FindByBlogAndKind(ctx context.Context, blog string, kind document.Kind, opts ...FindOption) ([]document.Document, error)
	FindByParent(ctx context.Context, blog, parentPermalink string) ([]document.Document, error)
	Update(ctx context.Context, permalink string, mutate func(*document.Document)) error
	Blogs(ctx context.Context) ([]string, error)
	Close(ctx context.Context) error
}

type findOptions struct {
	sortByTimestamp bool
	descending      bool
}

// FindOption adjusts the ordering of FindByBlogAndKind results.
type FindOption func(*findOptions)

// SortByTimestamp orders results by the timestamp field instead of
// insertion order. Ties keep insertion order (stable).
func SortByTimestamp(descending bool) FindOption {
	return func(o *findOptions) {
		o.sortByTimestamp = true
		o.descending = descending
	}
}

func applyOptions(opts []FindOption) findOptions {
	var o findOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
