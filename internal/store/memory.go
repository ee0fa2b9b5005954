package store

import (
	"context"
	"sort"
	"sync"

	"github.com/lord-charite/blogApp/internal/document"
)

// Memory is the fallback backend used when no database is reachable.
// Documents live in a slice so insertion order is the natural order.
type Memory struct {
	mu   sync.RWMutex
	docs []document.Document
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Insert(ctx context.Context, doc document.Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs = append(m.docs, doc)
	return nil
}

func (m *Memory) FindByPermalink(ctx context.Context, permalink string) (document.Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, d := range m.docs {
		if d.Permalink == permalink {
			return d, nil
		}
	}
	return document.Document{}, ErrNotFound
}

func (m *Memory) FindByBlogAndKind(ctx context.Context, blog string, kind document.Kind, opts ...FindOption) ([]document.Document, error) {
	o := applyOptions(opts)

	m.mu.RLock()
	var out []document.Document
	for _, d := range m.docs {
		if d.BlogName == blog && d.Kind == kind {
			out = append(out, d)
		}
	}
	m.mu.RUnlock()

	if o.sortByTimestamp {
		sort.SliceStable(out, func(i, j int) bool {
			if o.descending {
				return out[i].Timestamp > out[j].Timestamp
			}
			return out[i].Timestamp < out[j].Timestamp
		})
	}
	return out, nil
}

func (m *Memory) FindByParent(ctx context.Context, blog, parentPermalink string) ([]document.Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []document.Document
	for _, d := range m.docs {
		if d.BlogName == blog && d.ParentPermalink == parentPermalink {
			out = append(out, d)
		}
	}
	return out, nil
}

func (m *Memory) Update(ctx context.Context, permalink string, mutate func(*document.Document)) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.docs {
		if m.docs[i].Permalink == permalink {
			mutate(&m.docs[i])
			return nil
		}
	}
	return ErrNotFound
}

func (m *Memory) Blogs(ctx context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	seen := make(map[string]bool)
	var blogs []string
	for _, d := range m.docs {
		if !seen[d.BlogName] {
			seen[d.BlogName] = true
			blogs = append(blogs, d.BlogName)
		}
	}
	sort.Strings(blogs)
	return blogs, nil
}

func (m *Memory) Close(ctx context.Context) error {
	return nil
}
