package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lord-charite/blogApp/internal/document"
)

func TestMemoryInsertAndFind(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	err := m.Insert(ctx, document.Document{
		Kind:      document.KindPost,
		BlogName:  "blog1",
		UserName:  "alice",
		Title:     "Hello",
		Body:      "First post",
		Permalink: "blog1.Hello",
		Timestamp: "1000",
	})
	require.NoError(t, err)

	got, err := m.FindByPermalink(ctx, "blog1.Hello")
	require.NoError(t, err)
	require.Equal(t, "First post", got.Body)

	_, err = m.FindByPermalink(ctx, "blog1.Missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryDuplicatePermalinksFirstMatch(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	require.NoError(t, m.Insert(ctx, document.Document{
		Kind: document.KindPost, BlogName: "blog1", Body: "first",
		Permalink: "blog1.Dup", Timestamp: "1000",
	}))
	require.NoError(t, m.Insert(ctx, document.Document{
		Kind: document.KindPost, BlogName: "blog1", Body: "second",
		Permalink: "blog1.Dup", Timestamp: "2000",
	}))

	got, err := m.FindByPermalink(ctx, "blog1.Dup")
	require.NoError(t, err)
	require.Equal(t, "first", got.Body)

	// Update binds to the first inserted match too.
	require.NoError(t, m.Update(ctx, "blog1.Dup", func(d *document.Document) {
		d.Body = "mutated"
	}))
	got, err = m.FindByPermalink(ctx, "blog1.Dup")
	require.NoError(t, err)
	require.Equal(t, "mutated", got.Body)

	docs, err := m.FindByBlogAndKind(ctx, "blog1", document.KindPost)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	require.Equal(t, "second", docs[1].Body)
}

func TestMemoryFindByBlogAndKind(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	require.NoError(t, m.Insert(ctx, document.Document{
		Kind: document.KindPost, BlogName: "blog1", Permalink: "p1", Timestamp: "2000",
	}))
	require.NoError(t, m.Insert(ctx, document.Document{
		Kind: document.KindComment, BlogName: "blog1", Permalink: "1001",
		ParentPermalink: "p1", Timestamp: "1001",
	}))
	require.NoError(t, m.Insert(ctx, document.Document{
		Kind: document.KindPost, BlogName: "blog1", Permalink: "p2", Timestamp: "1000",
	}))
	require.NoError(t, m.Insert(ctx, document.Document{
		Kind: document.KindPost, BlogName: "blog2", Permalink: "p3", Timestamp: "3000",
	}))

	// Insertion order by default
	posts, err := m.FindByBlogAndKind(ctx, "blog1", document.KindPost)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	require.Equal(t, "p1", posts[0].Permalink)
	require.Equal(t, "p2", posts[1].Permalink)

	// Timestamp descending on request
	posts, err = m.FindByBlogAndKind(ctx, "blog1", document.KindPost, SortByTimestamp(true))
	require.NoError(t, err)
	require.Equal(t, "p1", posts[0].Permalink)
	require.Equal(t, "p2", posts[1].Permalink)

	// Timestamp ascending
	posts, err = m.FindByBlogAndKind(ctx, "blog1", document.KindPost, SortByTimestamp(false))
	require.NoError(t, err)
	require.Equal(t, "p2", posts[0].Permalink)
}

func TestMemoryFindByParent(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	require.NoError(t, m.Insert(ctx, document.Document{
		Kind: document.KindComment, BlogName: "blog1", Permalink: "1001",
		ParentPermalink: "p1", Timestamp: "1001",
	}))
	require.NoError(t, m.Insert(ctx, document.Document{
		Kind: document.KindComment, BlogName: "blog1", Permalink: "1002",
		ParentPermalink: "1001", Timestamp: "1002",
	}))

	replies, err := m.FindByParent(ctx, "blog1", "1001")
	require.NoError(t, err)
	require.Len(t, replies, 1)
	require.Equal(t, "1002", replies[0].Permalink)
}

func TestMemoryUpdateNotFound(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	err := m.Update(ctx, "nope", func(d *document.Document) {})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryBlogs(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	require.NoError(t, m.Insert(ctx, document.Document{Kind: document.KindPost, BlogName: "zeta", Permalink: "z", Timestamp: "1"}))
	require.NoError(t, m.Insert(ctx, document.Document{Kind: document.KindPost, BlogName: "alpha", Permalink: "a", Timestamp: "2"}))
	require.NoError(t, m.Insert(ctx, document.Document{Kind: document.KindPost, BlogName: "zeta", Permalink: "z2", Timestamp: "3"}))

	blogs, err := m.Blogs(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"alpha", "zeta"}, blogs)
}
