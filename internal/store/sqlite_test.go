// internal/store/sqlite_test.go
package store

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/lord-charite/blogApp/internal/database"
	"github.com/lord-charite/blogApp/internal/document"
)

func setupTestStore(t *testing.T) *SQLite {
	tmpDir := t.TempDir()
	db, err := database.New(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewSQLite(db)
}

func TestSQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := setupTestStore(t)

	doc := document.Document{
		Kind:      document.KindPost,
		BlogName:  "blog1",
		UserName:  "alice",
		Title:     "Hello World",
		Body:      "First post",
		Permalink: "blog1.Hello_World",
		Tags:      []string{"go", "testing"},
		Timestamp: "1000",
	}
	if err := s.Insert(ctx, doc); err != nil {
		t.Fatalf("failed to insert: %v", err)
	}

	got, err := s.FindByPermalink(ctx, "blog1.Hello_World")
	if err != nil {
		t.Fatalf("failed to find: %v", err)
	}
	if !reflect.DeepEqual(got, doc) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, doc)
	}
}

func TestSQLiteFindMissing(t *testing.T) {
	ctx := context.Background()
	s := setupTestStore(t)

	if _, err := s.FindByPermalink(ctx, "blog1.Missing"); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if err := s.Update(ctx, "blog1.Missing", func(d *document.Document) {}); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSQLiteUpdate(t *testing.T) {
	ctx := context.Background()
	s := setupTestStore(t)

	doc := document.Document{
		Kind: document.KindPost, BlogName: "blog1", UserName: "alice",
		Title: "Hello", Body: "First post", Permalink: "blog1.Hello", Timestamp: "1000",
	}
	if err := s.Insert(ctx, doc); err != nil {
		t.Fatalf("failed to insert: %v", err)
	}

	err := s.Update(ctx, "blog1.Hello", func(d *document.Document) {
		d.MarkDeleted("alice", "1003")
	})
	if err != nil {
		t.Fatalf("failed to update: %v", err)
	}

	got, err := s.FindByPermalink(ctx, "blog1.Hello")
	if err != nil {
		t.Fatalf("failed to find: %v", err)
	}
	if got.Body != "**post deleted**" {
		t.Errorf("expected deletion marker, got %q", got.Body)
	}
	if got.DeletedBy != "alice" || got.DeletedAt != "1003" {
		t.Errorf("deletion fields not set: %+v", got)
	}
	if got.Title != "Hello" || got.Timestamp != "1000" {
		t.Errorf("unrelated fields changed: %+v", got)
	}
}

func TestSQLiteScanOrdering(t *testing.T) {
	ctx := context.Background()
	s := setupTestStore(t)

	docs := []document.Document{
		{Kind: document.KindPost, BlogName: "blog1", Permalink: "p1", Timestamp: "2000"},
		{Kind: document.KindPost, BlogName: "blog1", Permalink: "p2", Timestamp: "1000"},
		{Kind: document.KindPost, BlogName: "blog1", Permalink: "p3", Timestamp: "2000"},
	}
	for _, d := range docs {
		if err := s.Insert(ctx, d); err != nil {
			t.Fatalf("failed to insert: %v", err)
		}
	}

	// Default scan: insertion order
	got, err := s.FindByBlogAndKind(ctx, "blog1", document.KindPost)
	if err != nil {
		t.Fatalf("failed to scan: %v", err)
	}
	if got[0].Permalink != "p1" || got[1].Permalink != "p2" || got[2].Permalink != "p3" {
		t.Errorf("expected insertion order, got %v", permalinks(got))
	}

	// Descending with ties kept in insertion order
	got, err = s.FindByBlogAndKind(ctx, "blog1", document.KindPost, SortByTimestamp(true))
	if err != nil {
		t.Fatalf("failed to scan sorted: %v", err)
	}
	if got[0].Permalink != "p1" || got[1].Permalink != "p3" || got[2].Permalink != "p2" {
		t.Errorf("expected [p1 p3 p2], got %v", permalinks(got))
	}
}

func TestSQLiteFindByParent(t *testing.T) {
	ctx := context.Background()
	s := setupTestStore(t)

	if err := s.Insert(ctx, document.Document{
		Kind: document.KindComment, BlogName: "blog1", Permalink: "1001",
		ParentPermalink: "blog1.Hello", Timestamp: "1001",
	}); err != nil {
		t.Fatalf("failed to insert: %v", err)
	}

	replies, err := s.FindByParent(ctx, "blog1", "blog1.Hello")
	if err != nil {
		t.Fatalf("failed to find by parent: %v", err)
	}
	if len(replies) != 1 || replies[0].Permalink != "1001" {
		t.Errorf("expected one reply with permalink 1001, got %v", permalinks(replies))
	}
}

func TestSQLiteBlogs(t *testing.T) {
	ctx := context.Background()
	s := setupTestStore(t)

	for _, blog := range []string{"zeta", "alpha", "zeta"} {
		if err := s.Insert(ctx, document.Document{
			Kind: document.KindPost, BlogName: blog, Permalink: blog + ".p", Timestamp: "1",
		}); err != nil {
			t.Fatalf("failed to insert: %v", err)
		}
	}

	blogs, err := s.Blogs(ctx)
	if err != nil {
		t.Fatalf("failed to list blogs: %v", err)
	}
	if !reflect.DeepEqual(blogs, []string{"alpha", "zeta"}) {
		t.Errorf("expected [alpha zeta], got %v", blogs)
	}
}

func permalinks(docs []document.Document) []string {
	out := make([]string, len(docs))
	for i, d := range docs {
		out[i] = d.Permalink
	}
	return out
}
