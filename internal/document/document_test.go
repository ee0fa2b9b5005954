// internal/document/document_test.go
package document

import "testing"

func TestDeletionMarker(t *testing.T) {
	if got := DeletionMarker(KindPost); got != "**post deleted**" {
		t.Errorf("expected **post deleted**, got %q", got)
	}
	if got := DeletionMarker(KindComment); got != "**comment deleted**" {
		t.Errorf("expected **comment deleted**, got %q", got)
	}
}

func TestMarkDeleted(t *testing.T) {
	d := Document{
		Kind: KindComment, BlogName: "blog1", UserName: "bob",
		Body: "Nice!", Permalink: "1001", ParentPermalink: "p1", Timestamp: "1001",
	}

	d.MarkDeleted("alice", "1002")

	if !d.Deleted() {
		t.Error("expected document to report deleted")
	}
	if d.Body != "**comment deleted**" {
		t.Errorf("expected marker body, got %q", d.Body)
	}
	if d.DeletedBy != "alice" || d.DeletedAt != "1002" {
		t.Errorf("deletion fields not set: %+v", d)
	}
	// Structure survives
	if d.ParentPermalink != "p1" || d.Permalink != "1001" {
		t.Errorf("structural fields changed: %+v", d)
	}
}
