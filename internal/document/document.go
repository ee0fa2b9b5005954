// internal/document/document.go
package document

// Kind tags a document as a post or a comment.
type Kind string

const (
	KindPost    Kind = "post"
	KindComment Kind = "comment"
)

// Document is the single stored entity. Posts and comments share the
// same shape; Kind decides which optional fields are meaningful.
// Field names on the wire match the original blog collection.
type Document struct {
	Kind            Kind     `bson:"kind" json:"kind"`
	BlogName        string   `bson:"blogname" json:"blogname"`
	UserName        string   `bson:"userName" json:"userName"`
	Title           string   `bson:"title,omitempty" json:"title,omitempty"`
	Body            string   `bson:"body" json:"body"`
	Permalink       string   `bson:"permalink" json:"permalink"`
	ParentPermalink string   `bson:"parent_permalink,omitempty" json:"parent_permalink,omitempty"`
	Tags            []string `bson:"tags,omitempty" json:"tags,omitempty"`
	Timestamp       string   `bson:"timestamp" json:"timestamp"`
	DeletedBy       string   `bson:"deleted_by,omitempty" json:"deleted_by,omitempty"`
	DeletedAt       string   `bson:"deleted_at,omitempty" json:"deleted_at,omitempty"`
}

// Deleted reports whether the document has been soft-deleted.
func (d *Document) Deleted() bool {
	return d.DeletedBy != ""
}

// DeletionMarker is the body text a soft-deleted document displays.
func DeletionMarker(k Kind) string {
	return "**" + string(k) + " deleted**"
}

// MarkDeleted replaces the body with the kind-specific marker and
// records who deleted the document and when. Re-applying it on an
// already-deleted document just overwrites the marker fields.
func (d *Document) MarkDeleted(by, at string) {
	d.Body = DeletionMarker(d.Kind)
	d.DeletedBy = by
	d.DeletedAt = at
}
