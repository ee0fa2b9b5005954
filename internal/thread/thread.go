// Package thread groups a blog's documents into a displayable shape:
// posts ordered newest-first and comments grouped under their parent.
package thread

import (
	"sort"

	"github.com/lord-charite/blogApp/internal/document"
)

// Thread holds one blog's posts plus every comment keyed by its
// parent's permalink. A comment's own replies live under the comment's
// permalink, which is what makes arbitrarily deep nesting work.
type Thread struct {
	Posts    []document.Document
	ByParent map[string][]document.Document
}

// Assemble orders posts by timestamp descending and comments by
// timestamp ascending within each parent group. Both sorts are stable,
// so ties keep insertion order. Inputs must already be in insertion
// order, which is how the store returns them.
func Assemble(posts, comments []document.Document) Thread {
	ordered := make([]document.Document, len(posts))
	copy(ordered, posts)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Timestamp > ordered[j].Timestamp
	})

	sorted := make([]document.Document, len(comments))
	copy(sorted, comments)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp < sorted[j].Timestamp
	})

	byParent := make(map[string][]document.Document)
	for _, c := range sorted {
		byParent[c.ParentPermalink] = append(byParent[c.ParentPermalink], c)
	}

	return Thread{Posts: ordered, ByParent: byParent}
}
