// Package render writes the human-readable view of a blog: post blocks
// separated by marker lines, with comment blocks indented one level
// deeper per reply. The format is part of the interpreter's output
// protocol, so it stays plain text.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/lord-charite/blogApp/internal/document"
	"github.com/lord-charite/blogApp/internal/thread"
)

// Blog renders every post of a blog with its full comment tree.
func Blog(w io.Writer, blogName string, t thread.Thread) {
	fmt.Fprintf(w, "in %s:\n\n", blogName)

	for _, post := range t.Posts {
		writePost(w, post)
		writeComments(w, t.ByParent, post.Permalink, 1)
		fmt.Fprintln(w)
	}
}

// Find renders the filtered view: matched posts with their matching
// reply chains, then matching comments that had no matched post.
func Find(w io.Writer, blogName string, res thread.FindResult) {
	fmt.Fprintf(w, "in %s:\n\n", blogName)

	for _, post := range res.Posts {
		writePost(w, post)
		writeComments(w, res.ByParent, post.Permalink, 1)
		fmt.Fprintln(w)
	}

	for _, c := range res.Standalone {
		fmt.Fprintln(w, "  - - - -")
		fmt.Fprintf(w, "\tuserName: %s\n", c.UserName)
		fmt.Fprintf(w, "\tpermalink: %s\n", c.Permalink)
		fmt.Fprintf(w, "\tcomment:\n\t  %s\n", bodyOrMarker(c))
		fmt.Fprintln(w)
	}
}

func writePost(w io.Writer, post document.Document) {
	fmt.Fprintln(w, "  - - - -")
	fmt.Fprintf(w, "\ttitle: %s\n", post.Title)
	fmt.Fprintf(w, "\tuserName: %s\n", post.UserName)
	if len(post.Tags) > 0 {
		fmt.Fprintf(w, "\ttags: %s\n", strings.Join(post.Tags, ", "))
	}
	fmt.Fprintf(w, "\ttimestamp: %s\n", post.Timestamp)
	fmt.Fprintf(w, "\tpermalink: %s\n", post.Permalink)
	fmt.Fprintf(w, "\tbody:\n\t  %s\n", bodyOrMarker(post))
}

// writeComments walks the parent-keyed mapping rooted at permalink.
// Recursion ends when a node has no children recorded; the reply graph
// is acyclic because a comment's parent must exist before the comment.
func writeComments(w io.Writer, byParent map[string][]document.Document, permalink string, indent int) {
	pre := strings.Repeat("  ", indent)
	for _, c := range byParent[permalink] {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "%s    - - - -\n", pre)
		fmt.Fprintf(w, "%s\tuserName: %s\n", pre, c.UserName)
		fmt.Fprintf(w, "%s\tpermalink: %s\n", pre, c.Permalink)
		fmt.Fprintf(w, "%s\tcomment:\n%s\t  %s\n", pre, pre, bodyOrMarker(c))
		writeComments(w, byParent, c.Permalink, indent+1)
	}
}

func bodyOrMarker(d document.Document) string {
	if d.Deleted() {
		return document.DeletionMarker(d.Kind)
	}
	return d.Body
}
