package thread

import (
	"sort"
	"strings"

	"github.com/lord-charite/blogApp/internal/document"
)

// FindResult is the filtered counterpart of Thread. Posts hold the
// posts whose body or tags contain the term; ByParent groups only the
// matching comments, so trees rooted at a matched post show matching
// reply chains. Standalone lists matching comments not reachable from
// any matched post.
type FindResult struct {
	Posts      []document.Document
	ByParent   map[string][]document.Document
	Standalone []document.Document
}

// Filter runs two independent matching passes over a blog's documents:
// posts match on body or tags, comments match on body. Matches are
// exact substrings, case-sensitive. A matching comment attaches to a
// matched post only through a chain of matching comments; everything
// else surfaces in Standalone, timestamp ascending.
func Filter(posts, comments []document.Document, term string) FindResult {
	var matched []document.Document
	for _, p := range posts {
		if postMatches(p, term) {
			matched = append(matched, p)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Timestamp > matched[j].Timestamp
	})

	var matching []document.Document
	for _, c := range comments {
		if strings.Contains(c.Body, term) {
			matching = append(matching, c)
		}
	}
	sort.SliceStable(matching, func(i, j int) bool {
		return matching[i].Timestamp < matching[j].Timestamp
	})

	byParent := make(map[string][]document.Document)
	for _, c := range matching {
		byParent[c.ParentPermalink] = append(byParent[c.ParentPermalink], c)
	}

	attached := make(map[string]bool)
	for _, p := range matched {
		markAttached(byParent, p.Permalink, attached)
	}

	var standalone []document.Document
	for _, c := range matching {
		if !attached[c.Permalink] {
			standalone = append(standalone, c)
		}
	}

	return FindResult{Posts: matched, ByParent: byParent, Standalone: standalone}
}

func postMatches(p document.Document, term string) bool {
	if strings.Contains(p.Body, term) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(tag, term) {
			return true
		}
	}
	return false
}

func markAttached(byParent map[string][]document.Document, permalink string, attached map[string]bool) {
	for _, c := range byParent[permalink] {
		if attached[c.Permalink] {
			continue
		}
		attached[c.Permalink] = true
		markAttached(byParent, c.Permalink, attached)
	}
}
