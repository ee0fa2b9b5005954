// Package processor interprets parsed commands against a document
// store and drives thread assembly and rendering for the read
// commands. One command is fully processed before the next line is
// read; no error is fatal to the stream.
package processor

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/lord-charite/blogApp/internal/document"
	"github.com/lord-charite/blogApp/internal/parser"
	"github.com/lord-charite/blogApp/internal/render"
	"github.com/lord-charite/blogApp/internal/store"
	"github.com/lord-charite/blogApp/internal/thread"
)

// permalinkPattern collapses every run of characters outside
// [0-9a-zA-Z] into a single underscore when deriving post permalinks.
var permalinkPattern = regexp.MustCompile(`[^0-9a-zA-Z]+`)

type Processor struct {
	store store.Store
	out   io.Writer
	diag  io.Writer
	log   *zap.Logger
}

// New builds a processor writing rendered views to out and protocol
// diagnostics to diag. The two writers must be distinct streams so
// errors never mix into rendered output. log may be nil.
func New(st store.Store, out, diag io.Writer, log *zap.Logger) *Processor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Processor{store: st, out: out, diag: diag, log: log}
}

// Run interprets one command per line until r is exhausted. Blank
// lines are skipped; malformed or failing commands are reported to the
// diagnostic stream and processing continues.
func (p *Processor) Run(ctx context.Context, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		p.ExecuteLine(ctx, line)
	}
	return scanner.Err()
}

// ExecuteLine parses and executes one line, reporting any error to the
// diagnostic stream.
func (p *Processor) ExecuteLine(ctx context.Context, line string) {
	cmd, err := parser.ParseLine(line)
	if err != nil {
		fmt.Fprintf(p.diag, "Error: %v\n", err)
		return
	}

	if err := p.Execute(ctx, cmd); err != nil {
		fmt.Fprintf(p.diag, "Error: %v\n", err)
	}
}

// Execute applies one parsed command against the store.
func (p *Processor) Execute(ctx context.Context, cmd parser.Command) error {
	p.log.Debug("executing command",
		zap.String("command", string(cmd.Name)),
		zap.String("blog", cmd.Blog))

	switch cmd.Name {
	case parser.CmdPost:
		return p.post(ctx, cmd)
	case parser.CmdComment:
		return p.comment(ctx, cmd)
	case parser.CmdDelete:
		return p.delete(ctx, cmd)
	case parser.CmdShow:
		return p.show(ctx, cmd)
	case parser.CmdFind:
		return p.find(ctx, cmd)
	default:
		return fmt.Errorf("%w: %s", parser.ErrUnknownCommand, cmd.Name)
	}
}

// post derives the permalink from the blog name and sanitized title.
// Duplicate permalinks are not rejected; lookups bind to the first
// inserted document.
func (p *Processor) post(ctx context.Context, cmd parser.Command) error {
	doc := document.Document{
		Kind:      document.KindPost,
		BlogName:  cmd.Blog,
		UserName:  cmd.User,
		Title:     cmd.Title,
		Body:      cmd.Body,
		Permalink: PostPermalink(cmd.Blog, cmd.Title),
		Tags:      cmd.Tags,
		Timestamp: cmd.Timestamp,
	}
	return p.store.Insert(ctx, doc)
}

// comment rejects targets that do not resolve; otherwise the comment's
// own permalink is its timestamp, so later replies can address it.
func (p *Processor) comment(ctx context.Context, cmd parser.Command) error {
	parent, err := p.store.FindByPermalink(ctx, cmd.Permalink)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("no post or comment found with permalink: %s", cmd.Permalink)
		}
		return err
	}

	doc := document.Document{
		Kind:            document.KindComment,
		BlogName:        cmd.Blog,
		UserName:        cmd.User,
		Body:            cmd.Body,
		Permalink:       cmd.Timestamp,
		ParentPermalink: parent.Permalink,
		Timestamp:       cmd.Timestamp,
	}
	return p.store.Insert(ctx, doc)
}

// delete soft-deletes: only the body is replaced by the kind-specific
// marker; all other fields survive so the thread keeps its structure.
// Deleting an already-deleted document re-applies the marker fields.
func (p *Processor) delete(ctx context.Context, cmd parser.Command) error {
	err := p.store.Update(ctx, cmd.Permalink, func(d *document.Document) {
		d.MarkDeleted(cmd.User, cmd.Timestamp)
	})
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("no post or comment found with permalink: %s", cmd.Permalink)
	}
	return err
}

func (p *Processor) show(ctx context.Context, cmd parser.Command) error {
	posts, comments, err := p.blogDocuments(ctx, cmd.Blog)
	if err != nil {
		return err
	}
	render.Blog(p.out, cmd.Blog, thread.Assemble(posts, comments))
	return nil
}

func (p *Processor) find(ctx context.Context, cmd parser.Command) error {
	posts, comments, err := p.blogDocuments(ctx, cmd.Blog)
	if err != nil {
		return err
	}
	render.Find(p.out, cmd.Blog, thread.Filter(posts, comments, cmd.SearchTerm))
	return nil
}

func (p *Processor) blogDocuments(ctx context.Context, blog string) (posts, comments []document.Document, err error) {
	posts, err = p.store.FindByBlogAndKind(ctx, blog, document.KindPost)
	if err != nil {
		return nil, nil, err
	}
	comments, err = p.store.FindByBlogAndKind(ctx, blog, document.KindComment)
	if err != nil {
		return nil, nil, err
	}
	return posts, comments, nil
}

// PostPermalink derives a post's permalink from its blog and title.
func PostPermalink(blog, title string) string {
	return blog + "." + permalinkPattern.ReplaceAllString(title, "_")
}
