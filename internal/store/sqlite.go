package store

import (
	"context"
	"database/sql"
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"github.com/lord-charite/blogApp/internal/database"
	"github.com/lord-charite/blogApp/internal/document"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// SQLite persists documents in a local database file. Rows are keyed
// by an autoincrement id, so id order is insertion order.
type SQLite struct {
	db *database.DB
}

func NewSQLite(db *database.DB) *SQLite {
	return &SQLite{db: db}
}

const docColumns = `kind, blogname, username, title, body, permalink, parent_permalink, tags, timestamp, deleted_by, deleted_at`

func (s *SQLite) Insert(ctx context.Context, doc document.Document) error {
	tags, err := encodeTags(doc.Tags)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(
		`INSERT INTO documents (`+docColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		doc.Kind, doc.BlogName, doc.UserName, doc.Title, doc.Body,
		doc.Permalink, doc.ParentPermalink, tags, doc.Timestamp,
		doc.DeletedBy, doc.DeletedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert document: %w", err)
	}
	return nil
}

func (s *SQLite) FindByPermalink(ctx context.Context, permalink string) (document.Document, error) {
	row := s.db.QueryRow(
		`SELECT `+docColumns+` FROM documents WHERE permalink = ? ORDER BY id LIMIT 1`,
		permalink,
	)
	doc, err := scanDocument(row)
	if err == sql.ErrNoRows {
		return document.Document{}, ErrNotFound
	}
	return doc, err
}

func (s *SQLite) FindByBlogAndKind(ctx context.Context, blog string, kind document.Kind, opts ...FindOption) ([]document.Document, error) {
	o := applyOptions(opts)
	order := "ORDER BY id"
	if o.sortByTimestamp {
		// id as secondary key keeps ties in insertion order
		if o.descending {
			order = "ORDER BY timestamp DESC, id"
		} else {
			order = "ORDER BY timestamp ASC, id"
		}
	}

	rows, err := s.db.Query(
		`SELECT `+docColumns+` FROM documents WHERE blogname = ? AND kind = ? `+order,
		blog, kind,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectDocuments(rows)
}

func (s *SQLite) FindByParent(ctx context.Context, blog, parentPermalink string) ([]document.Document, error) {
	rows, err := s.db.Query(
		`SELECT `+docColumns+` FROM documents WHERE blogname = ? AND parent_permalink = ? ORDER BY id`,
		blog, parentPermalink,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectDocuments(rows)
}

func (s *SQLite) Update(ctx context.Context, permalink string, mutate func(*document.Document)) error {
	var id int64
	err := s.db.QueryRow(
		`SELECT id FROM documents WHERE permalink = ? ORDER BY id LIMIT 1`,
		permalink,
	).Scan(&id)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	row := s.db.QueryRow(`SELECT `+docColumns+` FROM documents WHERE id = ?`, id)
	doc, err := scanDocument(row)
	if err != nil {
		return err
	}

	mutate(&doc)

	tags, err := encodeTags(doc.Tags)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(
		`UPDATE documents SET kind = ?, blogname = ?, username = ?, title = ?, body = ?,
		 permalink = ?, parent_permalink = ?, tags = ?, timestamp = ?, deleted_by = ?, deleted_at = ?
		 WHERE id = ?`,
		doc.Kind, doc.BlogName, doc.UserName, doc.Title, doc.Body,
		doc.Permalink, doc.ParentPermalink, tags, doc.Timestamp,
		doc.DeletedBy, doc.DeletedAt, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update document: %w", err)
	}
	return nil
}

func (s *SQLite) Blogs(ctx context.Context) ([]string, error) {
	rows, err := s.db.Query(`SELECT DISTINCT blogname FROM documents ORDER BY blogname`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var blogs []string
	for rows.Next() {
		var b string
		if err := rows.Scan(&b); err != nil {
			return nil, err
		}
		blogs = append(blogs, b)
	}
	return blogs, rows.Err()
}

func (s *SQLite) Close(ctx context.Context) error {
	return s.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row rowScanner) (document.Document, error) {
	var d document.Document
	var tags string
	err := row.Scan(&d.Kind, &d.BlogName, &d.UserName, &d.Title, &d.Body,
		&d.Permalink, &d.ParentPermalink, &tags, &d.Timestamp,
		&d.DeletedBy, &d.DeletedAt)
	if err != nil {
		return document.Document{}, err
	}
	if tags != "" {
		if err := json.Unmarshal([]byte(tags), &d.Tags); err != nil {
			return document.Document{}, fmt.Errorf("failed to decode tags: %w", err)
		}
	}
	return d, nil
}

func collectDocuments(rows *sql.Rows) ([]document.Document, error) {
	var docs []document.Document
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

func encodeTags(tags []string) (string, error) {
	if len(tags) == 0 {
		return "", nil
	}
	data, err := json.Marshal(tags)
	if err != nil {
		return "", fmt.Errorf("failed to encode tags: %w", err)
	}
	return string(data), nil
}
