// internal/parser/parser.go
package parser

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMalformed      = errors.New("malformed command")
	ErrUnknownCommand = errors.New("unknown command")
)

// Name identifies the command keyword of a parsed line.
type Name string

const (
	CmdPost    Name = "post"
	CmdComment Name = "comment"
	CmdDelete  Name = "delete"
	CmdShow    Name = "show"
	CmdFind    Name = "find"
)

// Command is one parsed input line. Only the fields relevant to the
// command's Name are populated.
type Command struct {
	Name       Name
	Blog       string
	Permalink  string // comment/delete target
	User       string
	Title      string // post only
	Body       string
	Tags       []string // post only
	Timestamp  string
	SearchTerm string // find only
}

// ParseLine tokenizes one raw command line. The keyword is
// case-insensitive; free-text fields are double-quoted per the input
// protocol. A parse failure is never fatal to the stream: callers
// report it and move on.
func ParseLine(line string) (Command, error) {
	line = strings.TrimSpace(line)
	keyword, rest := splitField(line)
	if keyword == "" {
		return Command{}, fmt.Errorf("empty line: %w", ErrMalformed)
	}

	switch Name(strings.ToLower(keyword)) {
	case CmdPost:
		return parsePost(rest)
	case CmdComment:
		return parseComment(rest)
	case CmdDelete:
		return parseDelete(rest)
	case CmdShow:
		return parseShow(rest)
	case CmdFind:
		return parseFind(rest)
	default:
		return Command{}, fmt.Errorf("%w: %s", ErrUnknownCommand, keyword)
	}
}

// post <blog> "<user>" "<title>" "<body>" "<tags-csv>" <timestamp>
func parsePost(rest string) (Command, error) {
	blog, rest := splitField(rest)
	user, rest := QuotedString(rest)
	title, rest := QuotedString(rest)
	body, rest := QuotedString(rest)
	tags, timestamp := QuotedString(rest)
	timestamp = strings.TrimSpace(timestamp)

	if blog == "" || timestamp == "" {
		return Command{}, fmt.Errorf("invalid post command format: %w", ErrMalformed)
	}

	return Command{
		Name:      CmdPost,
		Blog:      blog,
		User:      user,
		Title:     title,
		Body:      body,
		Tags:      splitTags(tags),
		Timestamp: timestamp,
	}, nil
}

// comment <blog> <permalink> "<user>" "<body>" <timestamp>
func parseComment(rest string) (Command, error) {
	blog, rest := splitField(rest)
	permalink, rest := splitField(rest)
	user, rest := QuotedString(rest)
	body, timestamp := QuotedString(rest)
	timestamp = strings.TrimSpace(timestamp)

	if blog == "" || permalink == "" || timestamp == "" {
		return Command{}, fmt.Errorf("invalid comment command format: %w", ErrMalformed)
	}

	return Command{
		Name:      CmdComment,
		Blog:      blog,
		Permalink: permalink,
		User:      user,
		Body:      body,
		Timestamp: timestamp,
	}, nil
}

// delete <blog> <permalink> <user> <timestamp> — plain fields, no quoting.
func parseDelete(rest string) (Command, error) {
	blog, rest := splitField(rest)
	permalink, rest := splitField(rest)
	user, timestamp := splitField(rest)
	timestamp = strings.TrimSpace(timestamp)

	if blog == "" || permalink == "" || user == "" || timestamp == "" {
		return Command{}, fmt.Errorf("invalid delete command format: %w", ErrMalformed)
	}

	return Command{
		Name:      CmdDelete,
		Blog:      blog,
		Permalink: permalink,
		User:      user,
		Timestamp: timestamp,
	}, nil
}

// show <blog> — blog name is the trimmed remainder of the line.
func parseShow(rest string) (Command, error) {
	blog := strings.TrimSpace(rest)
	if blog == "" {
		return Command{}, fmt.Errorf("invalid show command format: %w", ErrMalformed)
	}
	return Command{Name: CmdShow, Blog: blog}, nil
}

// find <blog> "<search-term>"
func parseFind(rest string) (Command, error) {
	blog, rest := splitField(rest)
	term, _ := QuotedString(rest)
	if blog == "" || rest == "" {
		return Command{}, fmt.Errorf("invalid find command format: %w", ErrMalformed)
	}
	return Command{Name: CmdFind, Blog: blog, SearchTerm: term}, nil
}

// QuotedString consumes a leading double-quoted segment and returns
// its content plus the trimmed remainder. When the text does not start
// with a quote it returns an empty string and the trimmed original, so
// chained extractions degrade the same way the protocol expects.
func QuotedString(s string) (content, rest string) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, `"`) {
		return "", s
	}
	end := strings.Index(s[1:], `"`)
	if end < 0 {
		return "", s
	}
	return s[1 : end+1], strings.TrimSpace(s[end+2:])
}

// splitField returns the first whitespace-delimited field and the rest.
func splitField(s string) (field, rest string) {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, " \t"); i >= 0 {
		return s[:i], strings.TrimSpace(s[i+1:])
	}
	return s, ""
}

func splitTags(csv string) []string {
	if csv == "" {
		return nil
	}
	parts := strings.Split(csv, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		tags = append(tags, strings.TrimSpace(p))
	}
	return tags
}
