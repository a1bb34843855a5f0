// Package source loads the input document and derives the metadata the
// pipeline needs from it: a title, a short excerpt, and the fingerprint
// used as the cache key component.
package source

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

const maxExcerptRunes = 240

// Document is a source document read fully into memory. Immutable after
// Parse.
type Document struct {
	Path        string
	Raw         string
	Title       string
	Excerpt     string
	Fingerprint string
}

// Load reads a document from disk and parses it.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read source file: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("source file %s is empty", path)
	}

	doc := Parse(string(data))
	doc.Path = path
	return doc, nil
}

// Parse builds a Document from raw markdown. The title is the first
// heading, the excerpt is the first paragraph.
func Parse(raw string) *Document {
	src := []byte(raw)
	root := goldmark.New().Parser().Parse(text.NewReader(src))

	var title, excerpt string
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.(type) {
		case *ast.Heading:
			if title == "" {
				title = nodeText(n, src)
			}
		case *ast.Paragraph:
			if excerpt == "" {
				excerpt = truncateRunes(nodeText(n, src), maxExcerptRunes)
			}
		}
		if title != "" && excerpt != "" {
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})

	hash := sha256.Sum256(src)

	return &Document{
		Raw:         raw,
		Title:       title,
		Excerpt:     excerpt,
		Fingerprint: hex.EncodeToString(hash[:]),
	}
}

// nodeText collects the plain text under a node.
func nodeText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	ast.Walk(n, func(child ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if t, ok := child.(*ast.Text); ok {
			buf.Write(t.Segment.Value(src))
			if t.SoftLineBreak() || t.HardLineBreak() {
				buf.WriteByte(' ')
			}
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(buf.String())
}

func truncateRunes(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return strings.TrimRight(string(runes[:max]), " ") + "..."
}
