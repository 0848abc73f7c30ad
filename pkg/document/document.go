// Package document builds fixed-width plain-text artifacts for receipts and
// reports. The core treats rendered documents as opaque bytes; this renderer
// is the default sink and can be swapped for any other format.
package document

import (
	"bytes"
	"strings"
)

// DefaultWidth is the character width used for rendered documents.
const DefaultWidth = 72

// Artifact is a rendered document: raw bytes plus the file name it should be
// stored or attached under.
type Artifact struct {
	Filename string
	Data     []byte
}

// Builder assembles a fixed-width text document line by line.
type Builder struct {
	buf   bytes.Buffer
	width int
}

// NewBuilder creates a document builder with the given character width.
func NewBuilder(width int) *Builder {
	if width <= 0 {
		width = DefaultWidth
	}
	return &Builder{width: width}
}

// Line appends a left-aligned line.
func (b *Builder) Line(s string) *Builder {
	b.buf.WriteString(s)
	b.buf.WriteByte('\n')
	return b
}

// Center appends a centered line.
func (b *Builder) Center(s string) *Builder {
	if pad := (b.width - len(s)) / 2; pad > 0 {
		b.buf.WriteString(strings.Repeat(" ", pad))
	}
	b.buf.WriteString(s)
	b.buf.WriteByte('\n')
	return b
}

// Row appends a line with left text and right-aligned text, padded to the
// builder width. Overlong pairs degrade to a single space separator.
func (b *Builder) Row(left, right string) *Builder {
	pad := b.width - len(left) - len(right)
	if pad < 1 {
		pad = 1
	}
	b.buf.WriteString(left)
	b.buf.WriteString(strings.Repeat(" ", pad))
	b.buf.WriteString(right)
	b.buf.WriteByte('\n')
	return b
}

// Rule appends a horizontal rule.
func (b *Builder) Rule() *Builder {
	b.buf.WriteString(strings.Repeat("-", b.width))
	b.buf.WriteByte('\n')
	return b
}

// Blank appends an empty line.
func (b *Builder) Blank() *Builder {
	b.buf.WriteByte('\n')
	return b
}

// Bytes returns the assembled document.
func (b *Builder) Bytes() []byte {
	return b.buf.Bytes()
}

// Slug converts a company or client name to its file-name form: lower case
// with spaces replaced by underscores.
func Slug(name string) string {
	if name == "" {
		name = "company"
	}
	return strings.ReplaceAll(strings.ToLower(name), " ", "_")
}
