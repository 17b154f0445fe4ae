package skills

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/parser"
)

// DefaultManifestName is the manifest file looked up in each skill folder.
const DefaultManifestName = "SKILL.md"

const frontmatterDelimiter = "---"

// Manifest is the parsed YAML frontmatter of a skill manifest file.
type Manifest struct {
	Fields map[string]interface{}
}

// Field returns the stringified value for key and whether the key is
// present in the frontmatter.
func (m *Manifest) Field(key string) (string, bool) {
	v, ok := m.Fields[key]
	if !ok || v == nil {
		return "", ok
	}
	if s, isString := v.(string); isString {
		return s, true
	}
	return fmt.Sprint(v), true
}

// ParseManifest reads the file at path and parses its YAML frontmatter.
// The content must begin with a "---" delimiter line and contain a matching
// closing delimiter line; the text in between must parse to a YAML mapping.
// Every I/O or parse failure collapses to (nil, false) rather than an
// error: a malformed one-off skill file must not abort a directory-wide
// scan.
func ParseManifest(path string) (*Manifest, bool) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}

	text := string(content)
	if !strings.HasPrefix(text, frontmatterDelimiter+"\n") {
		return nil, false
	}
	if strings.Index(text[len(frontmatterDelimiter)+1:], "\n"+frontmatterDelimiter+"\n") < 0 {
		return nil, false
	}

	md := goldmark.New(
		goldmark.WithExtensions(meta.Meta),
	)

	var buf bytes.Buffer
	pctx := parser.NewContext()
	if err := md.Convert(content, &buf, parser.WithContext(pctx)); err != nil {
		return nil, false
	}

	fields := meta.Get(pctx)
	if fields == nil {
		return nil, false
	}

	return &Manifest{Fields: fields}, true
}
