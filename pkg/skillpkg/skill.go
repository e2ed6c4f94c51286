// Package skillpkg builds and validates the distributable skill bundle:
// a flat zip of the skill's static files with the real API key substituted
// for the placeholder shipped in config.json.
package skillpkg

import (
	"bytes"
	"os"

	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/parser"
)

// SkillFileName is the bundle's manifest file.
const SkillFileName = "SKILL.md"

// Metadata is the YAML frontmatter of SKILL.md. Name and description are
// what the hosting agent uses to decide when to invoke the skill.
type Metadata struct {
	Name        string
	Description string
}

// ParseSkillFile reads SKILL.md and extracts its frontmatter.
func ParseSkillFile(path string) (*Metadata, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read skill file")
	}

	md := goldmark.New(
		goldmark.WithExtensions(meta.Meta),
	)

	var buf bytes.Buffer
	pctx := parser.NewContext()
	if err := md.Convert(content, &buf, parser.WithContext(pctx)); err != nil {
		return nil, errors.Wrap(err, "failed to parse markdown")
	}

	metaData := meta.Get(pctx)
	if metaData == nil {
		return nil, errors.New("SKILL.md is missing frontmatter")
	}

	name, _ := metaData["name"].(string)
	description, _ := metaData["description"].(string)

	if name == "" {
		return nil, errors.New("skill name is required in frontmatter")
	}
	if description == "" {
		return nil, errors.New("skill description is required in frontmatter")
	}

	return &Metadata{Name: name, Description: description}, nil
}
