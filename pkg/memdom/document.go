package memdom

import (
	"strings"

	"github.com/fluentdom-go/fluentdom"
)

// Document allocates elements for in-memory trees. It holds no state
// beyond identity, so a single document can serve any number of
// independent trees.
type Document struct{}

// NewDocument returns a fresh document context.
func NewDocument() *Document {
	return &Document{}
}

// CreateElement implements fluentdom.Document.
func (d *Document) CreateElement(tag string) (fluentdom.Element, error) {
	el, err := d.NewElement(tag)
	if err != nil {
		return nil, err
	}
	return el, nil
}

// NewElement is CreateElement with the concrete node type. Tag names
// follow the HTML element-name rule (leading ASCII letter, then letters,
// digits, hyphens, or underscores) and are lowercased, matching what the
// HTML parser produces for markup. Anything else fails with
// InvalidCharacterError.
func (d *Document) NewElement(tag string) (*Element, error) {
	if !validTagName(tag) {
		return nil, domErr("InvalidCharacterError", "%q is not a valid element name", tag)
	}
	return &Element{doc: d, tag: strings.ToLower(tag)}, nil
}

func validTagName(tag string) bool {
	for i, r := range tag {
		switch {
		case r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z':
		case i > 0 && (r >= '0' && r <= '9' || r == '-' || r == '_'):
		default:
			return false
		}
	}
	return tag != ""
}
