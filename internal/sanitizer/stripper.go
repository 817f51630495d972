package sanitizer

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// HTMLStripperer removes markup from user supplied text
type HTMLStripperer interface {
	StripHTML(s string) string
}

type HTMLStripper struct {
	bm *bluemonday.Policy
}

var _ HTMLStripperer = (*HTMLStripper)(nil)

// NewHTMLStripper return a new instance of blue monday policy
func NewHTMLStripper() *HTMLStripper {
	return &HTMLStripper{
		bm: bluemonday.StrictPolicy(),
	}
}

// StripHTML drops all tags and returns plain text. The strict policy
// escapes entities, so they are decoded again; output escaping is left to
// the renderer.
func (hs *HTMLStripper) StripHTML(s string) string {
	return strings.TrimSpace(html.UnescapeString(hs.bm.Sanitize(s)))
}
