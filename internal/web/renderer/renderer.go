package renderer

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/niklasfasching/go-org/org"
)

// Renderer converts org-mode article bodies to HTML, with code blocks
// highlighted through chroma.
type Renderer struct {
	style string
}

// New creates a renderer using the named chroma style.
func New(style string) *Renderer {
	return &Renderer{style: style}
}

// Render converts org-mode source to HTML.
func (r *Renderer) Render(source string) (template.HTML, error) {
	out, err := org.New().Parse(strings.NewReader(source), "").Write(r.writer())
	if err != nil {
		return "", err
	}
	return template.HTML(out), nil
}

func (r *Renderer) writer() *org.HTMLWriter {
	w := org.NewHTMLWriter()
	w.HighlightCodeBlock = func(source, lang string, inline bool, params map[string]string) string {
		var buf bytes.Buffer
		lexer := lexers.Get(lang)
		if lexer == nil {
			lexer = lexers.Fallback
		}
		iterator, err := lexer.Tokenise(nil, source)
		if err != nil {
			return source
		}
		formatter := html.New(html.WithClasses(true))
		if err := formatter.Format(&buf, styles.Get(r.style), iterator); err != nil {
			return source
		}
		return buf.String()
	}
	return w
}
