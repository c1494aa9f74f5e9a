package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// markup accumulates the first write error so components read top to bottom.
type markup struct {
	w   io.Writer
	err error
}

func newMarkup(w io.Writer) *markup {
	return &markup{w: w}
}

func (m *markup) raw(parts ...string) {
	for _, part := range parts {
		if m.err != nil {
			return
		}
		_, m.err = io.WriteString(m.w, part)
	}
}

func (m *markup) text(value string) {
	m.raw(templ.EscapeString(value))
}

func (m *markup) attr(name string, value string) {
	m.raw(" ", name, `="`, templ.EscapeString(value), `"`)
}

func (m *markup) urlAttr(name string, value string) {
	m.attr(name, string(templ.URL(value)))
}

func (m *markup) intText(value int) {
	m.raw(strconv.Itoa(value))
}

func (m *markup) component(ctx context.Context, c templ.Component) {
	if m.err != nil || c == nil {
		return
	}
	m.err = c.Render(ctx, m.w)
}

// element writes <tag class="...">body</tag> with escaped body text.
func (m *markup) element(tag string, class string, body string) {
	m.raw("<", tag)
	if class != "" {
		m.attr("class", class)
	}
	m.raw(">")
	m.text(body)
	m.raw("</", tag, ">")
}

func component(render func(ctx context.Context, m *markup)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(w)
		render(ctx, m)
		return m.err
	})
}

// children returns the wrapped component and a context that no longer
// carries it, so nested layouts do not render it twice.
func children(ctx context.Context) (templ.Component, context.Context) {
	return templ.GetChildren(ctx), templ.ClearChildren(ctx)
}

func (m *markup) link(class string, href string, label string) {
	m.raw("<a")
	if class != "" {
		m.attr("class", class)
	}
	m.attr("href", href)
	m.raw(">")
	m.text(label)
	m.raw("</a>")
}

func itoa(value int) string {
	return strconv.Itoa(value)
}
