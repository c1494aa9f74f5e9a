package templates

import (
	"context"
	"fmt"

	"github.com/a-h/templ"

	"github.com/teamboost/gratitudewall/internal/notecard"
	"github.com/teamboost/gratitudewall/internal/platform/icons"
)

// NoteCard renders any card variant with its derived attributes.
func NoteCard(card notecard.Card, loc Localizer) templ.Component {
	switch c := card.(type) {
	case notecard.Default:
		return defaultCard(c, loc)
	case notecard.Create:
		return createCard(loc)
	case notecard.ReadOnly:
		return ReadOnlyCard(c, 0)
	default:
		return templ.NopComponent
	}
}

func cardClass(card notecard.Card) string {
	attrs := card.Attributes()
	return fmt.Sprintf("note-card note-%s color-%s decoration-%s", card.Variant(), attrs.Color, attrs.Decoration)
}

func rotationStyle(degrees int) string {
	return fmt.Sprintf("--rotation: %ddeg", degrees)
}

func cardOpen(m *markup, tag string, card notecard.Card, rotation int) {
	attrs := card.Attributes()
	m.raw("<", tag)
	m.attr("class", cardClass(card))
	m.attr("style", rotationStyle(rotation))
	m.attr("data-variant", string(card.Variant()))
	m.attr("data-color", string(attrs.Color))
	m.attr("data-decoration", string(attrs.Decoration))
	m.raw(">")
}

func defaultCard(card notecard.Default, loc Localizer) templ.Component {
	return component(func(_ context.Context, m *markup) {
		attrs := card.Attributes()
		note := card.Note
		cardOpen(m, "article", card, attrs.RotationDegrees)
		if attrs.Decoration != notecard.DecorationNone {
			m.raw(`<span aria-hidden="true"`)
			m.attr("class", "decoration "+string(attrs.Decoration))
			m.raw("></span>")
		}
		m.raw(`<header class="note-header"><span class="note-icon">`)
		if note.Published {
			m.raw(icons.Use(icons.Note))
		} else {
			m.raw(icons.Use(icons.Notes))
		}
		m.raw("</span>")
		if note.Published {
			m.element("h3", "", T(loc, "web.card.details"))
		} else {
			m.element("h3", "", T(loc, "web.card.draft"))
		}
		m.raw("</header>")
		m.raw(`<p class="note-body handwriting"`)
		if note.Body != "" && note.Body != note.Title {
			m.attr("title", note.Body)
		}
		m.raw(">")
		m.text(note.Title)
		m.raw(`</p><footer class="note-footer">`)
		m.element("span", "note-recipient", T(loc, "web.card.to", note.Recipient))
		m.element("time", "note-date", note.Date)
		m.raw("</footer>")
		if note.Published {
			m.element("span", "stamp", T(loc, "web.card.sent"))
		}
		m.raw(`<span class="corner-curl" aria-hidden="true"></span></article>`)
	})
}

func createCard(loc Localizer) templ.Component {
	return component(func(_ context.Context, m *markup) {
		cardOpen(m, "div", notecard.Create{}, 0)
		m.raw(`<span class="create-plus" aria-hidden="true">+</span>`)
		m.element("h3", "", T(loc, "web.card.create"))
		m.raw("</div>")
	})
}

// ReadOnlyCard renders a glass quote card. tilt adds a presentational
// rotation on top of the card's own attributes.
func ReadOnlyCard(card notecard.ReadOnly, tilt int) templ.Component {
	return component(func(_ context.Context, m *markup) {
		cardOpen(m, "figure", card, card.Attributes().RotationDegrees+tilt)
		m.raw("<blockquote>")
		m.text(card.Content)
		m.raw("</blockquote><figcaption>")
		m.text(card.Author)
		m.raw("</figcaption></figure>")
	})
}

// ReadOnlyCards renders quotes as glass cards in order.
func ReadOnlyCards(cards []notecard.ReadOnly, class string) templ.Component {
	return component(func(ctx context.Context, m *markup) {
		m.raw("<div")
		m.attr("class", class)
		m.raw(">")
		for _, card := range cards {
			m.component(ctx, ReadOnlyCard(card, 0))
		}
		m.raw("</div>")
	})
}
