package notecard

import "strings"

// Variant names how a card is drawn.
type Variant string

const (
	VariantDefault  Variant = "default"
	VariantCreate   Variant = "create"
	VariantReadOnly Variant = "readonly"
)

// Note is the content of a default card.
type Note struct {
	ID        string
	Title     string
	Body      string
	Recipient string
	Date      string
	Published bool
}

// Card is one of Default, Create or ReadOnly.
type Card interface {
	Variant() Variant
	Attributes() Attributes
	isCard()
}

// Default is a sticky note for an existing note.
type Default struct {
	Note Note
}

// Variant implements Card.
func (Default) Variant() Variant { return VariantDefault }

// Attributes hashes the note id; a note without an id is drawn neutral.
func (c Default) Attributes() Attributes {
	if c.Note.ID == "" {
		return For(NoKey())
	}
	return For(KeyOf(c.Note.ID))
}

func (Default) isCard() {}

// Create is the "write a new note" placeholder.
type Create struct{}

// Variant implements Card.
func (Create) Variant() Variant { return VariantCreate }

// Attributes implements Card.
func (Create) Attributes() Attributes { return Neutral() }

func (Create) isCard() {}

// ReadOnly is a glass card showing a quote and its author.
type ReadOnly struct {
	Content string
	Author  string
	Color   Color
}

// Variant implements Card.
func (ReadOnly) Variant() Variant { return VariantReadOnly }

// Attributes keeps the requested colour when it is part of the glass palette.
func (c ReadOnly) Attributes() Attributes {
	attrs := Neutral()
	if IsGlassColor(c.Color) {
		attrs.Color = c.Color
	}
	return attrs
}

func (ReadOnly) isCard() {}

// TitleFromContent shortens note content to a card title.
func TitleFromContent(content string, limit int) string {
	content = strings.TrimSpace(content)
	if limit <= 0 {
		return content
	}
	runes := []rune(content)
	if len(runes) <= limit {
		return content
	}
	return string(runes[:limit]) + "..."
}
