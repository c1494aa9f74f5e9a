package notecard

// Color is a card background token. Templates map tokens to CSS classes.
type Color string

const (
	ColorYellow  Color = "yellow"
	ColorBlue    Color = "blue"
	ColorPink    Color = "pink"
	ColorGreen   Color = "green"
	ColorPurple  Color = "purple"
	ColorOrange  Color = "orange"
	ColorNeutral Color = "neutral"
)

// Decoration is the pin or tape drawn at the top of a card.
type Decoration string

const (
	DecorationPinRed    Decoration = "pin-red"
	DecorationPinBlue   Decoration = "pin-blue"
	DecorationTapeClear Decoration = "tape-clear"
	DecorationTapeWashi Decoration = "tape-washi"
	DecorationNone      Decoration = "none"
)

// FallbackID is the identifier used for a card drawn without a note.
const FallbackID = "new-note"

const maxRotation = 2

var stickyPalette = [...]Color{ColorYellow, ColorBlue, ColorPink, ColorGreen, ColorPurple}

var glassPalette = [...]Color{ColorBlue, ColorPurple, ColorPink, ColorGreen, ColorOrange, ColorYellow, ColorNeutral}

var decorations = [...]Decoration{DecorationPinRed, DecorationPinBlue, DecorationTapeClear, DecorationTapeWashi}

// Attributes is the visual signature of one card.
type Attributes struct {
	RotationDegrees int
	Color           Color
	Decoration      Decoration
}

// Key identifies the entity a card is drawn for. The zero Key means "no
// entity" and never reaches the hash.
type Key struct {
	id  string
	set bool
}

// KeyOf returns a key for id. The empty string is a valid identifier.
func KeyOf(id string) Key {
	return Key{id: id, set: true}
}

// NoKey returns the "no identifier" sentinel.
func NoKey() Key {
	return Key{}
}

// ID returns the identifier and whether one is present.
func (k Key) ID() (string, bool) {
	return k.id, k.set
}

// StickyPalette returns the colours used by sticky-note cards.
func StickyPalette() []Color {
	out := make([]Color, len(stickyPalette))
	copy(out, stickyPalette[:])
	return out
}

// GlassPalette returns the colours accepted by read-only glass cards.
func GlassPalette() []Color {
	out := make([]Color, len(glassPalette))
	copy(out, glassPalette[:])
	return out
}

// Decorations returns the decorations a hashed card can receive.
func Decorations() []Decoration {
	out := make([]Decoration, len(decorations))
	copy(out, decorations[:])
	return out
}

// Hash folds every code point of id into a polynomial string hash.
//
// The shifted term wraps to a signed 32-bit value while the accumulator keeps
// 64 bits, which matches the values produced by the web client for
// identifiers made of BMP characters.
func Hash(id string) int64 {
	var h int64
	for _, r := range id {
		shifted := int64(int32(h) << 5)
		h = int64(r) + shifted - h
	}
	return h
}

// Derive returns the hashed attributes for id.
func Derive(id string) Attributes {
	h := abs(Hash(id))
	return Attributes{
		RotationDegrees: int(h%(2*maxRotation+1)) - maxRotation,
		Color:           stickyPalette[h%int64(len(stickyPalette))],
		Decoration:      decorations[h%int64(len(decorations))],
	}
}

// Neutral returns the fixed attributes of a card without an entity.
func Neutral() Attributes {
	return Attributes{RotationDegrees: 0, Color: ColorNeutral, Decoration: DecorationNone}
}

// For resolves attributes for k, bypassing the hash for the sentinel.
func For(k Key) Attributes {
	id, ok := k.ID()
	if !ok {
		return Neutral()
	}
	return Derive(id)
}

// IsGlassColor reports whether c belongs to the read-only card palette.
func IsGlassColor(c Color) bool {
	for _, candidate := range glassPalette {
		if candidate == c {
			return true
		}
	}
	return false
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
