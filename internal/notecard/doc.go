// Package notecard derives the presentation attributes of note cards.
//
// Every note on the gratitude wall is drawn as a slightly rotated sticky note
// with a colour and a pin or tape decoration. The attributes are a pure
// function of the note identifier, so the same note looks the same on every
// render and in every process without storing anything.
package notecard
