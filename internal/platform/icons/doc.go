// Package icons defines the icon identifiers used by the web UI.
//
// The catalog maps stable icon identifiers to human-readable labels; pages
// render them through a single inline Lucide SVG sprite so each icon is a
// cheap <use> reference.
package icons
