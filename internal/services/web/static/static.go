// Package static embeds the stylesheet and script served under /static/.
package static

import "embed"

// FS holds site.css and site.js.
//
//go:embed *.css *.js
var FS embed.FS
