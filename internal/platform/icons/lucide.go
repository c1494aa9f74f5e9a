package icons

import (
	"html"
	"sort"
	"strings"
)

const lucideSymbolPrefix = "lucide-"

var lucideIconNames = map[ID]string{
	Overview:      "layout-dashboard",
	Notes:         "sticky-note",
	Team:          "users",
	Settings:      "settings",
	SignOut:       "log-out",
	ToggleSidebar: "panel-left",
	TotalNotes:    "file-text",
	Published:     "send",
	Members:       "users",
	ActiveSenders: "zap",
	Note:          "heart",
	Create:        "plus",
	PublicWall:    "globe",
	Search:        "search",
	Forward:       "arrow-right",
}

// lucideShapes holds the inner SVG markup of each Lucide icon on a 24x24 grid.
var lucideShapes = map[string]string{
	"layout-dashboard": `<rect width="7" height="9" x="3" y="3" rx="1"/><rect width="7" height="5" x="14" y="3" rx="1"/><rect width="7" height="9" x="14" y="12" rx="1"/><rect width="7" height="5" x="3" y="16" rx="1"/>`,
	"sticky-note":      `<path d="M16 3H5a2 2 0 0 0-2 2v14a2 2 0 0 0 2 2h14a2 2 0 0 0 2-2V8Z"/><path d="M15 3v4a2 2 0 0 0 2 2h4"/>`,
	"users":            `<path d="M16 21v-2a4 4 0 0 0-4-4H6a4 4 0 0 0-4 4v2"/><circle cx="9" cy="7" r="4"/><path d="M22 21v-2a4 4 0 0 0-3-3.87"/><path d="M16 3.13a4 4 0 0 1 0 7.75"/>`,
	"settings":         `<path d="M12.22 2h-.44a2 2 0 0 0-2 2v.18a2 2 0 0 1-1 1.73l-.43.25a2 2 0 0 1-2 0l-.15-.08a2 2 0 0 0-2.73.73l-.22.38a2 2 0 0 0 .73 2.73l.15.1a2 2 0 0 1 1 1.72v.51a2 2 0 0 1-1 1.74l-.15.09a2 2 0 0 0-.73 2.73l.22.38a2 2 0 0 0 2.73.73l.15-.08a2 2 0 0 1 2 0l.43.25a2 2 0 0 1 1 1.73V20a2 2 0 0 0 2 2h.44a2 2 0 0 0 2-2v-.18a2 2 0 0 1 1-1.73l.43-.25a2 2 0 0 1 2 0l.15.08a2 2 0 0 0 2.73-.73l.22-.39a2 2 0 0 0-.73-2.73l-.15-.08a2 2 0 0 1-1-1.74v-.5a2 2 0 0 1 1-1.74l.15-.09a2 2 0 0 0 .73-2.73l-.22-.38a2 2 0 0 0-2.73-.73l-.15.08a2 2 0 0 1-2 0l-.43-.25a2 2 0 0 1-1-1.73V4a2 2 0 0 0-2-2z"/><circle cx="12" cy="12" r="3"/>`,
	"log-out":          `<path d="M9 21H5a2 2 0 0 1-2-2V5a2 2 0 0 1 2-2h4"/><polyline points="16 17 21 12 16 7"/><line x1="21" x2="9" y1="12" y2="12"/>`,
	"panel-left":       `<rect width="18" height="18" x="3" y="3" rx="2"/><path d="M9 3v18"/>`,
	"file-text":        `<path d="M15 2H6a2 2 0 0 0-2 2v16a2 2 0 0 0 2 2h12a2 2 0 0 0 2-2V7Z"/><path d="M14 2v4a2 2 0 0 0 2 2h4"/><path d="M10 9H8"/><path d="M16 13H8"/><path d="M16 17H8"/>`,
	"send":             `<path d="m22 2-7 20-4-9-9-4Z"/><path d="M22 2 11 13"/>`,
	"zap":              `<polygon points="13 2 3 14 12 14 11 22 21 10 12 10 13 2"/>`,
	"heart":            `<path d="M19 14c1.49-1.46 3-3.21 3-5.5A5.5 5.5 0 0 0 16.5 3c-1.76 0-3 .5-4.5 2-1.5-1.5-2.74-2-4.5-2A5.5 5.5 0 0 0 2 8.5c0 2.3 1.5 4.05 3 5.5l7 7Z"/>`,
	"plus":             `<path d="M5 12h14"/><path d="M12 5v14"/>`,
	"globe":            `<circle cx="12" cy="12" r="10"/><path d="M12 2a14.5 14.5 0 0 0 0 20 14.5 14.5 0 0 0 0-20"/><path d="M2 12h20"/>`,
	"search":           `<circle cx="11" cy="11" r="8"/><path d="m21 21-4.3-4.3"/>`,
	"arrow-right":      `<path d="M5 12h14"/><path d="m12 5 7 7-7 7"/>`,
}

var lucideSprite = buildLucideSprite()

// LucideName returns the Lucide icon name for an icon identifier.
func LucideName(id ID) (string, bool) {
	name, ok := lucideIconNames[id]
	return name, ok
}

// LucideNameOrDefault provides a stable Lucide name even when the icon ID is unknown.
func LucideNameOrDefault(id ID) string {
	if name, ok := lucideIconNames[id]; ok {
		return name
	}
	return "heart"
}

// LucideSymbolID returns the sprite symbol ID for a Lucide icon name.
func LucideSymbolID(name string) string {
	return lucideSymbolPrefix + name
}

// LucideSprite returns the hidden SVG sprite holding every catalog icon.
func LucideSprite() string {
	return lucideSprite
}

// Use returns inline SVG markup referencing id in the sprite.
func Use(id ID) string {
	symbol := html.EscapeString(LucideSymbolID(LucideNameOrDefault(id)))
	return `<svg class="icon" width="16" height="16" aria-hidden="true" focusable="false"><use href="#` + symbol + `"></use></svg>`
}

func buildLucideSprite() string {
	names := make([]string, 0, len(lucideShapes))
	for name := range lucideShapes {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" style="display:none" aria-hidden="true">`)
	for _, name := range names {
		b.WriteString(`<symbol id="`)
		b.WriteString(LucideSymbolID(name))
		b.WriteString(`" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round">`)
		b.WriteString(lucideShapes[name])
		b.WriteString(`</symbol>`)
	}
	b.WriteString(`</svg>`)
	return b.String()
}
