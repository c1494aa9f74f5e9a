// Package branding holds product naming shared by pages and telemetry.
package branding

// AppName is the product name shown in page titles and headers.
const AppName = "TeamBoost"

// Tagline is the one-line product description used in meta tags.
const Tagline = "The digital gratitude wall for teams."

// CopyrightHolder appears in the site footer.
const CopyrightHolder = "TeamBoost Inc."
