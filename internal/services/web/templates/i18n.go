package templates

import (
	"fmt"

	"golang.org/x/text/message"

	"github.com/teamboost/gratitudewall/internal/platform/i18n/catalog"
)

// Localizer translates catalog keys. *message.Printer satisfies it.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// T translates key through loc. Without a localizer, key is looked up in the
// base locale and, failing that, used as its own format string.
func T(loc Localizer, key message.Reference, args ...any) string {
	if loc != nil {
		return loc.Sprintf(key, args...)
	}
	format, ok := key.(string)
	if !ok {
		return ""
	}
	if text, found := catalog.Default().Message(catalog.BaseLocale, format); found {
		format = text
	}
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}
