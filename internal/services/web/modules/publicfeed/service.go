package publicfeed

import (
	"strings"

	"github.com/teamboost/gratitudewall/internal/mockdata"
	"github.com/teamboost/gratitudewall/internal/notecard"
)

const maxQueryLength = 200

type service struct {
	catalog *mockdata.Catalog
}

func newService(catalog *mockdata.Catalog) service {
	return service{catalog: catalog}
}

// normalizeQuery trims and bounds the search term.
func normalizeQuery(raw string) string {
	query := strings.TrimSpace(raw)
	if runes := []rune(query); len(runes) > maxQueryLength {
		query = string(runes[:maxQueryLength])
	}
	return query
}

// search returns public cards whose content contains query, ignoring case.
// An empty query matches everything.
func (s service) search(query string) []notecard.ReadOnly {
	needle := strings.ToLower(query)
	var matched []mockdata.Quote
	for _, q := range s.catalog.PublicNotes() {
		if needle == "" || strings.Contains(strings.ToLower(q.Content), needle) {
			matched = append(matched, q)
		}
	}
	return mockdata.Cards(matched)
}
