package landing

import (
	"github.com/dustin/go-humanize"

	"github.com/teamboost/gratitudewall/internal/mockdata"
	"github.com/teamboost/gratitudewall/internal/platform/icons"
	webtemplates "github.com/teamboost/gratitudewall/internal/services/web/templates"
)

const (
	totalNotes  = 10420
	activeTeams = 500
	moraleBoost = 100
)

// companies scroll under the stats ticker.
var companies = []string{
	"Acme Corp", "Globex", "Initech", "Soylent", "Umbrella", "Stark Ind", "Massive Dynamic",
	"Cyberdyne", "Wayne Ent", "Oscorp", "Tyrell", "Aperture", "Black Mesa",
}

type service struct {
	catalog *mockdata.Catalog
}

func newService(catalog *mockdata.Catalog) service {
	return service{catalog: catalog}
}

func (s service) view() webtemplates.LandingView {
	return webtemplates.LandingView{
		Stats: []webtemplates.Stat{
			{Value: humanize.Comma(totalNotes), LabelKey: "web.landing.stat_total_notes", Icon: icons.TotalNotes},
			{Value: humanize.Comma(activeTeams) + "+", LabelKey: "web.landing.stat_active_teams", Icon: icons.Members},
			{Value: humanize.Comma(moraleBoost) + "%", LabelKey: "web.landing.stat_morale", Icon: icons.ActiveSenders},
		},
		Companies: append([]string(nil), companies...),
		Story:     mockdata.Cards(s.catalog.StoryNotes()),
		Preview:   mockdata.Cards(s.catalog.PreviewNotes()),
	}
}
