package dashboard

import (
	"time"

	"github.com/dustin/go-humanize"

	"github.com/teamboost/gratitudewall/internal/mockdata"
	"github.com/teamboost/gratitudewall/internal/notecard"
	"github.com/teamboost/gratitudewall/internal/platform/icons"
	module "github.com/teamboost/gratitudewall/internal/services/web/module"
	webtemplates "github.com/teamboost/gratitudewall/internal/services/web/templates"
)

const (
	// noteTitleRunes is where card and table titles are cut.
	noteTitleRunes = 50

	recentNoteDateLayout = "Jan 2, 3:04 PM"
	noteDateLayout       = "Jan 2, 2006"
)

func mapOverviewView(overview Overview, now time.Time, loc webtemplates.Localizer) webtemplates.OverviewView {
	view := webtemplates.OverviewView{
		Stats: []webtemplates.Stat{
			{Value: humanize.Comma(int64(overview.TotalNotes)), LabelKey: "web.dashboard.stat_total_notes", Icon: icons.TotalNotes},
			{Value: humanize.Comma(int64(overview.Published)), LabelKey: "web.dashboard.stat_published", Icon: icons.Published},
			{Value: humanize.Comma(int64(overview.Members)), LabelKey: "web.dashboard.stat_members", Icon: icons.Members},
			{Value: humanize.Comma(int64(overview.ActiveSenders)), LabelKey: "web.dashboard.stat_active_senders", Icon: icons.ActiveSenders},
		},
		Notes:    make([]webtemplates.RecentNote, 0, len(overview.Notes)),
		Activity: make([]webtemplates.Activity, 0, len(overview.Activity)),
	}
	for _, note := range overview.Notes {
		view.Notes = append(view.Notes, webtemplates.RecentNote{
			ID:        note.ID,
			Author:    mapPerson(note.Author, loc),
			Recipient: personName(note.Recipient, loc),
			Content:   note.Content,
			Date:      note.CreatedAt.Format(recentNoteDateLayout),
		})
	}
	for _, note := range overview.Activity {
		view.Activity = append(view.Activity, webtemplates.Activity{
			Actor:      mapPerson(note.Author, loc),
			MessageKey: "web.activity.sent_note",
			MessageArg: personName(note.Recipient, loc),
			When:       relativeTime(note.CreatedAt, now, loc),
		})
	}
	return view
}

// relativeTime renders "2 hours ago" style labels.
func relativeTime(then time.Time, now time.Time, loc webtemplates.Localizer) string {
	if now.Sub(then) < time.Minute && then.Sub(now) < time.Minute {
		return webtemplates.T(loc, "web.time.just_now")
	}
	return humanize.RelTime(then, now, webtemplates.T(loc, "web.time.ago"), webtemplates.T(loc, "web.time.from_now"))
}

func mapNotesView(notes []mockdata.NoteWithRelations, table bool, loc webtemplates.Localizer) webtemplates.NotesView {
	view := webtemplates.NotesView{Table: table}
	if table {
		view.Rows = make([]webtemplates.NoteRow, 0, len(notes))
		for _, note := range notes {
			view.Rows = append(view.Rows, webtemplates.NoteRow{
				ID:        note.ID,
				Title:     notecard.TitleFromContent(note.Content, noteTitleRunes),
				Recipient: personName(note.Recipient, loc),
				Date:      note.CreatedAt.Format(noteDateLayout),
				Status:    string(note.Status),
			})
		}
		return view
	}
	view.Cards = make([]notecard.Card, 0, len(notes)+1)
	view.Cards = append(view.Cards, notecard.Create{})
	for _, note := range notes {
		view.Cards = append(view.Cards, notecard.Default{Note: notecard.Note{
			ID:        note.ID,
			Title:     notecard.TitleFromContent(note.Content, noteTitleRunes),
			Body:      note.Content,
			Recipient: personName(note.Recipient, loc),
			Date:      note.CreatedAt.Format(noteDateLayout),
			Published: note.Status == mockdata.StatusPublished,
		}})
	}
	return view
}

func mapTeamView(members []TeamMember) []webtemplates.TeamMember {
	out := make([]webtemplates.TeamMember, 0, len(members))
	for _, member := range members {
		user := member.User
		out = append(out, webtemplates.TeamMember{
			Person:   webtemplates.Person{Name: user.Name, AvatarURL: user.AvatarURL, Initial: initial(user.Name, user.Email)},
			Email:    user.Email,
			Role:     string(user.Role),
			Sent:     member.Sent,
			Received: member.Received,
		})
	}
	return out
}

func mapPerson(user *mockdata.User, loc webtemplates.Localizer) webtemplates.Person {
	if user == nil {
		return webtemplates.Person{Name: webtemplates.T(loc, "web.dashboard.unknown"), Initial: "?"}
	}
	return webtemplates.Person{Name: user.Name, AvatarURL: user.AvatarURL, Initial: initial(user.Name, user.Email)}
}

func personName(user *mockdata.User, loc webtemplates.Localizer) string {
	if user == nil || user.Name == "" {
		return webtemplates.T(loc, "web.dashboard.unknown")
	}
	return user.Name
}

func initial(name string, email string) string {
	return module.Viewer{DisplayName: name, Email: email}.Initial()
}
