package templates

import (
	"context"

	"github.com/a-h/templ"

	"github.com/teamboost/gratitudewall/internal/notecard"
	module "github.com/teamboost/gratitudewall/internal/services/web/module"
	webi18n "github.com/teamboost/gratitudewall/internal/services/web/platform/i18n"
	"github.com/teamboost/gratitudewall/internal/services/web/platform/uiprefs"
	"github.com/teamboost/gratitudewall/internal/services/web/routepath"
)

// Person is the display data of a user shown next to a note.
type Person struct {
	Name      string
	AvatarURL string
	Initial   string
}

// RecentNote is one entry of the overview note list.
type RecentNote struct {
	ID        string
	Author    Person
	Recipient string
	Content   string
	Date      string
}

// Activity is one line of the recent activity feed. MessageKey is rendered
// with MessageArg.
type Activity struct {
	Actor      Person
	MessageKey string
	MessageArg string
	When       string
}

// OverviewView is the dashboard home.
type OverviewView struct {
	Stats    []Stat
	Notes    []RecentNote
	Activity []Activity
}

// OverviewPage renders stats, recent notes and recent activity.
func OverviewPage(view OverviewView, loc Localizer) templ.Component {
	return component(func(ctx context.Context, m *markup) {
		m.raw(`<section class="stats-cards">`)
		for _, stat := range view.Stats {
			m.raw(`<div class="card stat">`)
			statIcon(m, stat.Icon)
			m.element("p", "stat-label", T(loc, stat.LabelKey))
			m.element("span", "stat-value", stat.Value)
			m.raw("</div>")
		}
		m.raw(`</section><div class="overview-grid"><section class="recent-notes">`)
		m.element("h3", "", T(loc, "web.dashboard.recent_notes"))
		if len(view.Notes) == 0 {
			m.element("p", "empty-state", T(loc, "web.dashboard.no_notes"))
		}
		for _, note := range view.Notes {
			m.raw(`<article class="card note-summary"`)
			m.attr("data-note-id", note.ID)
			m.raw("><header>")
			m.component(ctx, Avatar(note.Author.Name, note.Author.AvatarURL, note.Author.Initial))
			m.raw(`<div><p class="note-people">`)
			m.text(note.Author.Name)
			m.raw(" ")
			m.element("span", "muted", T(loc, "web.dashboard.to"))
			m.raw(" ")
			m.text(note.Recipient)
			m.raw("</p>")
			m.element("time", "muted", note.Date)
			m.raw("</div></header>")
			m.element("p", "note-content", note.Content)
			m.raw("</article>")
		}
		m.raw(`</section><section class="card recent-activity">`)
		m.element("h3", "", T(loc, "web.dashboard.recent_activity"))
		m.raw("<ul>")
		for _, item := range view.Activity {
			m.raw("<li>")
			m.component(ctx, Avatar(item.Actor.Name, item.Actor.AvatarURL, item.Actor.Initial))
			m.raw(`<div class="activity-text">`)
			m.element("p", "activity-actor", item.Actor.Name)
			m.element("p", "muted", T(loc, item.MessageKey, item.MessageArg))
			m.raw("</div>")
			m.element("span", "activity-when", item.When)
			m.raw("</li>")
		}
		m.raw("</ul></section></div>")
	})
}

// NoteRow is one line of the notes table.
type NoteRow struct {
	ID        string
	Title     string
	Recipient string
	Date      string
	Status    string
}

// NotesView is the notes page; Table selects the table variant.
type NotesView struct {
	Table bool
	Cards []notecard.Card
	Rows  []NoteRow
}

// NotesPage renders the sticky-note wall or its table variant.
func NotesPage(view NotesView, loc Localizer) templ.Component {
	return component(func(ctx context.Context, m *markup) {
		m.raw(`<nav class="view-toggle">`)
		viewLink(m, routepath.DashboardNotes, T(loc, "web.notes.view_wall"), !view.Table)
		viewLink(m, routepath.DashboardNotesTable(), T(loc, "web.notes.view_table"), view.Table)
		m.raw("</nav>")
		if view.Table {
			notesTable(m, view.Rows, loc)
			return
		}
		m.raw(`<section class="note-wall">`)
		for _, card := range view.Cards {
			m.component(ctx, NoteCard(card, loc))
		}
		m.raw("</section>")
	})
}

func viewLink(m *markup, href string, label string, active bool) {
	m.raw("<a")
	m.attr("href", href)
	m.attr("hx-get", href)
	m.raw(` hx-target="#main" hx-push-url="true"`)
	if active {
		m.raw(` class="active" aria-current="true"`)
	}
	m.raw(">")
	m.text(label)
	m.raw("</a>")
}

func notesTable(m *markup, rows []NoteRow, loc Localizer) {
	m.raw(`<table class="notes-table"><thead><tr>`)
	for _, key := range []string{"web.notes.column_title", "web.notes.column_recipient", "web.notes.column_date", "web.notes.column_status"} {
		m.element("th", "", T(loc, key))
	}
	m.raw("</tr></thead><tbody>")
	if len(rows) == 0 {
		m.raw(`<tr><td colspan="4" class="empty-state">`)
		m.text(T(loc, "web.dashboard.no_notes"))
		m.raw("</td></tr>")
	}
	for _, row := range rows {
		m.raw("<tr")
		m.attr("data-note-id", row.ID)
		m.raw(">")
		m.element("td", "", row.Title)
		m.element("td", "", row.Recipient)
		m.element("td", "", row.Date)
		m.raw("<td>")
		m.element("span", "status-badge status-"+row.Status, T(loc, "web.status."+row.Status))
		m.raw("</td></tr>")
	}
	m.raw("</tbody></table>")
}

// TeamMember is one row of the team page.
type TeamMember struct {
	Person
	Email    string
	Role     string
	Sent     int
	Received int
}

// TeamPage renders the member list with note counts.
func TeamPage(members []TeamMember, loc Localizer) templ.Component {
	return component(func(ctx context.Context, m *markup) {
		m.raw(`<section class="team-grid">`)
		for _, member := range members {
			m.raw(`<article class="card team-member">`)
			m.component(ctx, Avatar(member.Name, member.AvatarURL, member.Initial))
			m.raw("<div>")
			m.element("h3", "", member.Name)
			m.element("p", "muted", member.Email)
			m.element("span", "role-badge role-"+member.Role, T(loc, "web.team.role_"+member.Role))
			m.raw(`</div><dl class="team-counts"><dt>`)
			m.text(T(loc, "web.team.sent"))
			m.raw("</dt><dd>")
			m.intText(member.Sent)
			m.raw("</dd><dt>")
			m.text(T(loc, "web.team.received"))
			m.raw("</dt><dd>")
			m.intText(member.Received)
			m.raw("</dd></dl></article>")
		}
		m.raw("</section>")
	})
}

// SettingsView is the settings page.
type SettingsView struct {
	Viewer      module.Viewer
	Preferences uiprefs.Preferences
	Lang        string
}

// SettingsPage renders the profile card and preference forms.
func SettingsPage(view SettingsView, loc Localizer) templ.Component {
	return component(func(ctx context.Context, m *markup) {
		m.raw(`<section class="card settings-profile">`)
		m.element("h3", "", T(loc, "web.settings.profile"))
		m.component(ctx, Avatar(view.Viewer.DisplayName, view.Viewer.AvatarURL, view.Viewer.Initial()))
		m.raw("<dl><dt>")
		m.text(T(loc, "web.settings.name"))
		m.raw("</dt>")
		m.element("dd", "", view.Viewer.DisplayName)
		m.raw("<dt>")
		m.text(T(loc, "web.settings.email"))
		m.raw("</dt>")
		m.element("dd", "", view.Viewer.Email)
		m.raw("</dl>")
		m.element("p", "muted", T(loc, "web.settings.profile_managed"))
		m.raw("</section>")

		m.raw(`<section class="card settings-preferences">`)
		m.element("h3", "", T(loc, "web.settings.appearance"))
		m.raw(`<form method="post"`)
		m.attr("action", routepath.PreferencesTheme)
		m.raw(`><input type="hidden" name="next"`)
		m.attr("value", routepath.DashboardSettings)
		m.raw("><label>")
		m.text(T(loc, "web.settings.theme"))
		m.raw(` <select name="theme">`)
		for _, theme := range uiprefs.Themes() {
			m.raw("<option")
			m.attr("value", string(theme))
			if view.Preferences.Theme == theme {
				m.raw(" selected")
			}
			m.raw(">")
			m.text(T(loc, "web.theme."+string(theme)))
			m.raw("</option>")
		}
		m.raw(`</select></label><button type="submit" class="button button-secondary">`)
		m.text(T(loc, "web.settings.save"))
		m.raw("</button></form>")

		m.raw(`<form method="post"`)
		m.attr("action", routepath.PreferencesLanguage)
		m.raw(`><input type="hidden" name="next"`)
		m.attr("value", routepath.DashboardSettings)
		m.raw("><label>")
		m.text(T(loc, "web.language.label"))
		m.raw(` <select name="lang">`)
		for _, tag := range webi18n.Supported() {
			m.raw("<option")
			m.attr("value", tag.String())
			if tag.String() == view.Lang {
				m.raw(" selected")
			}
			m.raw(">")
			m.text(T(loc, webi18n.LabelKey(tag)))
			m.raw("</option>")
		}
		m.raw(`</select></label><button type="submit" class="button button-secondary">`)
		m.text(T(loc, "web.settings.save"))
		m.raw("</button></form></section>")
	})
}
