package dashboard

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/teamboost/gratitudewall/internal/services/web/platform/modulehandler"
	"github.com/teamboost/gratitudewall/internal/services/web/routepath"
	webtemplates "github.com/teamboost/gratitudewall/internal/services/web/templates"
)

type handlers struct {
	modulehandler.Base
	service service
}

func newHandlers(s service, base modulehandler.Base) handlers {
	return handlers{Base: base, service: s}
}

func mainHeader(loc webtemplates.Localizer, titleKey string, subtitleKey string) *webtemplates.AppMainHeader {
	header := &webtemplates.AppMainHeader{Title: webtemplates.T(loc, titleKey)}
	if subtitleKey != "" {
		header.Subtitle = webtemplates.T(loc, subtitleKey)
	}
	return header
}

func (h handlers) handleOverview(w http.ResponseWriter, r *http.Request) {
	ctx, userID := h.RequestContextAndUserID(r)
	now := h.Now()
	overview, err := h.service.loadOverview(ctx, now)
	if err != nil {
		h.Logger().Warn("load dashboard overview", zap.String("user_id", userID), zap.Error(err))
		h.WriteError(w, r, err)
		return
	}
	loc, _ := h.PageLocalizer(w, r)
	h.WritePage(w, r, webtemplates.T(loc, "web.dashboard.title"), http.StatusOK,
		mainHeader(loc, "web.dashboard.title", ""),
		webtemplates.OverviewPage(mapOverviewView(overview, now, loc), loc))
}

func (h handlers) handleNotes(w http.ResponseWriter, r *http.Request) {
	ctx, userID := h.RequestContextAndUserID(r)
	notes, err := h.service.loadNotes(ctx, h.Now())
	if err != nil {
		h.Logger().Warn("load dashboard notes", zap.String("user_id", userID), zap.Error(err))
		h.WriteError(w, r, err)
		return
	}
	table := strings.EqualFold(strings.TrimSpace(r.URL.Query().Get(routepath.ViewQueryKey)), routepath.NotesViewTable)
	loc, _ := h.PageLocalizer(w, r)
	h.WritePage(w, r, webtemplates.T(loc, "web.notes.title"), http.StatusOK,
		mainHeader(loc, "web.notes.title", "web.notes.subtitle"),
		webtemplates.NotesPage(mapNotesView(notes, table, loc), loc))
}

func (h handlers) handleTeam(w http.ResponseWriter, r *http.Request) {
	ctx, userID := h.RequestContextAndUserID(r)
	members, err := h.service.loadTeam(ctx, h.Now())
	if err != nil {
		h.Logger().Warn("load dashboard team", zap.String("user_id", userID), zap.Error(err))
		h.WriteError(w, r, err)
		return
	}
	loc, _ := h.PageLocalizer(w, r)
	h.WritePage(w, r, webtemplates.T(loc, "web.team.title"), http.StatusOK,
		mainHeader(loc, "web.team.title", "web.team.subtitle"),
		webtemplates.TeamPage(mapTeamView(members), loc))
}

func (h handlers) handleSettings(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.PageLocalizer(w, r)
	h.WritePage(w, r, webtemplates.T(loc, "web.settings.title"), http.StatusOK,
		mainHeader(loc, "web.settings.title", "web.settings.subtitle"),
		webtemplates.SettingsPage(webtemplates.SettingsView{
			Viewer:      h.ResolveRequestViewer(r),
			Preferences: h.ResolveRequestPreferences(r),
			Lang:        lang,
		}, loc))
}
