package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/teamboost/gratitudewall/internal/mockdata"
)

// recentActivityLimit caps the overview activity feed.
const recentActivityLimit = 5

// Overview is the data behind the dashboard home.
type Overview struct {
	TotalNotes    int
	Published     int
	Members       int
	ActiveSenders int
	// Notes keeps catalog order; Activity is newest first.
	Notes    []mockdata.NoteWithRelations
	Activity []mockdata.NoteWithRelations
}

// TeamMember pairs a user with how many notes they sent and received.
type TeamMember struct {
	User     mockdata.User
	Sent     int
	Received int
}

type service struct {
	gateway NotesGateway
}

func newService(gateway NotesGateway) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{gateway: gateway}
}

func (s service) loadOverview(ctx context.Context, now time.Time) (Overview, error) {
	users, err := s.gateway.ListUsers(ctx)
	if err != nil {
		return Overview{}, fmt.Errorf("list users: %w", err)
	}
	notes, err := s.gateway.ListNotes(ctx, now)
	if err != nil {
		return Overview{}, fmt.Errorf("list notes: %w", err)
	}

	senders := make(map[string]struct{}, len(users))
	published := 0
	for _, note := range notes {
		if note.Status == mockdata.StatusPublished {
			published++
		}
		if note.AuthorID != "" {
			senders[note.AuthorID] = struct{}{}
		}
	}
	activity := mockdata.NewestFirst(notes)
	if len(activity) > recentActivityLimit {
		activity = activity[:recentActivityLimit]
	}
	return Overview{
		TotalNotes:    len(notes),
		Published:     published,
		Members:       len(users),
		ActiveSenders: len(senders),
		Notes:         notes,
		Activity:      activity,
	}, nil
}

func (s service) loadNotes(ctx context.Context, now time.Time) ([]mockdata.NoteWithRelations, error) {
	notes, err := s.gateway.ListNotes(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return notes, nil
}

func (s service) loadTeam(ctx context.Context, now time.Time) ([]TeamMember, error) {
	users, err := s.gateway.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	notes, err := s.gateway.ListNotes(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	sent := make(map[string]int, len(users))
	received := make(map[string]int, len(users))
	for _, note := range notes {
		sent[note.AuthorID]++
		received[note.RecipientID]++
	}
	members := make([]TeamMember, 0, len(users))
	for _, user := range users {
		members = append(members, TeamMember{User: user, Sent: sent[user.ID], Received: received[user.ID]})
	}
	return members, nil
}
