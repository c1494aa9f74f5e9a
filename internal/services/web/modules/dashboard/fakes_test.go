package dashboard

import (
	"context"
	"time"

	"github.com/teamboost/gratitudewall/internal/mockdata"
)

// fakeGateway implements NotesGateway with configurable return values and
// call tracking.
type fakeGateway struct {
	users    []mockdata.User
	notes    []mockdata.NoteWithRelations
	usersErr error
	notesErr error
	gotNow   time.Time
}

func (f *fakeGateway) ListUsers(context.Context) ([]mockdata.User, error) {
	if f.usersErr != nil {
		return nil, f.usersErr
	}
	return f.users, nil
}

func (f *fakeGateway) ListNotes(_ context.Context, now time.Time) ([]mockdata.NoteWithRelations, error) {
	f.gotNow = now
	if f.notesErr != nil {
		return nil, f.notesErr
	}
	return f.notes, nil
}

var testNow = time.Date(2026, 3, 4, 15, 30, 0, 0, time.UTC)
