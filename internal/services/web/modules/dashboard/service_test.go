package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/teamboost/gratitudewall/internal/mockdata"
	apperrors "github.com/teamboost/gratitudewall/internal/services/web/platform/errors"
)

func TestLoadOverviewCountsCatalog(t *testing.T) {
	t.Parallel()

	svc := newService(NewCatalogGateway(mockdata.Default()))
	overview, err := svc.loadOverview(context.Background(), testNow)
	if err != nil {
		t.Fatalf("loadOverview() error = %v", err)
	}
	got := []int{overview.TotalNotes, overview.Published, overview.Members, overview.ActiveSenders}
	if diff := cmp.Diff([]int{5, 5, 4, 4}, got); diff != "" {
		t.Fatalf("overview counts mismatch (-want +got):\n%s", diff)
	}
	if overview.Notes[0].ID != "n1" || overview.Notes[4].ID != "n5" {
		t.Fatalf("Notes lost catalog order: first=%q last=%q", overview.Notes[0].ID, overview.Notes[4].ID)
	}
	var activity []string
	for _, note := range overview.Activity {
		activity = append(activity, note.ID)
	}
	if diff := cmp.Diff([]string{"n1", "n2", "n4", "n3", "n5"}, activity); diff != "" {
		t.Fatalf("activity order mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadOverviewLimitsActivityAndSkipsDrafts(t *testing.T) {
	t.Parallel()

	gateway := &fakeGateway{users: []mockdata.User{{ID: "u1"}}}
	for i := range 8 {
		status := mockdata.StatusPublished
		if i%2 == 1 {
			status = mockdata.StatusDraft
		}
		gateway.notes = append(gateway.notes, mockdata.NoteWithRelations{
			Note:      mockdata.Note{ID: string(rune('a' + i)), AuthorID: "u1", Status: status},
			CreatedAt: testNow.Add(-time.Duration(i) * time.Hour),
		})
	}
	overview, err := newService(gateway).loadOverview(context.Background(), testNow)
	if err != nil {
		t.Fatalf("loadOverview() error = %v", err)
	}
	if overview.Published != 4 {
		t.Fatalf("Published = %d, want 4", overview.Published)
	}
	if overview.ActiveSenders != 1 {
		t.Fatalf("ActiveSenders = %d, want 1", overview.ActiveSenders)
	}
	if len(overview.Activity) != recentActivityLimit {
		t.Fatalf("len(Activity) = %d, want %d", len(overview.Activity), recentActivityLimit)
	}
	if !gateway.gotNow.Equal(testNow) {
		t.Fatalf("gateway now = %v, want %v", gateway.gotNow, testNow)
	}
}

func TestLoadTeamCountsSentAndReceived(t *testing.T) {
	t.Parallel()

	members, err := newService(NewCatalogGateway(mockdata.Default())).loadTeam(context.Background(), testNow)
	if err != nil {
		t.Fatalf("loadTeam() error = %v", err)
	}
	got := map[string][2]int{}
	for _, member := range members {
		got[member.User.ID] = [2]int{member.Sent, member.Received}
	}
	want := map[string][2]int{
		"u1": {2, 1},
		"u2": {1, 2},
		"u3": {1, 1},
		"u4": {1, 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("team counts mismatch (-want +got):\n%s", diff)
	}
}

func TestServiceWrapsGatewayErrors(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	svc := newService(&fakeGateway{notesErr: boom})
	if _, err := svc.loadNotes(context.Background(), testNow); !errors.Is(err, boom) {
		t.Fatalf("loadNotes() error = %v, want wrapped boom", err)
	}
	if _, err := svc.loadTeam(context.Background(), testNow); !errors.Is(err, boom) {
		t.Fatalf("loadTeam() error = %v, want wrapped boom", err)
	}
}

func TestServiceWithoutGatewayIsUnavailable(t *testing.T) {
	t.Parallel()

	_, err := newService(nil).loadOverview(context.Background(), testNow)
	if got := apperrors.KindOf(err); got != apperrors.KindUnavailable {
		t.Fatalf("KindOf(err) = %q, want %q", got, apperrors.KindUnavailable)
	}
}

func TestCatalogGatewayHonorsCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewCatalogGateway(mockdata.Default()).ListNotes(ctx, testNow); !errors.Is(err, context.Canceled) {
		t.Fatalf("ListNotes() error = %v, want context.Canceled", err)
	}
}
