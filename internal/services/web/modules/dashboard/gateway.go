package dashboard

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/teamboost/gratitudewall/internal/mockdata"
	"github.com/teamboost/gratitudewall/internal/platform/requestctx"
	apperrors "github.com/teamboost/gratitudewall/internal/services/web/platform/errors"
)

// NotesGateway loads the people and notes shown on dashboard pages.
type NotesGateway interface {
	ListUsers(context.Context) ([]mockdata.User, error)
	ListNotes(context.Context, time.Time) ([]mockdata.NoteWithRelations, error)
}

type catalogGateway struct {
	catalog *mockdata.Catalog
}

// NewCatalogGateway reads dashboard data from the static catalog.
func NewCatalogGateway(catalog *mockdata.Catalog) NotesGateway {
	return catalogGateway{catalog: catalog}
}

func (g catalogGateway) ListUsers(ctx context.Context) ([]mockdata.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	annotateViewer(ctx)
	return g.catalog.Users(), nil
}

func (g catalogGateway) ListNotes(ctx context.Context, now time.Time) ([]mockdata.NoteWithRelations, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	annotateViewer(ctx)
	return g.catalog.NotesWithRelations(now), nil
}

// annotateViewer tags the active span with the requesting user.
func annotateViewer(ctx context.Context) {
	userID := requestctx.UserIDFromContext(ctx)
	if userID == "" {
		return
	}
	trace.SpanFromContext(ctx).SetAttributes(attribute.String("gratitude.viewer.id", userID))
}

type unavailableGateway struct{}

func (unavailableGateway) ListUsers(context.Context) ([]mockdata.User, error) {
	return nil, apperrors.E(apperrors.KindUnavailable, "dashboard catalog is not configured")
}

func (unavailableGateway) ListNotes(context.Context, time.Time) ([]mockdata.NoteWithRelations, error) {
	return nil, apperrors.E(apperrors.KindUnavailable, "dashboard catalog is not configured")
}
