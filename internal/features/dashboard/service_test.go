package dashboard

import (
	"context"
	"testing"

	"go-orderboard/internal/common/apperr"
	"go-orderboard/internal/features/widget"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeDashboardRepo struct {
	findByUserID   func(ctx context.Context, userID string) (*Dashboard, error)
	upsert         func(ctx context.Context, d *Dashboard) (*Dashboard, error)
	deleteByUserID func(ctx context.Context, userID string) error
}

func (f *fakeDashboardRepo) FindByUserID(ctx context.Context, userID string) (*Dashboard, error) {
	return f.findByUserID(ctx, userID)
}
func (f *fakeDashboardRepo) Upsert(ctx context.Context, d *Dashboard) (*Dashboard, error) {
	return f.upsert(ctx, d)
}
func (f *fakeDashboardRepo) DeleteByUserID(ctx context.Context, userID string) error {
	return f.deleteByUserID(ctx, userID)
}
func (f *fakeDashboardRepo) EnsureIndexes(ctx context.Context) error { return nil }

func TestGetReturnsDefaultWhenMissing(t *testing.T) {
	repo := &fakeDashboardRepo{
		findByUserID: func(ctx context.Context, userID string) (*Dashboard, error) {
			assert.Equal(t, DefaultUserID, userID)
			return nil, nil
		},
	}
	svc := NewDashboardService(repo, zap.NewNop())

	d, err := svc.Get(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, DefaultUserID, d.UserID)
	assert.Equal(t, DefaultDateFilter, d.DateFilter)
	assert.NotNil(t, d.Widgets)
	assert.Empty(t, d.Widgets)
}

func TestGetNormalizesNilWidgets(t *testing.T) {
	repo := &fakeDashboardRepo{
		findByUserID: func(ctx context.Context, userID string) (*Dashboard, error) {
			return &Dashboard{UserID: userID, DateFilter: "today"}, nil
		},
	}
	svc := NewDashboardService(repo, zap.NewNop())

	d, err := svc.Get(context.Background(), "u1")
	require.NoError(t, err)

	assert.NotNil(t, d.Widgets)
	assert.Equal(t, "today", d.DateFilter)
}

func TestSaveRejectsNilWidgets(t *testing.T) {
	svc := NewDashboardService(&fakeDashboardRepo{}, zap.NewNop())

	_, err := svc.Save(context.Background(), "u1", nil, "all-time")

	var ve *apperr.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Widgets must be an array", ve.Fields["widgets"])
}

func TestSaveAppliesDefaultsAndUpserts(t *testing.T) {
	var saved *Dashboard
	repo := &fakeDashboardRepo{
		upsert: func(ctx context.Context, d *Dashboard) (*Dashboard, error) {
			saved = d
			return d, nil
		},
	}
	svc := NewDashboardService(repo, zap.NewNop())

	widgets := []widget.Widget{widget.New(1, widget.TypeKPI)}
	d, err := svc.Save(context.Background(), "", widgets, "")
	require.NoError(t, err)
	require.NotNil(t, saved)

	assert.Equal(t, DefaultUserID, saved.UserID)
	assert.Equal(t, DefaultDateFilter, saved.DateFilter)
	assert.Len(t, d.Widgets, 1)
}

func TestSaveAcceptsEmptyWidgetList(t *testing.T) {
	repo := &fakeDashboardRepo{
		upsert: func(ctx context.Context, d *Dashboard) (*Dashboard, error) { return d, nil },
	}
	svc := NewDashboardService(repo, zap.NewNop())

	d, err := svc.Save(context.Background(), "u1", []widget.Widget{}, "today")
	require.NoError(t, err)
	assert.Empty(t, d.Widgets)
}

func TestResetDefaultsUserID(t *testing.T) {
	var deleted string
	repo := &fakeDashboardRepo{
		deleteByUserID: func(ctx context.Context, userID string) error {
			deleted = userID
			return nil
		},
	}
	svc := NewDashboardService(repo, zap.NewNop())

	require.NoError(t, svc.Reset(context.Background(), ""))
	assert.Equal(t, DefaultUserID, deleted)
}
