package dashboard

import (
	"context"

	"go-orderboard/internal/common/apperr"
	"go-orderboard/internal/features/widget"

	"go.uber.org/zap"
)

type DashboardService interface {
	Get(ctx context.Context, userID string) (*Dashboard, error)
	Save(ctx context.Context, userID string, widgets []widget.Widget, dateFilter string) (*Dashboard, error)
	Reset(ctx context.Context, userID string) error
}

type DashboardServiceImpl struct {
	DashboardRepo DashboardRepository
	Logger        *zap.Logger
}

func NewDashboardService(dashboardRepo DashboardRepository, logger *zap.Logger) DashboardService {
	return &DashboardServiceImpl{
		DashboardRepo: dashboardRepo,
		Logger:        logger,
	}
}

// Get returns the saved configuration, or the empty default when none exists.
func (s *DashboardServiceImpl) Get(ctx context.Context, userID string) (*Dashboard, error) {
	if userID == "" {
		userID = DefaultUserID
	}

	d, err := s.DashboardRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return &Dashboard{
			UserID:     userID,
			Widgets:    []widget.Widget{},
			DateFilter: DefaultDateFilter,
		}, nil
	}
	if d.Widgets == nil {
		d.Widgets = []widget.Widget{}
	}
	return d, nil
}

// Save upserts the whole configuration. A nil widgets slice means the request
// body did not carry a list and is rejected.
func (s *DashboardServiceImpl) Save(ctx context.Context, userID string, widgets []widget.Widget, dateFilter string) (*Dashboard, error) {
	if widgets == nil {
		return nil, apperr.NewValidation(map[string]string{
			"widgets": "Widgets must be an array",
		})
	}

	if userID == "" {
		userID = DefaultUserID
	}
	if dateFilter == "" {
		dateFilter = DefaultDateFilter
	}

	stored, err := s.DashboardRepo.Upsert(ctx, &Dashboard{
		UserID:     userID,
		Widgets:    widgets,
		DateFilter: dateFilter,
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Info("dashboard saved",
		zap.String("userId", userID),
		zap.Int("widgets", len(widgets)),
		zap.String("dateFilter", dateFilter))
	return stored, nil
}

// Reset deletes the configuration; resetting an absent one succeeds.
func (s *DashboardServiceImpl) Reset(ctx context.Context, userID string) error {
	if userID == "" {
		userID = DefaultUserID
	}
	if err := s.DashboardRepo.DeleteByUserID(ctx, userID); err != nil {
		return err
	}
	s.Logger.Info("dashboard reset", zap.String("userId", userID))
	return nil
}
