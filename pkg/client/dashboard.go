package client

import (
	"context"
	"net/http"
	"net/url"

	"go-orderboard/internal/features/widget"
)

// DashboardConfig is the client-side view of a dashboard configuration.
type DashboardConfig struct {
	Widgets    []widget.Widget `json:"widgets"`
	DateFilter string          `json:"dateFilter"`
}

type saveDashboardRequest struct {
	UserID     string          `json:"userId,omitempty"`
	Widgets    []widget.Widget `json:"widgets"`
	DateFilter string          `json:"dateFilter,omitempty"`
}

func (c *Client) GetDashboard(ctx context.Context, userID string) (*DashboardConfig, error) {
	path := "/api/dashboard"
	if userID != "" {
		path += "?userId=" + url.QueryEscape(userID)
	}

	var cfg DashboardConfig
	if _, err := c.do(ctx, http.MethodGet, path, nil, &cfg); err != nil {
		return nil, err
	}
	if cfg.Widgets == nil {
		cfg.Widgets = []widget.Widget{}
	}
	return &cfg, nil
}

func (c *Client) SaveDashboard(ctx context.Context, userID string, widgets []widget.Widget, dateFilter string) (*DashboardConfig, error) {
	// The server rejects a missing widgets list, never send nil
	if widgets == nil {
		widgets = []widget.Widget{}
	}

	var cfg DashboardConfig
	req := saveDashboardRequest{UserID: userID, Widgets: widgets, DateFilter: dateFilter}
	if _, err := c.do(ctx, http.MethodPost, "/api/dashboard", req, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Client) ResetDashboard(ctx context.Context, userID string) error {
	path := "/api/dashboard"
	if userID != "" {
		path += "?userId=" + url.QueryEscape(userID)
	}
	_, err := c.do(ctx, http.MethodDelete, path, nil, nil)
	return err
}
