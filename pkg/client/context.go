package client

import (
	"context"
	"sync"
	"time"

	"go-orderboard/internal/features/widget"
)

// OrderContext holds a cached view of the order list. Mutations go through the
// API and reload the full list on success; on failure the cached state is left
// untouched.
type OrderContext struct {
	mu     sync.Mutex
	client *Client

	orders     []Order
	pagination Pagination
	status     string
	page       int64
	limit      int64
}

func NewOrderContext(c *Client) *OrderContext {
	return &OrderContext{client: c, page: 1, limit: 10}
}

// Load fetches the current page from the server.
func (oc *OrderContext) Load(ctx context.Context) error {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.reload(ctx)
}

func (oc *OrderContext) reload(ctx context.Context) error {
	orders, pagination, err := oc.client.ListOrders(ctx, ListOrdersOptions{
		Status: oc.status,
		Page:   oc.page,
		Limit:  oc.limit,
	})
	if err != nil {
		return err
	}
	oc.orders = orders
	if pagination != nil {
		oc.pagination = *pagination
	}
	return nil
}

// SetFilter narrows the list to a status and resets to the first page.
func (oc *OrderContext) SetFilter(ctx context.Context, status string) error {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	oc.status = status
	oc.page = 1
	return oc.reload(ctx)
}

func (oc *OrderContext) SetPage(ctx context.Context, page int64) error {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	if page < 1 {
		page = 1
	}
	oc.page = page
	return oc.reload(ctx)
}

func (oc *OrderContext) Create(ctx context.Context, in *CreateOrderInput) (*Order, error) {
	oc.mu.Lock()
	defer oc.mu.Unlock()

	o, err := oc.client.CreateOrder(ctx, in)
	if err != nil {
		return nil, err
	}
	if err := oc.reload(ctx); err != nil {
		return o, err
	}
	return o, nil
}

func (oc *OrderContext) Update(ctx context.Context, id string, fields map[string]interface{}) (*Order, error) {
	oc.mu.Lock()
	defer oc.mu.Unlock()

	o, err := oc.client.UpdateOrder(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	if err := oc.reload(ctx); err != nil {
		return o, err
	}
	return o, nil
}

func (oc *OrderContext) Delete(ctx context.Context, id string) error {
	oc.mu.Lock()
	defer oc.mu.Unlock()

	if err := oc.client.DeleteOrder(ctx, id); err != nil {
		return err
	}
	return oc.reload(ctx)
}

// Orders returns a copy of the cached page.
func (oc *OrderContext) Orders() []Order {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	out := make([]Order, len(oc.orders))
	copy(out, oc.orders)
	return out
}

func (oc *OrderContext) Pagination() Pagination {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.pagination
}

// DashboardContext holds a cached dashboard configuration and pushes every
// mutation to the server as a full save.
type DashboardContext struct {
	mu     sync.Mutex
	client *Client

	userID     string
	widgets    []widget.Widget
	dateFilter string
}

func NewDashboardContext(c *Client, userID string) *DashboardContext {
	return &DashboardContext{client: c, userID: userID, widgets: []widget.Widget{}}
}

// Load fetches the saved configuration, or the server default.
func (dc *DashboardContext) Load(ctx context.Context) error {
	dc.mu.Lock()
	defer dc.mu.Unlock()

	cfg, err := dc.client.GetDashboard(ctx, dc.userID)
	if err != nil {
		return err
	}
	dc.widgets = cfg.Widgets
	dc.dateFilter = cfg.DateFilter
	return nil
}

// AddWidget appends a new widget of the given type with default title and
// dimensions, then saves. The widget id is the creation timestamp.
func (dc *DashboardContext) AddWidget(ctx context.Context, widgetType string) (widget.Widget, error) {
	dc.mu.Lock()
	defer dc.mu.Unlock()

	w := widget.New(time.Now().UnixMilli(), widgetType)
	next := append(append([]widget.Widget{}, dc.widgets...), w)
	if err := dc.save(ctx, next, dc.dateFilter); err != nil {
		return widget.Widget{}, err
	}
	return w, nil
}

// UpdateWidget validates and replaces the widget with the same id, then saves.
func (dc *DashboardContext) UpdateWidget(ctx context.Context, w widget.Widget) error {
	if errs := widget.Validate(w); len(errs) > 0 {
		return &APIError{StatusCode: 400, Message: "Invalid widget configuration", Fields: errs}
	}

	dc.mu.Lock()
	defer dc.mu.Unlock()

	next := make([]widget.Widget, len(dc.widgets))
	copy(next, dc.widgets)
	for i := range next {
		if next[i].ID == w.ID {
			next[i] = w
		}
	}
	return dc.save(ctx, next, dc.dateFilter)
}

// RemoveWidget drops the widget with the given id, then saves. Removing an
// unknown id is a no-op save.
func (dc *DashboardContext) RemoveWidget(ctx context.Context, id int64) error {
	dc.mu.Lock()
	defer dc.mu.Unlock()

	next := make([]widget.Widget, 0, len(dc.widgets))
	for _, w := range dc.widgets {
		if w.ID != id {
			next = append(next, w)
		}
	}
	return dc.save(ctx, next, dc.dateFilter)
}

// SetDateFilter switches the dashboard-wide date window, then saves.
func (dc *DashboardContext) SetDateFilter(ctx context.Context, dateFilter string) error {
	dc.mu.Lock()
	defer dc.mu.Unlock()
	return dc.save(ctx, dc.widgets, dateFilter)
}

// Reset deletes the server configuration and restores the local default.
func (dc *DashboardContext) Reset(ctx context.Context) error {
	dc.mu.Lock()
	defer dc.mu.Unlock()

	if err := dc.client.ResetDashboard(ctx, dc.userID); err != nil {
		return err
	}
	dc.widgets = []widget.Widget{}
	dc.dateFilter = "all-time"
	return nil
}

// save pushes the candidate state and adopts the server's echo on success.
func (dc *DashboardContext) save(ctx context.Context, widgets []widget.Widget, dateFilter string) error {
	cfg, err := dc.client.SaveDashboard(ctx, dc.userID, widgets, dateFilter)
	if err != nil {
		return err
	}
	dc.widgets = cfg.Widgets
	dc.dateFilter = cfg.DateFilter
	return nil
}

// Widgets returns a copy of the cached widget list.
func (dc *DashboardContext) Widgets() []widget.Widget {
	dc.mu.Lock()
	defer dc.mu.Unlock()
	out := make([]widget.Widget, len(dc.widgets))
	copy(out, dc.widgets)
	return out
}

func (dc *DashboardContext) DateFilter() string {
	dc.mu.Lock()
	defer dc.mu.Unlock()
	return dc.dateFilter
}
