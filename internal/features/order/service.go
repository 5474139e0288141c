package order

import (
	"context"
	"strings"

	"go-orderboard/internal/common/apperr"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// Pagination describes one page of a list result.
type Pagination struct {
	Total int64 `json:"total"`
	Page  int64 `json:"page"`
	Pages int64 `json:"pages"`
}

// Fields that are never client-overridable on update.
var protectedFields = map[string]bool{
	"_id":        true,
	"orderId":    true,
	"customerId": true,
	"createdAt":  true,
	"updatedAt":  true,
}

type OrderService interface {
	Create(ctx context.Context, in *CreateOrderInput) (*Order, error)
	List(ctx context.Context, status string, page, limit int64) ([]Order, Pagination, error)
	Get(ctx context.Context, id string) (*Order, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) (*Order, error)
	Delete(ctx context.Context, id string) error
	All(ctx context.Context) ([]Order, error)
	ExportXLSX(ctx context.Context) ([]byte, string, error)
}

type OrderServiceImpl struct {
	OrderRepo OrderRepository
	IDGen     *IDGenerator
	Logger    *zap.Logger
}

func NewOrderService(orderRepo OrderRepository, idGen *IDGenerator, logger *zap.Logger) OrderService {
	return &OrderServiceImpl{
		OrderRepo: orderRepo,
		IDGen:     idGen,
		Logger:    logger,
	}
}

func (s *OrderServiceImpl) Create(ctx context.Context, in *CreateOrderInput) (*Order, error) {
	if errs := validateCreate(in); len(errs) > 0 {
		return nil, apperr.NewValidation(errs)
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))

	// Reuse the caller-provided customer ID, otherwise resolve by email
	customerID := in.CustomerID
	if customerID == "" {
		id, err := s.IDGen.NextCustomerID(ctx, email)
		if err != nil {
			return nil, err
		}
		customerID = id
	}

	orderID, err := s.IDGen.NextOrderID(ctx)
	if err != nil {
		return nil, err
	}

	quantity := in.Quantity
	if quantity == 0 {
		quantity = 1
	}
	status := in.Status
	if status == "" {
		status = StatusPending
	}

	o := &Order{
		OrderID:       orderID,
		CustomerID:    customerID,
		FirstName:     strings.TrimSpace(in.FirstName),
		LastName:      strings.TrimSpace(in.LastName),
		Email:         email,
		PhoneNumber:   strings.TrimSpace(in.PhoneNumber),
		StreetAddress: strings.TrimSpace(in.StreetAddress),
		City:          strings.TrimSpace(in.City),
		State:         strings.TrimSpace(in.State),
		PostalCode:    strings.TrimSpace(in.PostalCode),
		Country:       strings.TrimSpace(in.Country),
		Product:       strings.TrimSpace(in.Product),
		Quantity:      quantity,
		UnitPrice:     in.UnitPrice,
		TotalAmount:   in.TotalAmount,
		Status:        status,
		CreatedBy:     in.CreatedBy,
	}

	if err := s.OrderRepo.Insert(ctx, o); err != nil {
		s.Logger.Error("failed to insert order", zap.String("orderId", orderID), zap.Error(err))
		return nil, err
	}

	s.Logger.Info("order created", zap.String("orderId", o.OrderID), zap.String("customerId", o.CustomerID))
	return o, nil
}

func (s *OrderServiceImpl) List(ctx context.Context, status string, page, limit int64) ([]Order, Pagination, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	orders, total, err := s.OrderRepo.Find(ctx, status, page, limit)
	if err != nil {
		return nil, Pagination{}, err
	}

	pages := total / limit
	if total%limit != 0 {
		pages++
	}

	return orders, Pagination{Total: total, Page: page, Pages: pages}, nil
}

func (s *OrderServiceImpl) Get(ctx context.Context, id string) (*Order, error) {
	return s.OrderRepo.FindByID(ctx, id)
}

func (s *OrderServiceImpl) Update(ctx context.Context, id string, fields map[string]interface{}) (*Order, error) {
	set := bson.M{}
	for k, v := range fields {
		if protectedFields[k] {
			continue
		}
		if k == "email" {
			if str, ok := v.(string); ok {
				v = strings.ToLower(strings.TrimSpace(str))
			}
		}
		set[k] = v
	}

	updated, err := s.OrderRepo.UpdateByID(ctx, id, set)
	if err != nil {
		return nil, err
	}

	s.Logger.Info("order updated", zap.String("orderId", updated.OrderID))
	return updated, nil
}

func (s *OrderServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.OrderRepo.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.Logger.Info("order deleted", zap.String("id", id))
	return nil
}

func (s *OrderServiceImpl) All(ctx context.Context) ([]Order, error) {
	return s.OrderRepo.FindAll(ctx)
}

func validateCreate(in *CreateOrderInput) map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(in.FirstName) == "" || strings.TrimSpace(in.LastName) == "" || strings.TrimSpace(in.Email) == "" {
		errs["customer"] = "Customer name and email are required"
	}
	if strings.TrimSpace(in.Product) == "" {
		errs["product"] = "Product is required"
	}
	if in.Quantity < 0 {
		errs["quantity"] = "Quantity must be at least 1"
	}
	if in.UnitPrice < 0 {
		errs["unitPrice"] = "Unit price cannot be negative"
	}
	if in.TotalAmount < 0 {
		errs["totalAmount"] = "Total amount cannot be negative"
	}
	return errs
}
