package order

import (
	"context"
	"errors"
	"testing"

	"go-orderboard/internal/common/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

type fakeOrderRepo struct {
	insert          func(ctx context.Context, o *Order) error
	findByID        func(ctx context.Context, id string) (*Order, error)
	find            func(ctx context.Context, status string, page, limit int64) ([]Order, int64, error)
	findAll         func(ctx context.Context) ([]Order, error)
	updateByID      func(ctx context.Context, id string, fields bson.M) (*Order, error)
	deleteByID      func(ctx context.Context, id string) error
	findLatest      func(ctx context.Context) (*Order, error)
	findOneByEmail  func(ctx context.Context, email string) (*Order, error)
	findTopCustomer func(ctx context.Context) (*Order, error)
}

func (f *fakeOrderRepo) Insert(ctx context.Context, o *Order) error { return f.insert(ctx, o) }
func (f *fakeOrderRepo) FindByID(ctx context.Context, id string) (*Order, error) {
	return f.findByID(ctx, id)
}
func (f *fakeOrderRepo) Find(ctx context.Context, status string, page, limit int64) ([]Order, int64, error) {
	return f.find(ctx, status, page, limit)
}
func (f *fakeOrderRepo) FindAll(ctx context.Context) ([]Order, error) { return f.findAll(ctx) }
func (f *fakeOrderRepo) UpdateByID(ctx context.Context, id string, fields bson.M) (*Order, error) {
	return f.updateByID(ctx, id, fields)
}
func (f *fakeOrderRepo) DeleteByID(ctx context.Context, id string) error { return f.deleteByID(ctx, id) }
func (f *fakeOrderRepo) FindLatest(ctx context.Context) (*Order, error) { return f.findLatest(ctx) }
func (f *fakeOrderRepo) FindOneByEmail(ctx context.Context, email string) (*Order, error) {
	return f.findOneByEmail(ctx, email)
}
func (f *fakeOrderRepo) FindTopCustomer(ctx context.Context) (*Order, error) {
	return f.findTopCustomer(ctx)
}
func (f *fakeOrderRepo) EnsureIndexes(ctx context.Context) error { return nil }

func newTestService(repo *fakeOrderRepo) OrderService {
	return NewOrderService(repo, NewIDGenerator(repo), zap.NewNop())
}

func emptyRepo() *fakeOrderRepo {
	return &fakeOrderRepo{
		insert:          func(ctx context.Context, o *Order) error { return nil },
		findLatest:      func(ctx context.Context) (*Order, error) { return nil, nil },
		findOneByEmail:  func(ctx context.Context, email string) (*Order, error) { return nil, nil },
		findTopCustomer: func(ctx context.Context) (*Order, error) { return nil, nil },
	}
}

func TestCreateRequiresCustomerAndProduct(t *testing.T) {
	svc := newTestService(emptyRepo())

	_, err := svc.Create(context.Background(), &CreateOrderInput{})

	var ve *apperr.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Customer name and email are required", ve.Fields["customer"])
	assert.Equal(t, "Product is required", ve.Fields["product"])
}

func TestCreateRejectsNegativeAmounts(t *testing.T) {
	svc := newTestService(emptyRepo())

	_, err := svc.Create(context.Background(), &CreateOrderInput{
		FirstName: "Jane", LastName: "Doe", Email: "jane@example.com",
		Product: "Laptop", Quantity: -1, UnitPrice: -2, TotalAmount: -3,
	})

	var ve *apperr.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "quantity")
	assert.Contains(t, ve.Fields, "unitPrice")
	assert.Contains(t, ve.Fields, "totalAmount")
}

func TestCreateAppliesDefaults(t *testing.T) {
	var inserted *Order
	repo := emptyRepo()
	repo.insert = func(ctx context.Context, o *Order) error {
		inserted = o
		return nil
	}
	svc := newTestService(repo)

	o, err := svc.Create(context.Background(), &CreateOrderInput{
		FirstName: "Jane", LastName: "Doe", Email: "  Jane@Example.COM ",
		Product: "Laptop",
	})
	require.NoError(t, err)
	require.NotNil(t, inserted)

	assert.Equal(t, "ORD-0001", o.OrderID)
	assert.Equal(t, "CUST-0001", o.CustomerID)
	assert.Equal(t, "jane@example.com", o.Email)
	assert.Equal(t, 1, o.Quantity)
	assert.Equal(t, StatusPending, o.Status)
}

func TestCreateReusesCustomerIDByEmail(t *testing.T) {
	repo := emptyRepo()
	repo.findOneByEmail = func(ctx context.Context, email string) (*Order, error) {
		return &Order{CustomerID: "CUST-0005"}, nil
	}
	repo.findLatest = func(ctx context.Context) (*Order, error) {
		return &Order{OrderID: "ORD-0003"}, nil
	}
	svc := newTestService(repo)

	o, err := svc.Create(context.Background(), &CreateOrderInput{
		FirstName: "Jane", LastName: "Doe", Email: "jane@example.com",
		Product: "Laptop",
	})
	require.NoError(t, err)

	assert.Equal(t, "CUST-0005", o.CustomerID)
	assert.Equal(t, "ORD-0004", o.OrderID)
}

func TestUpdateStripsProtectedFields(t *testing.T) {
	var gotSet bson.M
	repo := emptyRepo()
	repo.updateByID = func(ctx context.Context, id string, fields bson.M) (*Order, error) {
		gotSet = fields
		return &Order{OrderID: "ORD-0001"}, nil
	}
	svc := newTestService(repo)

	_, err := svc.Update(context.Background(), "abc", map[string]interface{}{
		"orderId":    "ORD-9999",
		"customerId": "CUST-9999",
		"_id":        "whatever",
		"createdAt":  "2020-01-01",
		"email":      " Jane@Example.COM ",
		"status":     StatusCompleted,
	})
	require.NoError(t, err)

	assert.NotContains(t, gotSet, "orderId")
	assert.NotContains(t, gotSet, "customerId")
	assert.NotContains(t, gotSet, "_id")
	assert.NotContains(t, gotSet, "createdAt")
	assert.Equal(t, "jane@example.com", gotSet["email"])
	assert.Equal(t, StatusCompleted, gotSet["status"])
}

func TestDeletePropagatesNotFound(t *testing.T) {
	repo := emptyRepo()
	repo.deleteByID = func(ctx context.Context, id string) error { return apperr.ErrNotFound }
	svc := newTestService(repo)

	err := svc.Delete(context.Background(), "missing")
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

func TestListPagination(t *testing.T) {
	tests := []struct {
		name      string
		total     int64
		page      int64
		limit     int64
		wantPage  int64
		wantPages int64
	}{
		{"exact pages", 20, 1, 10, 1, 2},
		{"partial last page", 21, 2, 10, 2, 3},
		{"clamps page and limit", 5, 0, 0, 1, 1},
		{"empty", 0, 1, 10, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := emptyRepo()
			repo.find = func(ctx context.Context, status string, page, limit int64) ([]Order, int64, error) {
				return []Order{}, tt.total, nil
			}
			svc := newTestService(repo)

			_, p, err := svc.List(context.Background(), "", tt.page, tt.limit)
			require.NoError(t, err)

			assert.Equal(t, tt.total, p.Total)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantPages, p.Pages)
		})
	}
}
