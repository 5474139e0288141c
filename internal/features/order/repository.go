package order

import (
	"context"
	"errors"
	"time"

	"go-orderboard/internal/common/apperr"
	"go-orderboard/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type OrderRepository interface {
	Insert(ctx context.Context, o *Order) error
	FindByID(ctx context.Context, id string) (*Order, error)
	Find(ctx context.Context, status string, page, limit int64) ([]Order, int64, error)
	FindAll(ctx context.Context) ([]Order, error)
	UpdateByID(ctx context.Context, id string, fields bson.M) (*Order, error)
	DeleteByID(ctx context.Context, id string) error

	FindLatest(ctx context.Context) (*Order, error)
	FindOneByEmail(ctx context.Context, email string) (*Order, error)
	FindTopCustomer(ctx context.Context) (*Order, error)

	EnsureIndexes(ctx context.Context) error
}

type OrderRepositoryImpl struct {
	collection *mongo.Collection
}

func NewOrderRepository(db *database.MongodbDB) OrderRepository {
	return &OrderRepositoryImpl{
		collection: db.DB.Collection("orders"),
	}
}

func (r *OrderRepositoryImpl) Insert(ctx context.Context, o *Order) error {
	if o.ID.IsZero() {
		o.ID = primitive.NewObjectID()
	}
	now := time.Now()
	o.CreatedAt = now
	o.UpdatedAt = now

	if _, err := r.collection.InsertOne(ctx, o); err != nil {
		return apperr.Storage("orders.insert", err)
	}
	return nil
}

func (r *OrderRepositoryImpl) FindByID(ctx context.Context, id string) (*Order, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.ErrNotFound
	}

	var o Order
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&o)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.ErrNotFound
		}
		return nil, apperr.Storage("orders.findOne", err)
	}
	return &o, nil
}

func (r *OrderRepositoryImpl) Find(ctx context.Context, status string, page, limit int64) ([]Order, int64, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip((page - 1) * limit).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, apperr.Storage("orders.find", err)
	}
	defer cursor.Close(ctx)

	orders := []Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, 0, apperr.Storage("orders.decode", err)
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, apperr.Storage("orders.count", err)
	}

	return orders, total, nil
}

func (r *OrderRepositoryImpl) FindAll(ctx context.Context) ([]Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, apperr.Storage("orders.findAll", err)
	}
	defer cursor.Close(ctx)

	orders := []Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, apperr.Storage("orders.decode", err)
	}
	return orders, nil
}

func (r *OrderRepositoryImpl) UpdateByID(ctx context.Context, id string, fields bson.M) (*Order, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.ErrNotFound
	}

	fields["updatedAt"] = time.Now()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated Order
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": fields}, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.ErrNotFound
		}
		return nil, apperr.Storage("orders.update", err)
	}
	return &updated, nil
}

func (r *OrderRepositoryImpl) DeleteByID(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.ErrNotFound
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return apperr.Storage("orders.delete", err)
	}
	if result.DeletedCount == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

// FindLatest returns the most recently created order, or nil when none exist.
func (r *OrderRepositoryImpl) FindLatest(ctx context.Context) (*Order, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	var o Order
	err := r.collection.FindOne(ctx, bson.M{}, opts).Decode(&o)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, apperr.Storage("orders.findLatest", err)
	}
	return &o, nil
}

// FindOneByEmail returns any order placed with the given email, or nil.
func (r *OrderRepositoryImpl) FindOneByEmail(ctx context.Context, email string) (*Order, error) {
	var o Order
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&o)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, apperr.Storage("orders.findByEmail", err)
	}
	return &o, nil
}

// FindTopCustomer returns the order with the highest customerId, or nil.
// Lexicographic sort matches numeric order because the suffix is zero-padded.
func (r *OrderRepositoryImpl) FindTopCustomer(ctx context.Context) (*Order, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "customerId", Value: -1}})

	var o Order
	err := r.collection.FindOne(ctx, bson.M{"customerId": bson.M{"$exists": true}}, opts).Decode(&o)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, apperr.Storage("orders.findTopCustomer", err)
	}
	return &o, nil
}

func (r *OrderRepositoryImpl) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "orderId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "customerId", Value: 1}}},
		{Keys: bson.D{{Key: "email", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	})
	return err
}
