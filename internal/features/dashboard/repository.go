package dashboard

import (
	"context"
	"errors"
	"time"

	"go-orderboard/internal/common/apperr"
	"go-orderboard/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type DashboardRepository interface {
	FindByUserID(ctx context.Context, userID string) (*Dashboard, error)
	Upsert(ctx context.Context, d *Dashboard) (*Dashboard, error)
	DeleteByUserID(ctx context.Context, userID string) error
	EnsureIndexes(ctx context.Context) error
}

type DashboardRepositoryImpl struct {
	collection *mongo.Collection
}

func NewDashboardRepository(db *database.MongodbDB) DashboardRepository {
	return &DashboardRepositoryImpl{
		collection: db.DB.Collection("dashboards"),
	}
}

// FindByUserID returns nil (not an error) when the user has no saved dashboard.
func (r *DashboardRepositoryImpl) FindByUserID(ctx context.Context, userID string) (*Dashboard, error) {
	var d Dashboard
	err := r.collection.FindOne(ctx, bson.M{"userId": userID}).Decode(&d)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, apperr.Storage("dashboards.findOne", err)
	}
	return &d, nil
}

// Upsert atomically replaces or creates the user's configuration in a single
// FindOneAndUpdate, so concurrent saves cannot interleave a read-then-write.
func (r *DashboardRepositoryImpl) Upsert(ctx context.Context, d *Dashboard) (*Dashboard, error) {
	now := time.Now()

	update := bson.M{
		"$set": bson.M{
			"userId":     d.UserID,
			"widgets":    d.Widgets,
			"dateFilter": d.DateFilter,
			"updatedAt":  now,
		},
		"$setOnInsert": bson.M{
			"createdAt": now,
		},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var stored Dashboard
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"userId": d.UserID}, update, opts).Decode(&stored)
	if err != nil {
		return nil, apperr.Storage("dashboards.upsert", err)
	}
	return &stored, nil
}

// DeleteByUserID removes the configuration if present; absence is not an error.
func (r *DashboardRepositoryImpl) DeleteByUserID(ctx context.Context, userID string) error {
	if _, err := r.collection.DeleteOne(ctx, bson.M{"userId": userID}); err != nil {
		return apperr.Storage("dashboards.delete", err)
	}
	return nil
}

func (r *DashboardRepositoryImpl) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
