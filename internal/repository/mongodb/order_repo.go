package mongodb

import (
	"context"
	"errors"
	"log"
	"time"

	"canteen-service/internal/domain"
	"canteen-service/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type orderRepo struct {
	coll *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) repository.OrderRepository {
	return &orderRepo{coll: db.Collection("orders")}
}

func (r *orderRepo) Save(ctx context.Context, order *domain.Order) error {
	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now

	result, err := r.coll.InsertOne(ctx, order)
	if err != nil {
		log.Printf("order save error: %v", err)
		return err
	}
	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		order.ID = id
	}
	return nil
}

func (r *orderRepo) ApplyStatusChange(ctx context.Context, id primitive.ObjectID, change repository.StatusChange) (bool, error) {
	// Guard and $set are one document update; a transition that committed
	// since the caller's read fails the status filter instead of being
	// overwritten.
	set := bson.M{"status": change.Status, "updatedAt": time.Now()}
	if change.ActualDeliveryTime != nil {
		set["actualDeliveryTime"] = *change.ActualDeliveryTime
	}
	if change.EstimatedDeliveryTime != nil {
		set["estimatedDeliveryTime"] = *change.EstimatedDeliveryTime
	}

	result, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id, "status": change.Guard},
		bson.M{"$set": set},
	)
	if err != nil {
		log.Printf("order status change error: %v", err)
		return false, err
	}
	return result.MatchedCount > 0, nil
}

func (r *orderRepo) SetPaymentResult(ctx context.Context, id primitive.ObjectID, status domain.PaymentStatus, method domain.PaymentMethod) error {
	_, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"paymentStatus": status,
			"paymentMethod": method,
			"updatedAt":     time.Now(),
		}},
	)
	if err != nil {
		log.Printf("order payment result error: %v", err)
	}
	return err
}

func (r *orderRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Order, error) {
	var o domain.Order
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&o); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		log.Printf("order FindByID error: %v", err)
		return nil, err
	}
	return &o, nil
}

func (r *orderRepo) Find(ctx context.Context, q repository.OrderQuery) ([]domain.Order, int64, error) {
	filter := bson.M{}
	if q.UserID != "" {
		filter["userId"] = q.UserID
	}
	if q.Status != "" {
		filter["status"] = q.Status
	}
	if q.Day != nil {
		start := time.Date(q.Day.Year(), q.Day.Month(), q.Day.Day(), 0, 0, 0, 0, q.Day.Location())
		filter["createdAt"] = bson.M{"$gte": start, "$lt": start.AddDate(0, 0, 1)}
	}

	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit < 1 {
		limit = 10
	}

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		log.Printf("order count error: %v", err)
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip((page - 1) * limit).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		log.Printf("order find error: %v", err)
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var out []domain.Order
	if err := cursor.All(ctx, &out); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *orderRepo) CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{
		"createdAt": bson.M{"$gte": from, "$lt": to},
	})
}

func (r *orderRepo) RevenueBetween(ctx context.Context, from, to time.Time) (int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"createdAt": bson.M{"$gte": from, "$lt": to},
			"status":    bson.M{"$ne": domain.StatusCancelled},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$totalAmount"},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		log.Printf("revenue aggregate error: %v", err)
		return 0, err
	}
	defer cursor.Close(ctx)

	var results []struct {
		Total int64 `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}

func (r *orderRepo) CountByStatus(ctx context.Context, status domain.OrderStatus) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{"status": status})
}
