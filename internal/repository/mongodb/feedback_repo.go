package mongodb

import (
	"context"
	"log"
	"time"

	"canteen-service/internal/domain"
	"canteen-service/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type feedbackRepo struct {
	coll *mongo.Collection
}

func NewFeedbackRepository(db *mongo.Database) repository.FeedbackRepository {
	return &feedbackRepo{coll: db.Collection("feedbacks")}
}

func (r *feedbackRepo) Insert(ctx context.Context, fb *domain.Feedback) error {
	fb.CreatedAt = time.Now()

	result, err := r.coll.InsertOne(ctx, fb)
	if err != nil {
		log.Printf("feedback insert error: %v", err)
		return err
	}
	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		fb.ID = id
	}
	return nil
}

func (r *feedbackRepo) FindAll(ctx context.Context, excludeAdmin bool) ([]domain.Feedback, error) {
	filter := bson.M{}
	if excludeAdmin {
		filter["isAdmin"] = false
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		log.Printf("feedback find error: %v", err)
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []domain.Feedback
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
