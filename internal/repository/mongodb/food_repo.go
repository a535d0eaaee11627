package mongodb

import (
	"context"
	"errors"
	"log"

	"canteen-service/internal/domain"
	"canteen-service/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type foodRepo struct {
	coll *mongo.Collection
}

func NewFoodRepository(db *mongo.Database) repository.FoodRepository {
	return &foodRepo{coll: db.Collection("foods")}
}

func (r *foodRepo) Insert(ctx context.Context, food *domain.Food) error {
	if food.LowStockThreshold <= 0 {
		food.LowStockThreshold = domain.DefaultLowStockThreshold
	}

	result, err := r.coll.InsertOne(ctx, food)
	if err != nil {
		log.Printf("food insert error: %v", err)
		return err
	}
	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		food.ID = id
	}
	return nil
}

func (r *foodRepo) FindAll(ctx context.Context) ([]domain.Food, error) {
	return r.findMany(ctx, bson.M{})
}

func (r *foodRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Food, error) {
	var f domain.Food
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&f); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		log.Printf("food FindByID error: %v", err)
		return nil, err
	}
	return &f, nil
}

func (r *foodRepo) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		log.Printf("food delete error: %v", err)
		return false, err
	}
	return result.DeletedCount > 0, nil
}

func (r *foodRepo) FindTodaysMenu(ctx context.Context) ([]domain.Food, error) {
	return r.findMany(ctx, bson.M{"todaysMenu": true})
}

func (r *foodRepo) SetTodaysMenu(ctx context.Context, id primitive.ObjectID, flag bool) error {
	_, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"todaysMenu": flag}})
	if err != nil {
		log.Printf("food SetTodaysMenu error: %v", err)
	}
	return err
}

func (r *foodRepo) SetStock(ctx context.Context, id primitive.ObjectID, stock int64) (bool, error) {
	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"stock": stock}})
	if err != nil {
		log.Printf("food SetStock error: %v", err)
		return false, err
	}
	return result.MatchedCount > 0, nil
}

func (r *foodRepo) FindLowStock(ctx context.Context) ([]domain.Food, error) {
	// stock <= lowStockThreshold, defaulting the threshold for documents
	// created before the field existed.
	filter := bson.M{"$expr": bson.M{"$lte": bson.A{
		"$stock",
		bson.M{"$ifNull": bson.A{"$lowStockThreshold", domain.DefaultLowStockThreshold}},
	}}}
	return r.findMany(ctx, filter)
}

func (r *foodRepo) DecrementStock(ctx context.Context, id primitive.ObjectID, qty int64) (bool, error) {
	// Conditional decrement: the stock guard and the $inc are a single
	// document update, so concurrent checkouts cannot drive stock negative.
	result, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id, "stock": bson.M{"$gte": qty}},
		bson.M{"$inc": bson.M{"stock": -qty}},
	)
	if err != nil {
		log.Printf("food DecrementStock error: %v", err)
		return false, err
	}
	return result.MatchedCount > 0, nil
}

func (r *foodRepo) IncrementStock(ctx context.Context, id primitive.ObjectID, qty int64) error {
	_, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"stock": qty}})
	if err != nil {
		log.Printf("food IncrementStock error: %v", err)
	}
	return err
}

func (r *foodRepo) findMany(ctx context.Context, filter bson.M) ([]domain.Food, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		log.Printf("food find error: %v", err)
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []domain.Food
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
