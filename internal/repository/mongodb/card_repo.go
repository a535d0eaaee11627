package mongodb

import (
	"context"
	"errors"
	"log"
	"time"

	"canteen-service/internal/domain"
	"canteen-service/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type cardRepo struct {
	coll *mongo.Collection
}

func NewCardRepository(db *mongo.Database) repository.CardRepository {
	return &cardRepo{coll: db.Collection("rfcards")}
}

func (r *cardRepo) FindByNumber(ctx context.Context, cardNumber string) (*domain.RFCard, error) {
	var card domain.RFCard
	if err := r.coll.FindOne(ctx, bson.M{"cardNumber": cardNumber}).Decode(&card); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		log.Printf("card FindByNumber error: %v", err)
		return nil, err
	}
	return &card, nil
}

func (r *cardRepo) DebitIfSufficient(ctx context.Context, cardNumber string, amount int64) (bool, error) {
	// Balance guard and decrement are one document update; concurrent
	// debits against the same card serialize on the document and the loser
	// of a race simply fails the $gte filter.
	result, err := r.coll.UpdateOne(ctx,
		bson.M{"cardNumber": cardNumber, "balance": bson.M{"$gte": amount}},
		bson.M{
			"$inc": bson.M{"balance": -amount},
			"$set": bson.M{"lastUsed": time.Now()},
		},
	)
	if err != nil {
		log.Printf("card debit error: %v", err)
		return false, err
	}
	return result.MatchedCount > 0, nil
}

func (r *cardRepo) Credit(ctx context.Context, cardNumber string, amount int64) error {
	result, err := r.coll.UpdateOne(ctx,
		bson.M{"cardNumber": cardNumber},
		bson.M{
			"$inc": bson.M{"balance": amount},
			"$set": bson.M{"lastUsed": time.Now()},
		},
	)
	if err != nil {
		log.Printf("card credit error: %v", err)
		return err
	}
	if result.MatchedCount == 0 {
		return errors.New("rf card not found")
	}
	return nil
}

type accountRepo struct {
	coll *mongo.Collection
}

func NewAccountRepository(db *mongo.Database) repository.AccountRepository {
	return &accountRepo{coll: db.Collection("accounts")}
}

func (r *accountRepo) Find(ctx context.Context, name string) (*domain.Account, error) {
	var acc domain.Account
	if err := r.coll.FindOne(ctx, bson.M{"name": name}).Decode(&acc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		log.Printf("account find error: %v", err)
		return nil, err
	}
	return &acc, nil
}

func (r *accountRepo) AdjustBalance(ctx context.Context, name string, delta int64) error {
	opts := options.Update().SetUpsert(true)
	_, err := r.coll.UpdateOne(ctx,
		bson.M{"name": name},
		bson.M{
			"$inc": bson.M{"balance": delta},
			"$set": bson.M{"lastUpdated": time.Now()},
		},
		opts,
	)
	if err != nil {
		log.Printf("account adjust error: %v", err)
	}
	return err
}
