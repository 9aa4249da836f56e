package db

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/modbotdev/budget-ledger/internal/db/model"
)

// DepositFunds credits the community balance and records the deposit in a
// single transaction so the ledger entry and the balance never diverge.
func (db *Database) DepositFunds(ctx context.Context, deposit *model.Deposit) error {
	return db.withTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		filter := bson.M{"_id": deposit.CommunityID}
		update := bson.M{
			"$inc": bson.M{"funding_balance": deposit.Amount},
			"$set": bson.M{"updated_at": time.Now().Unix()},
		}

		res, err := db.collection(model.CommunityBudgetCollection).
			UpdateOne(sessCtx, filter, update)
		if err != nil {
			return nil, err
		}
		if res.MatchedCount == 0 {
			return nil, &NotFoundError{
				Key:     deposit.CommunityID,
				Message: "community budget not found when depositing",
			}
		}

		if _, err := db.collection(model.DepositCollection).InsertOne(sessCtx, deposit); err != nil {
			var writeErr mongo.WriteException
			if errors.As(err, &writeErr) {
				for _, e := range writeErr.WriteErrors {
					if mongo.IsDuplicateKeyError(e) {
						return nil, &DuplicateKeyError{
							Key:     deposit.DepositID,
							Message: "deposit already recorded",
						}
					}
				}
			}
			return nil, err
		}

		return nil, nil
	})
}

func (db *Database) ListDeposits(
	ctx context.Context, communityID string, limit, offset int64,
) ([]*model.Deposit, error) {
	opts := options.Find().SetSort(bson.M{"timestamp": -1})
	if offset > 0 {
		opts = opts.SetSkip(offset)
	}
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}

	cursor, err := db.collection(model.DepositCollection).
		Find(ctx, bson.M{"community_id": communityID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var deposits []*model.Deposit
	if err := cursor.All(ctx, &deposits); err != nil {
		return nil, err
	}

	return deposits, nil
}
