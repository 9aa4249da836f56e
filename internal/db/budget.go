package db

import (
	"context"
	"errors"
	"time"

	sdkmath "cosmossdk.io/math"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/modbotdev/budget-ledger/internal/db/model"
)

// GetOrCreateBudget returns the budget document for the community,
// initializing a zero-balance one on first touch.
func (db *Database) GetOrCreateBudget(
	ctx context.Context, communityID string,
) (*model.CommunityBudget, error) {
	now := time.Now().Unix()

	filter := bson.M{"_id": communityID}
	update := bson.M{
		"$setOnInsert": bson.M{
			"funding_balance": model.ZeroAmount(),
			"total_spent":     model.ZeroAmount(),
			"setup_completed": false,
			"created_at":      now,
			"updated_at":      now,
		},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	res := db.collection(model.CommunityBudgetCollection).
		FindOneAndUpdate(ctx, filter, update, opts)

	var budget model.CommunityBudget
	if err := res.Decode(&budget); err != nil {
		return nil, err
	}

	return &budget, nil
}

func (db *Database) GetBudget(
	ctx context.Context, communityID string,
) (*model.CommunityBudget, error) {
	res := db.collection(model.CommunityBudgetCollection).
		FindOne(ctx, bson.M{"_id": communityID})

	var budget model.CommunityBudget
	if err := res.Decode(&budget); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     communityID,
				Message: "community budget not found",
			}
		}
		return nil, err
	}

	return &budget, nil
}

// SetBudgetLimit sets or clears the advisory spend ceiling. A nil limit
// removes the ceiling.
func (db *Database) SetBudgetLimit(
	ctx context.Context, communityID string, limit *model.Amount,
) error {
	update := bson.M{
		"$set": bson.M{"updated_at": time.Now().Unix()},
	}
	if limit != nil {
		update["$set"].(bson.M)["budget_limit"] = *limit
	} else {
		update["$unset"] = bson.M{"budget_limit": ""}
	}

	return db.updateBudget(ctx, communityID, update)
}

// SetAutoRefundThreshold sets or clears the balance level below which the
// community is flagged for a funding top-up.
func (db *Database) SetAutoRefundThreshold(
	ctx context.Context, communityID string, threshold *model.Amount,
) error {
	update := bson.M{
		"$set": bson.M{"updated_at": time.Now().Unix()},
	}
	if threshold != nil {
		update["$set"].(bson.M)["auto_refund_threshold"] = *threshold
	} else {
		update["$unset"] = bson.M{"auto_refund_threshold": ""}
	}

	return db.updateBudget(ctx, communityID, update)
}

func (db *Database) MarkSetupCompleted(
	ctx context.Context, communityID, verifiedRoleID, entitlementModule string,
) error {
	update := bson.M{
		"$set": bson.M{
			"setup_completed":    true,
			"verified_role_id":   verifiedRoleID,
			"entitlement_module": entitlementModule,
			"updated_at":         time.Now().Unix(),
		},
	}

	return db.updateBudget(ctx, communityID, update)
}

func (db *Database) updateBudget(ctx context.Context, communityID string, update bson.M) error {
	res, err := db.collection(model.CommunityBudgetCollection).
		UpdateOne(ctx, bson.M{"_id": communityID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return &NotFoundError{
			Key:     communityID,
			Message: "community budget not found when updating",
		}
	}

	return nil
}

// SumFundingBalances returns the sum of funding balances across all
// communities. The allocation check compares this against the operator
// wallet's actual token balance.
func (db *Database) SumFundingBalances(ctx context.Context) (sdkmath.Int, error) {
	pipeline := []bson.M{
		{
			"$group": bson.M{
				"_id":   nil,
				"total": bson.M{"$sum": "$funding_balance"},
			},
		},
	}

	cursor, err := db.collection(model.CommunityBudgetCollection).Aggregate(ctx, pipeline)
	if err != nil {
		return sdkmath.Int{}, err
	}
	defer cursor.Close(ctx)

	var results []struct {
		Total model.Amount `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return sdkmath.Int{}, err
	}
	if len(results) == 0 {
		return sdkmath.ZeroInt(), nil
	}

	return results[0].Total.Int, nil
}
