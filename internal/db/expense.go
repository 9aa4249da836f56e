package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	sdkmath "cosmossdk.io/math"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/modbotdev/budget-ledger/internal/db/model"
	"github.com/modbotdev/budget-ledger/internal/types"
)

func (db *Database) InsertExpense(ctx context.Context, expense *model.Expense) error {
	_, err := db.collection(model.ExpenseCollection).InsertOne(ctx, expense)
	if err != nil {
		var writeErr mongo.WriteException
		if errors.As(err, &writeErr) {
			for _, e := range writeErr.WriteErrors {
				if mongo.IsDuplicateKeyError(e) {
					return &DuplicateKeyError{
						Key:     expense.ExpenseID,
						Message: "expense already exists",
					}
				}
			}
		}
		return err
	}
	return nil
}

func (db *Database) GetExpense(ctx context.Context, expenseID string) (*model.Expense, error) {
	res := db.collection(model.ExpenseCollection).
		FindOne(ctx, bson.M{"_id": expenseID})

	var expense model.Expense
	if err := res.Decode(&expense); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     expenseID,
				Message: "expense not found",
			}
		}
		return nil, err
	}

	return &expense, nil
}

// CompleteExpense moves a pending expense to completed and adds the actual
// cost to the community's total_spent, atomically. Settling an expense twice
// or settling an unknown expense fails with a typed error.
func (db *Database) CompleteExpense(
	ctx context.Context,
	expenseID string,
	actualCost model.Amount,
	txHash string,
	gasUsed model.Amount,
	gasPrice model.Amount,
) error {
	return db.withTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		now := time.Now().Unix()

		filter := bson.M{
			"_id":    expenseID,
			"status": bson.M{"$in": qualifiedStatusStrs()},
		}
		update := bson.M{
			"$set": bson.M{
				"status":      types.StatusCompleted.String(),
				"actual_cost": actualCost,
				"tx_hash":     txHash,
				"gas_used":    gasUsed,
				"gas_price":   gasPrice,
				"settled_at":  now,
			},
		}
		opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

		res := db.collection(model.ExpenseCollection).
			FindOneAndUpdate(sessCtx, filter, update, opts)

		var expense model.Expense
		if err := res.Decode(&expense); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, db.expenseStateError(sessCtx, expenseID)
			}
			return nil, err
		}

		budgetUpdate := bson.M{
			"$inc": bson.M{"total_spent": actualCost},
			"$set": bson.M{"updated_at": now},
		}
		budgetRes, err := db.collection(model.CommunityBudgetCollection).
			UpdateOne(sessCtx, bson.M{"_id": expense.CommunityID}, budgetUpdate)
		if err != nil {
			return nil, err
		}
		if budgetRes.MatchedCount == 0 {
			return nil, &NotFoundError{
				Key:     expense.CommunityID,
				Message: "community budget not found when settling expense",
			}
		}

		return nil, nil
	})
}

// FailExpense moves a pending expense to failed. Failed operations cost
// nothing, so total_spent is untouched.
func (db *Database) FailExpense(ctx context.Context, expenseID, reason string) error {
	filter := bson.M{
		"_id":    expenseID,
		"status": bson.M{"$in": qualifiedStatusStrs()},
	}
	updateFields := bson.M{
		"status":     types.StatusFailed.String(),
		"settled_at": time.Now().Unix(),
	}
	if reason != "" {
		updateFields["description"] = reason
	}

	res := db.collection(model.ExpenseCollection).
		FindOneAndUpdate(ctx, filter, bson.M{"$set": updateFields})
	if res.Err() != nil {
		if errors.Is(res.Err(), mongo.ErrNoDocuments) {
			return db.expenseStateError(ctx, expenseID)
		}
		return res.Err()
	}

	return nil
}

// expenseStateError tells apart a missing expense from one that already
// settled, after a state-qualified update matched nothing.
func (db *Database) expenseStateError(ctx context.Context, expenseID string) error {
	res := db.collection(model.ExpenseCollection).
		FindOne(ctx, bson.M{"_id": expenseID})

	var expense model.Expense
	if err := res.Decode(&expense); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return &NotFoundError{
				Key:     expenseID,
				Message: "expense not found when settling",
			}
		}
		return err
	}

	return &InvalidStateTransitionError{
		Key:     expenseID,
		From:    expense.Status.String(),
		Message: fmt.Sprintf("expense %s already settled as %s", expenseID, expense.Status),
	}
}

func (db *Database) ListExpenses(
	ctx context.Context, communityID string, limit, offset int64,
) ([]*model.Expense, error) {
	opts := options.Find().SetSort(bson.M{"timestamp": -1})
	if offset > 0 {
		opts = opts.SetSkip(offset)
	}
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}

	cursor, err := db.collection(model.ExpenseCollection).
		Find(ctx, bson.M{"community_id": communityID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var expenses []*model.Expense
	if err := cursor.All(ctx, &expenses); err != nil {
		return nil, err
	}

	return expenses, nil
}

// OperationTotals aggregates completed expenses of one operation type.
type OperationTotals struct {
	Count           int64
	TotalActualCost sdkmath.Int
}

// ExpenseTotalsByOperation sums completed-expense actual costs per
// operation type for one community. Pending and failed expenses are
// excluded.
func (db *Database) ExpenseTotalsByOperation(
	ctx context.Context, communityID string,
) (map[types.OperationType]OperationTotals, error) {
	pipeline := []bson.M{
		{
			"$match": bson.M{
				"community_id": communityID,
				"status":       types.StatusCompleted.String(),
			},
		},
		{
			"$group": bson.M{
				"_id":   "$operation_type",
				"count": bson.M{"$sum": 1},
				"total": bson.M{"$sum": "$actual_cost"},
			},
		},
	}

	cursor, err := db.collection(model.ExpenseCollection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []struct {
		OperationType types.OperationType `bson:"_id"`
		Count         int64               `bson:"count"`
		Total         model.Amount        `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}

	totals := make(map[types.OperationType]OperationTotals, len(results))
	for _, r := range results {
		totals[r.OperationType] = OperationTotals{
			Count:           r.Count,
			TotalActualCost: r.Total.Int,
		}
	}

	return totals, nil
}

func qualifiedStatusStrs() []string {
	states := types.QualifiedStatesForSettlement()
	strs := make([]string, len(states))
	for i, s := range states {
		strs[i] = s.String()
	}
	return strs
}
