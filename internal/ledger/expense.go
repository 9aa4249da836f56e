package ledger

import (
	"context"
	"time"

	sdkmath "cosmossdk.io/math"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/modbotdev/budget-ledger/internal/currency"
	"github.com/modbotdev/budget-ledger/internal/db/model"
	"github.com/modbotdev/budget-ledger/internal/observability/metrics"
	"github.com/modbotdev/budget-ledger/internal/types"
)

// Outcome reports how an on-chain operation finished. Success carries the
// real transaction cost inputs; failure optionally carries a reason.
type Outcome struct {
	Success  bool
	TxHash   string
	GasUsed  sdkmath.Int
	GasPrice sdkmath.Int
	Reason   string
}

// ReserveExpense checks that the community's funding balance covers the
// operation's estimated cost and records a pending expense. The funding
// balance is not debited: funding and gas spend are tracked as parallel
// ledgers (see Service.SettleExpense).
func (s *Service) ReserveExpense(
	ctx context.Context,
	communityID string,
	operationType types.OperationType,
	description string,
	userID string,
) (string, error) {
	budget, err := s.db.GetOrCreateBudget(ctx, communityID)
	if err != nil {
		return "", err
	}

	estimatedCost := currency.EstimateOperationCost(operationType)
	requiredFunding := currency.GasToFunding(estimatedCost)

	// an exactly-equal balance passes
	if requiredFunding.GT(budget.FundingBalance.Int) {
		return "", &InsufficientBudgetError{
			CommunityID: communityID,
			Required:    requiredFunding,
			Available:   budget.FundingBalance.Int,
		}
	}

	if budget.BudgetLimit != nil {
		projected := currency.GasToFunding(budget.TotalSpent.Int).Add(requiredFunding)
		if projected.GT(budget.BudgetLimit.Int) {
			return "", &BudgetLimitExceededError{
				CommunityID: communityID,
				Limit:       budget.BudgetLimit.Int,
				Projected:   projected,
			}
		}
	}

	expense := &model.Expense{
		ExpenseID:     uuid.NewString(),
		CommunityID:   communityID,
		OperationType: operationType,
		Status:        types.StatusPending,
		EstimatedCost: model.NewAmount(estimatedCost),
		Description:   description,
		UserID:        userID,
		Timestamp:     time.Now().Unix(),
	}

	if err := s.db.InsertExpense(ctx, expense); err != nil {
		return "", err
	}

	log.Ctx(ctx).Debug().
		Str("community_id", communityID).
		Str("expense_id", expense.ExpenseID).
		Str("operation_type", operationType.String()).
		Str("estimated_cost", estimatedCost.String()).
		Msg("reserved expense")

	return expense.ExpenseID, nil
}

// SettleExpense finishes a pending expense. On success the actual cost
// (gasUsed x gasPrice) is recorded and added to the community's total_spent;
// on failure the expense is marked failed with no balance effect. The
// funding balance is deliberately untouched either way: funding_balance is
// the allocation ledger, total_spent the gas ledger, and reconciling the two
// is an operator decision surfaced by FormatBudgetInfo.
func (s *Service) SettleExpense(ctx context.Context, expenseID string, outcome Outcome) error {
	expense, err := s.db.GetExpense(ctx, expenseID)
	if err != nil {
		return err
	}

	if !outcome.Success {
		if err := s.db.FailExpense(ctx, expenseID, outcome.Reason); err != nil {
			return err
		}
		metrics.IncExpenseSettled(expense.OperationType.String(), types.StatusFailed.String())
		log.Ctx(ctx).Info().
			Str("expense_id", expenseID).
			Str("reason", outcome.Reason).
			Msg("expense settled as failed")
		return nil
	}

	if outcome.GasUsed.IsNil() || outcome.GasUsed.IsNegative() ||
		outcome.GasPrice.IsNil() || outcome.GasPrice.IsNegative() {
		return &InvalidAmountError{Message: "settlement gas values must be non-negative integers"}
	}

	actualCost := outcome.GasUsed.Mul(outcome.GasPrice)
	err = s.db.CompleteExpense(
		ctx,
		expenseID,
		model.NewAmount(actualCost),
		outcome.TxHash,
		model.NewAmount(outcome.GasUsed),
		model.NewAmount(outcome.GasPrice),
	)
	if err != nil {
		return err
	}

	metrics.IncExpenseSettled(expense.OperationType.String(), types.StatusCompleted.String())
	log.Ctx(ctx).Info().
		Str("expense_id", expenseID).
		Str("tx_hash", outcome.TxHash).
		Str("actual_cost", actualCost.String()).
		Msg("expense settled as completed")

	return nil
}
