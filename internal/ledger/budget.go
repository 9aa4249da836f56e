package ledger

import (
	"context"

	sdkmath "cosmossdk.io/math"

	"github.com/modbotdev/budget-ledger/internal/db"
	"github.com/modbotdev/budget-ledger/internal/db/model"
	"github.com/modbotdev/budget-ledger/internal/types"
)

// GetBudget returns the community's budget, creating a zero-balance one on
// first reference. Calling it twice for an unknown community yields the same
// defaults and exactly one underlying document.
func (s *Service) GetBudget(ctx context.Context, communityID string) (*model.CommunityBudget, error) {
	return s.db.GetOrCreateBudget(ctx, communityID)
}

// NeedsRefund reports whether the community's funding balance has dropped
// below its configured auto-refund threshold.
func (s *Service) NeedsRefund(ctx context.Context, communityID string) (bool, error) {
	budget, err := s.db.GetOrCreateBudget(ctx, communityID)
	if err != nil {
		return false, err
	}
	if budget.AutoRefundThreshold == nil {
		return false, nil
	}

	return budget.FundingBalance.LT(budget.AutoRefundThreshold.Int), nil
}

// SetBudgetLimit sets the advisory spend ceiling; nil clears it.
func (s *Service) SetBudgetLimit(ctx context.Context, communityID string, limit *sdkmath.Int) error {
	amount, err := optionalAmount(limit)
	if err != nil {
		return err
	}
	if _, err := s.db.GetOrCreateBudget(ctx, communityID); err != nil {
		return err
	}

	return s.db.SetBudgetLimit(ctx, communityID, amount)
}

// SetAutoRefundThreshold sets the low-balance alert level; nil clears it.
func (s *Service) SetAutoRefundThreshold(ctx context.Context, communityID string, threshold *sdkmath.Int) error {
	amount, err := optionalAmount(threshold)
	if err != nil {
		return err
	}
	if _, err := s.db.GetOrCreateBudget(ctx, communityID); err != nil {
		return err
	}

	return s.db.SetAutoRefundThreshold(ctx, communityID, amount)
}

// MarkSetupCompleted flags the community as ready for on-chain role
// operations, recording the verified role and entitlement module created
// during setup.
func (s *Service) MarkSetupCompleted(
	ctx context.Context, communityID, verifiedRoleID, entitlementModule string,
) error {
	if _, err := s.db.GetOrCreateBudget(ctx, communityID); err != nil {
		return err
	}

	return s.db.MarkSetupCompleted(ctx, communityID, verifiedRoleID, entitlementModule)
}

func (s *Service) ListExpenses(
	ctx context.Context, communityID string, limit, offset int64,
) ([]*model.Expense, error) {
	return s.db.ListExpenses(ctx, communityID, limit, offset)
}

func (s *Service) ListDeposits(
	ctx context.Context, communityID string, limit, offset int64,
) ([]*model.Deposit, error) {
	return s.db.ListDeposits(ctx, communityID, limit, offset)
}

// ExpensesByOperationType aggregates completed expenses per operation kind.
func (s *Service) ExpensesByOperationType(
	ctx context.Context, communityID string,
) (map[types.OperationType]db.OperationTotals, error) {
	return s.db.ExpenseTotalsByOperation(ctx, communityID)
}

func optionalAmount(value *sdkmath.Int) (*model.Amount, error) {
	if value == nil {
		return nil, nil
	}
	if value.IsNil() || value.IsNegative() {
		return nil, &InvalidAmountError{Message: "value must be a non-negative integer"}
	}

	amount := model.NewAmount(*value)
	return &amount, nil
}
