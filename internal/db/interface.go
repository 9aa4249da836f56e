package db

import (
	"context"

	sdkmath "cosmossdk.io/math"

	"github.com/modbotdev/budget-ledger/internal/db/model"
	"github.com/modbotdev/budget-ledger/internal/types"
)

//go:generate mockery --name=DbInterface --output=../../tests/mocks --outpkg=mocks --filename=mock_db_client.go
type DbInterface interface {
	Ping(ctx context.Context) error

	GetOrCreateBudget(ctx context.Context, communityID string) (*model.CommunityBudget, error)
	GetBudget(ctx context.Context, communityID string) (*model.CommunityBudget, error)
	SetBudgetLimit(ctx context.Context, communityID string, limit *model.Amount) error
	SetAutoRefundThreshold(ctx context.Context, communityID string, threshold *model.Amount) error
	MarkSetupCompleted(ctx context.Context, communityID, verifiedRoleID, entitlementModule string) error
	SumFundingBalances(ctx context.Context) (sdkmath.Int, error)

	DepositFunds(ctx context.Context, deposit *model.Deposit) error
	ListDeposits(ctx context.Context, communityID string, limit, offset int64) ([]*model.Deposit, error)

	InsertExpense(ctx context.Context, expense *model.Expense) error
	GetExpense(ctx context.Context, expenseID string) (*model.Expense, error)
	CompleteExpense(ctx context.Context, expenseID string, actualCost model.Amount, txHash string, gasUsed model.Amount, gasPrice model.Amount) error
	FailExpense(ctx context.Context, expenseID, reason string) error
	ListExpenses(ctx context.Context, communityID string, limit, offset int64) ([]*model.Expense, error)
	ExpenseTotalsByOperation(ctx context.Context, communityID string) (map[types.OperationType]OperationTotals, error)
}
