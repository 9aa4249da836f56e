package db

import (
	"context"
	"time"

	sdkmath "cosmossdk.io/math"

	"github.com/modbotdev/budget-ledger/internal/db/model"
	"github.com/modbotdev/budget-ledger/internal/observability/metrics"
	"github.com/modbotdev/budget-ledger/internal/types"
)

type DbWithMetrics struct {
	db DbInterface
}

func NewDbWithMetrics(db DbInterface) *DbWithMetrics {
	return &DbWithMetrics{db: db}
}

func (d *DbWithMetrics) Ping(ctx context.Context) error {
	return d.db.Ping(ctx)
}

func (d *DbWithMetrics) GetOrCreateBudget(ctx context.Context, communityID string) (result *model.CommunityBudget, err error) {
	//nolint:errcheck
	d.run("GetOrCreateBudget", func() error {
		result, err = d.db.GetOrCreateBudget(ctx, communityID)
		return err
	})
	return
}

func (d *DbWithMetrics) GetBudget(ctx context.Context, communityID string) (result *model.CommunityBudget, err error) {
	//nolint:errcheck
	d.run("GetBudget", func() error {
		result, err = d.db.GetBudget(ctx, communityID)
		return err
	})
	return
}

func (d *DbWithMetrics) SetBudgetLimit(ctx context.Context, communityID string, limit *model.Amount) error {
	return d.run("SetBudgetLimit", func() error {
		return d.db.SetBudgetLimit(ctx, communityID, limit)
	})
}

func (d *DbWithMetrics) SetAutoRefundThreshold(ctx context.Context, communityID string, threshold *model.Amount) error {
	return d.run("SetAutoRefundThreshold", func() error {
		return d.db.SetAutoRefundThreshold(ctx, communityID, threshold)
	})
}

func (d *DbWithMetrics) MarkSetupCompleted(ctx context.Context, communityID, verifiedRoleID, entitlementModule string) error {
	return d.run("MarkSetupCompleted", func() error {
		return d.db.MarkSetupCompleted(ctx, communityID, verifiedRoleID, entitlementModule)
	})
}

func (d *DbWithMetrics) SumFundingBalances(ctx context.Context) (result sdkmath.Int, err error) {
	//nolint:errcheck
	d.run("SumFundingBalances", func() error {
		result, err = d.db.SumFundingBalances(ctx)
		return err
	})
	return
}

func (d *DbWithMetrics) DepositFunds(ctx context.Context, deposit *model.Deposit) error {
	return d.run("DepositFunds", func() error {
		return d.db.DepositFunds(ctx, deposit)
	})
}

func (d *DbWithMetrics) ListDeposits(ctx context.Context, communityID string, limit, offset int64) (result []*model.Deposit, err error) {
	//nolint:errcheck
	d.run("ListDeposits", func() error {
		result, err = d.db.ListDeposits(ctx, communityID, limit, offset)
		return err
	})
	return
}

func (d *DbWithMetrics) InsertExpense(ctx context.Context, expense *model.Expense) error {
	return d.run("InsertExpense", func() error {
		return d.db.InsertExpense(ctx, expense)
	})
}

func (d *DbWithMetrics) GetExpense(ctx context.Context, expenseID string) (result *model.Expense, err error) {
	//nolint:errcheck
	d.run("GetExpense", func() error {
		result, err = d.db.GetExpense(ctx, expenseID)
		return err
	})
	return
}

func (d *DbWithMetrics) CompleteExpense(ctx context.Context, expenseID string, actualCost model.Amount, txHash string, gasUsed model.Amount, gasPrice model.Amount) error {
	return d.run("CompleteExpense", func() error {
		return d.db.CompleteExpense(ctx, expenseID, actualCost, txHash, gasUsed, gasPrice)
	})
}

func (d *DbWithMetrics) FailExpense(ctx context.Context, expenseID, reason string) error {
	return d.run("FailExpense", func() error {
		return d.db.FailExpense(ctx, expenseID, reason)
	})
}

func (d *DbWithMetrics) ListExpenses(ctx context.Context, communityID string, limit, offset int64) (result []*model.Expense, err error) {
	//nolint:errcheck
	d.run("ListExpenses", func() error {
		result, err = d.db.ListExpenses(ctx, communityID, limit, offset)
		return err
	})
	return
}

func (d *DbWithMetrics) ExpenseTotalsByOperation(ctx context.Context, communityID string) (result map[types.OperationType]OperationTotals, err error) {
	//nolint:errcheck
	d.run("ExpenseTotalsByOperation", func() error {
		result, err = d.db.ExpenseTotalsByOperation(ctx, communityID)
		return err
	})
	return
}

// run is private method that executes passed lambda function and send metrics data with spent time, method name
// and an error if any. It returns the error from the lambda function for convenience
func (d *DbWithMetrics) run(method string, f func() error) error {
	startTime := time.Now()
	err := f()
	duration := time.Since(startTime)

	metrics.RecordDbLatency(duration, method, err != nil)
	return err
}
