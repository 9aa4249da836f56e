package ledger_test

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/modbotdev/budget-ledger/internal/db/model"
	"github.com/modbotdev/budget-ledger/internal/ledger"
	"github.com/modbotdev/budget-ledger/tests/mocks"
)

func TestNeedsRefund(t *testing.T) {
	withThreshold := func(balance, threshold int64) *model.CommunityBudget {
		budget := budgetWithBalance("community-1", funding(balance))
		amount := model.NewAmount(funding(threshold))
		budget.AutoRefundThreshold = &amount
		return budget
	}

	t.Run("below threshold", func(t *testing.T) {
		mockDB := mocks.NewDbInterface(t)
		mockDB.On("GetOrCreateBudget", mock.Anything, "community-1").
			Return(withThreshold(15, 20), nil)

		service := ledger.NewService(nil, mockDB, mocks.NewOracleInterface(t))
		needs, err := service.NeedsRefund(t.Context(), "community-1")
		require.NoError(t, err)
		require.True(t, needs)
	})

	t.Run("topped up above threshold", func(t *testing.T) {
		mockDB := mocks.NewDbInterface(t)
		mockDB.On("GetOrCreateBudget", mock.Anything, "community-1").
			Return(withThreshold(25, 20), nil)

		service := ledger.NewService(nil, mockDB, mocks.NewOracleInterface(t))
		needs, err := service.NeedsRefund(t.Context(), "community-1")
		require.NoError(t, err)
		require.False(t, needs)
	})

	t.Run("no threshold configured", func(t *testing.T) {
		mockDB := mocks.NewDbInterface(t)
		mockDB.On("GetOrCreateBudget", mock.Anything, "community-1").
			Return(budgetWithBalance("community-1", funding(1)), nil)

		service := ledger.NewService(nil, mockDB, mocks.NewOracleInterface(t))
		needs, err := service.NeedsRefund(t.Context(), "community-1")
		require.NoError(t, err)
		require.False(t, needs)
	})
}

func TestSetBudgetLimit(t *testing.T) {
	t.Run("set", func(t *testing.T) {
		limit := funding(100)
		amount := model.NewAmount(limit)

		mockDB := mocks.NewDbInterface(t)
		mockDB.On("GetOrCreateBudget", mock.Anything, "community-1").
			Return(zeroBudget("community-1"), nil)
		mockDB.On("SetBudgetLimit", mock.Anything, "community-1", &amount).Return(nil)

		service := ledger.NewService(nil, mockDB, mocks.NewOracleInterface(t))
		require.NoError(t, service.SetBudgetLimit(t.Context(), "community-1", &limit))
	})

	t.Run("clear", func(t *testing.T) {
		mockDB := mocks.NewDbInterface(t)
		mockDB.On("GetOrCreateBudget", mock.Anything, "community-1").
			Return(zeroBudget("community-1"), nil)
		mockDB.On("SetBudgetLimit", mock.Anything, "community-1", (*model.Amount)(nil)).Return(nil)

		service := ledger.NewService(nil, mockDB, mocks.NewOracleInterface(t))
		require.NoError(t, service.SetBudgetLimit(t.Context(), "community-1", nil))
	})

	t.Run("negative rejected", func(t *testing.T) {
		negative := sdkmath.NewInt(-1)

		service := ledger.NewService(nil, mocks.NewDbInterface(t), mocks.NewOracleInterface(t))
		err := service.SetBudgetLimit(t.Context(), "community-1", &negative)
		require.Error(t, err)
		require.True(t, ledger.IsInvalidAmountError(err))
	})
}

func TestMarkSetupCompleted(t *testing.T) {
	mockDB := mocks.NewDbInterface(t)
	mockDB.On("GetOrCreateBudget", mock.Anything, "community-1").
		Return(zeroBudget("community-1"), nil)
	mockDB.On("MarkSetupCompleted", mock.Anything, "community-1", "role-7", "entitlement-3").
		Return(nil)

	service := ledger.NewService(nil, mockDB, mocks.NewOracleInterface(t))
	require.NoError(t, service.MarkSetupCompleted(t.Context(), "community-1", "role-7", "entitlement-3"))
}
