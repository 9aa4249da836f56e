package ledger_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/sourcegraph/conc"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/modbotdev/budget-ledger/internal/db/model"
	"github.com/modbotdev/budget-ledger/internal/ledger"
	"github.com/modbotdev/budget-ledger/internal/types"
	"github.com/modbotdev/budget-ledger/tests/mocks"
)

// amounts in funding minor units (6 decimals)
func funding(units int64) sdkmath.Int {
	return sdkmath.NewInt(units).MulRaw(1_000_000)
}

func zeroBudget(communityID string) *model.CommunityBudget {
	return &model.CommunityBudget{
		CommunityID:    communityID,
		FundingBalance: model.ZeroAmount(),
		TotalSpent:     model.ZeroAmount(),
	}
}

func TestDeposit(t *testing.T) {
	mockDB := mocks.NewDbInterface(t)
	mockDB.On("GetOrCreateBudget", mock.Anything, "community-1").
		Return(zeroBudget("community-1"), nil)

	var recorded *model.Deposit
	mockDB.On("DepositFunds", mock.Anything, mock.Anything).
		Return(func(ctx context.Context, deposit *model.Deposit) error {
			recorded = deposit
			return nil
		})

	service := ledger.NewService(nil, mockDB, mocks.NewOracleInterface(t))

	depositID, err := service.Deposit(
		t.Context(), "community-1", funding(10), types.MethodTip,
		ledger.DepositMeta{TxHash: "0xabc", DepositorAddress: "0xdef"},
	)
	require.NoError(t, err)
	require.NotEmpty(t, depositID)

	require.NotNil(t, recorded)
	require.Equal(t, depositID, recorded.DepositID)
	require.Equal(t, "community-1", recorded.CommunityID)
	require.Equal(t, types.MethodTip, recorded.Method)
	require.Equal(t, funding(10), recorded.Amount.Int)
	require.Equal(t, "0xabc", recorded.TxHash)
	require.NotZero(t, recorded.Timestamp)
}

func TestDepositPinnedID(t *testing.T) {
	mockDB := mocks.NewDbInterface(t)
	mockDB.On("GetOrCreateBudget", mock.Anything, "community-1").
		Return(zeroBudget("community-1"), nil)
	mockDB.On("DepositFunds", mock.Anything, mock.Anything).Return(nil)

	service := ledger.NewService(nil, mockDB, mocks.NewOracleInterface(t))

	depositID, err := service.Deposit(
		t.Context(), "community-1", funding(1), types.MethodTip,
		ledger.DepositMeta{DepositID: "evt-42"},
	)
	require.NoError(t, err)
	require.Equal(t, "evt-42", depositID)
}

func TestDepositInvalidAmount(t *testing.T) {
	service := ledger.NewService(nil, mocks.NewDbInterface(t), mocks.NewOracleInterface(t))

	for _, amount := range []sdkmath.Int{{}, sdkmath.ZeroInt(), sdkmath.NewInt(-5)} {
		_, err := service.Deposit(t.Context(), "community-1", amount, types.MethodTip, ledger.DepositMeta{})
		require.Error(t, err)
		require.True(t, ledger.IsInvalidAmountError(err))
	}
}

func TestVerifyAllocatable(t *testing.T) {
	// wallet holds 100, community A already allocated 60
	mockOracle := mocks.NewOracleInterface(t)
	mockOracle.On("ActualBalance", mock.Anything).Return(funding(100), nil)

	mockDB := mocks.NewDbInterface(t)
	mockDB.On("SumFundingBalances", mock.Anything).Return(funding(60), nil)

	service := ledger.NewService(nil, mockDB, mockOracle)

	t.Run("over available", func(t *testing.T) {
		check, err := service.VerifyAllocatable(t.Context(), funding(50))
		require.NoError(t, err)
		require.False(t, check.OK)
		require.Equal(t, funding(40), check.Available)
		require.NotEmpty(t, check.Reason)
	})

	t.Run("exactly available", func(t *testing.T) {
		check, err := service.VerifyAllocatable(t.Context(), funding(40))
		require.NoError(t, err)
		require.True(t, check.OK)
		require.Empty(t, check.Reason)
	})
}

func TestVerifyAllocatableOracleDown(t *testing.T) {
	mockOracle := mocks.NewOracleInterface(t)
	mockOracle.On("ActualBalance", mock.Anything).
		Return(sdkmath.Int{}, errors.New("rpc timeout"))

	service := ledger.NewService(nil, mocks.NewDbInterface(t), mockOracle)

	_, err := service.VerifyAllocatable(t.Context(), funding(1))
	require.Error(t, err)
	require.True(t, ledger.IsOracleUnavailableError(err))
}

func TestAllocateDenied(t *testing.T) {
	mockOracle := mocks.NewOracleInterface(t)
	mockOracle.On("ActualBalance", mock.Anything).Return(funding(100), nil)

	mockDB := mocks.NewDbInterface(t)
	mockDB.On("SumFundingBalances", mock.Anything).Return(funding(60), nil)

	service := ledger.NewService(nil, mockDB, mockOracle)

	_, err := service.Allocate(t.Context(), "community-b", funding(50), ledger.DepositMeta{})
	require.Error(t, err)
	require.True(t, ledger.IsInsufficientUnallocatedError(err))

	var target *ledger.InsufficientUnallocatedError
	require.ErrorAs(t, err, &target)
	require.Equal(t, funding(50), target.Requested)
	require.Equal(t, funding(40), target.Available)
}

// Two concurrent allocations against one wallet must never jointly exceed
// the wallet's real balance.
func TestAllocateConcurrent(t *testing.T) {
	walletBalance := funding(100)

	var mu sync.Mutex
	committed := sdkmath.ZeroInt()

	mockOracle := mocks.NewOracleInterface(t)
	mockOracle.On("ActualBalance", mock.Anything).Return(walletBalance, nil)

	mockDB := mocks.NewDbInterface(t)
	mockDB.On("SumFundingBalances", mock.Anything).
		Return(func(ctx context.Context) (sdkmath.Int, error) {
			mu.Lock()
			defer mu.Unlock()
			return committed, nil
		})
	mockDB.On("GetOrCreateBudget", mock.Anything, mock.Anything).
		Return(func(ctx context.Context, communityID string) (*model.CommunityBudget, error) {
			return zeroBudget(communityID), nil
		})
	mockDB.On("DepositFunds", mock.Anything, mock.Anything).
		Return(func(ctx context.Context, deposit *model.Deposit) error {
			mu.Lock()
			defer mu.Unlock()
			committed = committed.Add(deposit.Amount.Int)
			return nil
		})

	service := ledger.NewService(nil, mockDB, mockOracle)

	results := make([]error, 2)
	requests := []sdkmath.Int{funding(60), funding(50)}
	communities := []string{"community-a", "community-b"}

	var wg conc.WaitGroup
	for i := range requests {
		wg.Go(func() {
			_, results[i] = service.Allocate(context.Background(), communities[i], requests[i], ledger.DepositMeta{})
		})
	}
	wg.Wait()

	var failures int
	for _, err := range results {
		if err != nil {
			require.True(t, ledger.IsInsufficientUnallocatedError(err))
			failures++
		}
	}
	require.Equal(t, 1, failures)
	require.True(t, committed.LTE(walletBalance),
		"committed %s exceeds wallet balance %s", committed, walletBalance)
}
