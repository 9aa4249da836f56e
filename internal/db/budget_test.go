//go:build integration

package db_test

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/modbotdev/budget-ledger/internal/db"
	"github.com/modbotdev/budget-ledger/internal/db/model"
	"github.com/modbotdev/budget-ledger/testutil"
)

func TestGetOrCreateBudget(t *testing.T) {
	ctx := t.Context()
	t.Cleanup(func() {
		resetDatabase(t)
	})

	communityID := testutil.RandomCommunityID()

	budget, err := testDB.GetOrCreateBudget(ctx, communityID)
	require.NoError(t, err)
	assert.Equal(t, communityID, budget.CommunityID)
	assert.True(t, budget.FundingBalance.IsZero())
	assert.True(t, budget.TotalSpent.IsZero())
	assert.False(t, budget.SetupCompleted)
	assert.Nil(t, budget.BudgetLimit)

	// second call returns the same defaults and creates no extra row
	again, err := testDB.GetOrCreateBudget(ctx, communityID)
	require.NoError(t, err)
	assert.Equal(t, budget.CommunityID, again.CommunityID)
	assert.True(t, again.FundingBalance.IsZero())

	count, err := mongoDB.Collection(model.CommunityBudgetCollection).
		CountDocuments(ctx, bson.M{"_id": communityID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestGetBudgetNotFound(t *testing.T) {
	ctx := t.Context()

	budget, err := testDB.GetBudget(ctx, testutil.RandomCommunityID())
	require.Error(t, err)
	assert.True(t, db.IsNotFoundError(err))
	assert.Nil(t, budget)
}

func TestSetBudgetLimit(t *testing.T) {
	ctx := t.Context()
	t.Cleanup(func() {
		resetDatabase(t)
	})

	communityID := testutil.RandomCommunityID()
	_, err := testDB.GetOrCreateBudget(ctx, communityID)
	require.NoError(t, err)

	limit := model.NewAmount(sdkmath.NewInt(100_000_000))
	require.NoError(t, testDB.SetBudgetLimit(ctx, communityID, &limit))

	budget, err := testDB.GetBudget(ctx, communityID)
	require.NoError(t, err)
	require.NotNil(t, budget.BudgetLimit)
	assert.Equal(t, limit.Int, budget.BudgetLimit.Int)

	// clearing removes the field
	require.NoError(t, testDB.SetBudgetLimit(ctx, communityID, nil))
	budget, err = testDB.GetBudget(ctx, communityID)
	require.NoError(t, err)
	assert.Nil(t, budget.BudgetLimit)
}

func TestSetBudgetLimitUnknownCommunity(t *testing.T) {
	ctx := t.Context()

	limit := model.NewAmount(sdkmath.NewInt(1))
	err := testDB.SetBudgetLimit(ctx, testutil.RandomCommunityID(), &limit)
	require.Error(t, err)
	assert.True(t, db.IsNotFoundError(err))
}

func TestSetAutoRefundThreshold(t *testing.T) {
	ctx := t.Context()
	t.Cleanup(func() {
		resetDatabase(t)
	})

	communityID := testutil.RandomCommunityID()
	_, err := testDB.GetOrCreateBudget(ctx, communityID)
	require.NoError(t, err)

	threshold := model.NewAmount(sdkmath.NewInt(20_000_000))
	require.NoError(t, testDB.SetAutoRefundThreshold(ctx, communityID, &threshold))

	budget, err := testDB.GetBudget(ctx, communityID)
	require.NoError(t, err)
	require.NotNil(t, budget.AutoRefundThreshold)
	assert.Equal(t, threshold.Int, budget.AutoRefundThreshold.Int)
}

func TestMarkSetupCompleted(t *testing.T) {
	ctx := t.Context()
	t.Cleanup(func() {
		resetDatabase(t)
	})

	communityID := testutil.RandomCommunityID()
	_, err := testDB.GetOrCreateBudget(ctx, communityID)
	require.NoError(t, err)

	require.NoError(t, testDB.MarkSetupCompleted(ctx, communityID, "role-1", "entitlement-1"))

	budget, err := testDB.GetBudget(ctx, communityID)
	require.NoError(t, err)
	assert.True(t, budget.SetupCompleted)
	assert.Equal(t, "role-1", budget.VerifiedRoleID)
	assert.Equal(t, "entitlement-1", budget.EntitlementModule)
}

func TestSumFundingBalances(t *testing.T) {
	ctx := t.Context()
	t.Cleanup(func() {
		resetDatabase(t)
	})

	// empty collection sums to zero
	sum, err := testDB.SumFundingBalances(ctx)
	require.NoError(t, err)
	assert.True(t, sum.IsZero())

	amounts := []int64{60_000_000, 25_000_000, 15_000_000}
	for _, amount := range amounts {
		communityID := testutil.RandomCommunityID()
		_, err := testDB.GetOrCreateBudget(ctx, communityID)
		require.NoError(t, err)
		require.NoError(t, testDB.DepositFunds(ctx, depositFixture(communityID, amount)))
	}

	sum, err = testDB.SumFundingBalances(ctx)
	require.NoError(t, err)
	assert.Equal(t, sdkmath.NewInt(100_000_000), sum)
}
