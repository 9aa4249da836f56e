package currency

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/assert"

	"github.com/modbotdev/budget-ledger/internal/types"
)

func TestGasToFunding(t *testing.T) {
	testCases := []struct {
		name     string
		gas      sdkmath.Int
		expected sdkmath.Int
	}{
		{
			name: "one whole gas unit",
			// 1 ETH * 3000 = 3000 USDC
			gas:      sdkmath.NewIntWithDecimal(1, GasDecimals),
			expected: sdkmath.NewInt(3000_000000),
		},
		{
			name: "typical operation cost",
			// 200000 gas * 0.1 gwei = 2e13 wei -> 0.06 USDC
			gas:      sdkmath.NewInt(20_000_000_000_000),
			expected: sdkmath.NewInt(60_000),
		},
		{
			name:     "zero",
			gas:      sdkmath.ZeroInt(),
			expected: sdkmath.ZeroInt(),
		},
		{
			name: "sub-unit amounts floor to zero",
			// 1 wei * 3000 / 1e12 < 1 funding minor unit
			gas:      sdkmath.NewInt(1),
			expected: sdkmath.ZeroInt(),
		},
		{
			name: "rounding is always down",
			// 333333333333333 * 3000 / 1e12 = 999999.999999999 -> 999999
			gas:      sdkmath.NewInt(333_333_333_333_333),
			expected: sdkmath.NewInt(999_999),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected.String(), GasToFunding(tc.gas).String())
		})
	}
}

func TestEstimateOperationCost(t *testing.T) {
	// gas amount * 0.1 gwei
	assert.Equal(t, sdkmath.NewInt(20_000_000_000_000).String(), EstimateOperationCost(types.OperationCreateRole).String())
	assert.Equal(t, sdkmath.NewInt(10_000_000_000_000).String(), EstimateOperationCost(types.OperationAssignRole).String())
	assert.Equal(t, sdkmath.NewInt(8_000_000_000_000).String(), EstimateOperationCost(types.OperationRemoveRole).String())
	assert.Equal(t, sdkmath.NewInt(8_000_000_000_000).String(), EstimateOperationCost(types.OperationBatchAssign).String())

	// unknown kinds fall back to the default gas amount
	assert.Equal(t, sdkmath.NewInt(10_000_000_000_000).String(), EstimateOperationCost(types.OperationType("mint_badge")).String())
}
