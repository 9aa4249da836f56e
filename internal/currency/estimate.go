package currency

import (
	sdkmath "cosmossdk.io/math"

	"github.com/modbotdev/budget-ledger/internal/types"
)

// Gas amounts measured on the target chain.
var operationGas = map[types.OperationType]int64{
	types.OperationCreateRole:  200_000,
	types.OperationAssignRole:  100_000,
	types.OperationRemoveRole:  80_000,
	types.OperationBatchAssign: 80_000,
}

const defaultOperationGas = 100_000

// estimatedGasPrice is a conservative fixed gas price of 0.1 gwei in wei.
var estimatedGasPrice = sdkmath.NewInt(100_000_000)

// EstimateOperationCost returns the estimated gas-currency cost of one
// on-chain operation in minor units. Unknown operation kinds fall back to a
// default gas amount rather than failing; estimation has no error path.
func EstimateOperationCost(op types.OperationType) sdkmath.Int {
	gas, ok := operationGas[op]
	if !ok {
		gas = defaultOperationGas
	}
	return sdkmath.NewInt(gas).Mul(estimatedGasPrice)
}
