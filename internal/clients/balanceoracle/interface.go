package balanceoracle

import (
	"context"

	sdkmath "cosmossdk.io/math"
)

// OracleInterface reads the operator wallet's live funding-token balance.
// Admin allocations are checked against this before any budget is credited.
//
//go:generate mockery --name=OracleInterface --output=../../../tests/mocks --outpkg=mocks --filename=mock_balance_oracle.go
type OracleInterface interface {
	ActualBalance(ctx context.Context) (sdkmath.Int, error)
}
