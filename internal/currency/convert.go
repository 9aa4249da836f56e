// Package currency holds the fixed-rate conversion between the gas currency
// (18 decimals, pays for on-chain operations) and the funding currency
// (6 decimals, what communities are funded in). All amounts are integers in
// minor units; nothing in this package touches floating point.
package currency

import (
	sdkmath "cosmossdk.io/math"
)

const (
	GasDecimals     = 18
	FundingDecimals = 6

	FundingSymbol = "USDC"
	GasSymbol     = "ETH"

	// fundingPerGas is the fixed conversion rate: whole funding units per
	// whole gas unit. A price oracle is explicitly out of scope.
	fundingPerGas = 3000
)

// decimalGap is 10^(GasDecimals-FundingDecimals), the scale correction
// between the two minor-unit representations.
var decimalGap = sdkmath.NewIntWithDecimal(1, GasDecimals-FundingDecimals)

// GasToFunding converts a gas-currency amount to the funding currency at the
// fixed rate. The division truncates toward zero, so for the non-negative
// amounts the ledger deals in the result is always rounded down and the
// required funding cover is never under-estimated.
func GasToFunding(gas sdkmath.Int) sdkmath.Int {
	return gas.MulRaw(fundingPerGas).Quo(decimalGap)
}
