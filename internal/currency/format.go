package currency

import (
	"fmt"
	"strings"

	sdkmath "cosmossdk.io/math"
)

// FormatFunding renders a funding-currency minor-unit amount as a decimal
// string, e.g. 10_500_000 -> "10.5".
func FormatFunding(amount sdkmath.Int) string {
	return formatUnits(amount, FundingDecimals)
}

// FormatGas renders a gas-currency minor-unit amount as a decimal string.
func FormatGas(amount sdkmath.Int) string {
	return formatUnits(amount, GasDecimals)
}

// ParseFunding parses a decimal string like "10.5" into funding minor units.
// More fractional digits than the currency carries is an error, not a
// rounding opportunity.
func ParseFunding(s string) (sdkmath.Int, error) {
	return parseUnits(s, FundingDecimals)
}

func formatUnits(amount sdkmath.Int, decimals int) string {
	neg := amount.IsNegative()
	digits := amount.Abs().String()
	if len(digits) <= decimals {
		digits = strings.Repeat("0", decimals-len(digits)+1) + digits
	}

	whole := digits[:len(digits)-decimals]
	frac := strings.TrimRight(digits[len(digits)-decimals:], "0")

	out := whole
	if frac != "" {
		out += "." + frac
	}
	if neg {
		out = "-" + out
	}
	return out
}

func parseUnits(s string, decimals int) (sdkmath.Int, error) {
	if s == "" {
		return sdkmath.Int{}, fmt.Errorf("empty amount")
	}

	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" {
		whole = "0"
	}
	if len(frac) > decimals {
		return sdkmath.Int{}, fmt.Errorf("amount %q has more than %d decimal places", s, decimals)
	}
	frac += strings.Repeat("0", decimals-len(frac))

	amount, ok := sdkmath.NewIntFromString(whole + frac)
	if !ok {
		return sdkmath.Int{}, fmt.Errorf("invalid amount %q", s)
	}
	return amount, nil
}
