package ledger

import (
	"fmt"
	"strings"

	sdkmath "cosmossdk.io/math"

	"github.com/modbotdev/budget-ledger/internal/currency"
	"github.com/modbotdev/budget-ledger/internal/db/model"
)

// FormatBudgetInfo renders an operator-facing budget report. Amounts are
// formatted from minor units with integer arithmetic only.
func FormatBudgetInfo(budget *model.CommunityBudget) string {
	var b strings.Builder

	b.WriteString("Budget Information\n\n")
	fmt.Fprintf(&b, "Current Balance: %s %s\n",
		currency.FormatFunding(budget.FundingBalance.Int), currency.FundingSymbol)
	fmt.Fprintf(&b, "Total Spent (Gas): %s %s\n",
		currency.FormatGas(budget.TotalSpent.Int), currency.GasSymbol)

	if budget.BudgetLimit != nil && budget.BudgetLimit.IsPositive() {
		fmt.Fprintf(&b, "Budget Limit: %s %s (%s remaining)\n",
			currency.FormatFunding(budget.BudgetLimit.Int),
			currency.FundingSymbol,
			percentRemaining(budget.FundingBalance.Int, budget.BudgetLimit.Int),
		)
	} else {
		b.WriteString("Budget Limit: Unlimited\n")
	}

	if budget.AutoRefundThreshold != nil {
		fmt.Fprintf(&b, "Auto-Refund Threshold: %s %s\n",
			currency.FormatFunding(budget.AutoRefundThreshold.Int), currency.FundingSymbol)
		if budget.FundingBalance.LT(budget.AutoRefundThreshold.Int) {
			b.WriteString("\nWarning: balance is below the auto-refund threshold\n")
		}
	}

	if !budget.SetupCompleted {
		b.WriteString("\nSetup incomplete: on-chain role operations are disabled\n")
	}

	fmt.Fprintf(&b, "\nBudget funded in %s, gas costs paid in %s from the operator wallet.",
		currency.FundingSymbol, currency.GasSymbol)

	return b.String()
}

// percentRemaining renders (1 - balance/limit) as a percentage with one
// decimal place, in pure integer math.
func percentRemaining(balance, limit sdkmath.Int) string {
	usedTenths := balance.MulRaw(1000).Quo(limit)
	remainingTenths := sdkmath.NewInt(1000).Sub(usedTenths)
	if remainingTenths.IsNegative() {
		remainingTenths = sdkmath.ZeroInt()
	}

	tenths := remainingTenths.Int64()
	return fmt.Sprintf("%d.%d%%", tenths/10, tenths%10)
}
