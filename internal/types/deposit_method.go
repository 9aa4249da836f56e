package types

// DepositMethod records how funding arrived. Tips are already realized
// on-chain before they reach the ledger; admin allocations are carved out of
// the shared operator wallet and must pass the allocation check first.
type DepositMethod string

const (
	MethodTip             DepositMethod = "tip"
	MethodAdminAllocation DepositMethod = "admin_allocation"
)

func (m DepositMethod) String() string {
	return string(m)
}
