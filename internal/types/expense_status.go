package types

// Enum values for Expense status
type ExpenseStatus string

const (
	StatusPending   ExpenseStatus = "pending"
	StatusCompleted ExpenseStatus = "completed"
	StatusFailed    ExpenseStatus = "failed"
)

func (s ExpenseStatus) String() string {
	return string(s)
}

// QualifiedStatesForSettlement returns the states an expense may be in when
// it is settled. Settlement happens exactly once, from pending.
func QualifiedStatesForSettlement() []ExpenseStatus {
	return []ExpenseStatus{StatusPending}
}
