package model

const CommunityBudgetCollection = "community_budgets"

// CommunityBudget is the per-community ledger document. FundingBalance
// and TotalSpent only ever move through atomic $inc updates so concurrent
// deposits and settlements never lose writes.
type CommunityBudget struct {
	CommunityID          string  `bson:"_id"`
	FundingBalance       Amount  `bson:"funding_balance"`
	TotalSpent           Amount  `bson:"total_spent"`
	BudgetLimit          *Amount `bson:"budget_limit,omitempty"`
	AutoRefundThreshold  *Amount `bson:"auto_refund_threshold,omitempty"`
	VerifiedRoleID       string  `bson:"verified_role_id,omitempty"`
	EntitlementModule    string  `bson:"entitlement_module,omitempty"`
	SetupCompleted       bool    `bson:"setup_completed"`
	CreatedAt            int64   `bson:"created_at"`
	UpdatedAt            int64   `bson:"updated_at"`
}
