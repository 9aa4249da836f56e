package model

import (
	"github.com/modbotdev/budget-ledger/internal/types"
)

const ExpenseCollection = "expenses"

// Expense tracks one on-chain role operation from reservation to settlement.
// EstimatedCost is written at reservation time; the actual_* fields are only
// set once the operation settles as completed.
type Expense struct {
	ExpenseID     string              `bson:"_id"`
	CommunityID   string              `bson:"community_id"`
	OperationType types.OperationType `bson:"operation_type"`
	Status        types.ExpenseStatus `bson:"status"`
	EstimatedCost Amount              `bson:"estimated_cost"`
	ActualCost    *Amount             `bson:"actual_cost,omitempty"`
	TxHash        string              `bson:"tx_hash,omitempty"`
	GasUsed       *Amount             `bson:"gas_used,omitempty"`
	GasPrice      *Amount             `bson:"gas_price,omitempty"`
	Description   string              `bson:"description,omitempty"`
	UserID        string              `bson:"user_id,omitempty"`
	Timestamp     int64               `bson:"timestamp"`
	SettledAt     int64               `bson:"settled_at,omitempty"`
}
