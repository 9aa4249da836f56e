package model

import (
	"github.com/modbotdev/budget-ledger/internal/types"
)

const DepositCollection = "deposits"

// Deposit records a single credit to a community budget, either a verified
// on-chain tip or a manual admin allocation.
type Deposit struct {
	DepositID        string              `bson:"_id"`
	CommunityID      string              `bson:"community_id"`
	Amount           Amount              `bson:"amount"`
	Method           types.DepositMethod `bson:"method"`
	DepositorAddress string              `bson:"depositor_address,omitempty"`
	TxHash           string              `bson:"tx_hash,omitempty"`
	Note             string              `bson:"note,omitempty"`
	Timestamp        int64               `bson:"timestamp"`
}
