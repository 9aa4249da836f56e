package queue

import (
	"fmt"

	sdkmath "cosmossdk.io/math"
)

// TipEvent is an externally verified funding event: the tip transaction has
// already settled on-chain before it reaches this queue, so no allocation
// check applies.
type TipEvent struct {
	EventID          string `json:"event_id"`
	CommunityID      string `json:"community_id"`
	Amount           string `json:"amount"`
	DepositorAddress string `json:"depositor_address,omitempty"`
	TxHash           string `json:"tx_hash"`
}

func (e *TipEvent) Validate() error {
	if e.EventID == "" {
		return fmt.Errorf("tip event missing event_id")
	}
	if e.CommunityID == "" {
		return fmt.Errorf("tip event missing community_id")
	}
	if e.TxHash == "" {
		return fmt.Errorf("tip event missing tx_hash")
	}
	amount, err := e.AmountInt()
	if err != nil {
		return err
	}
	if !amount.IsPositive() {
		return fmt.Errorf("tip event amount must be positive, got %s", e.Amount)
	}

	return nil
}

// AmountInt parses the decimal-string amount into minor units.
func (e *TipEvent) AmountInt() (sdkmath.Int, error) {
	amount, ok := sdkmath.NewIntFromString(e.Amount)
	if !ok {
		return sdkmath.Int{}, fmt.Errorf("tip event amount %q is not an integer", e.Amount)
	}
	return amount, nil
}
