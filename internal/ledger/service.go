package ledger

import (
	"sync"

	"github.com/modbotdev/budget-ledger/internal/clients/balanceoracle"
	"github.com/modbotdev/budget-ledger/internal/config"
	"github.com/modbotdev/budget-ledger/internal/db"
)

// Service is the budget ledger. It owns every mutation path into the store:
// deposits, expense reservation and settlement, and budget configuration.
type Service struct {
	cfg    *config.Config
	db     db.DbInterface
	oracle balanceoracle.OracleInterface

	// allocMu serializes the oracle-read / committed-sum / compare / commit
	// sequence for allocations from the shared operator wallet. Without it,
	// two concurrent allocations can both pass the check against the same
	// snapshot and jointly exceed the wallet's real balance.
	allocMu sync.Mutex
}

func NewService(
	cfg *config.Config,
	db db.DbInterface,
	oracle balanceoracle.OracleInterface,
) *Service {
	return &Service{
		cfg:    cfg,
		db:     db,
		oracle: oracle,
	}
}
