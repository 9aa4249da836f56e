package ledger

import (
	"context"
	"time"

	sdkmath "cosmossdk.io/math"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/modbotdev/budget-ledger/internal/db/model"
	"github.com/modbotdev/budget-ledger/internal/observability/metrics"
	"github.com/modbotdev/budget-ledger/internal/types"
)

// DepositMeta carries the optional provenance of a funding event.
// DepositID, when set, pins the ledger row id so redelivered events surface
// as duplicate-key errors instead of double credits.
type DepositMeta struct {
	DepositID        string
	DepositorAddress string
	TxHash           string
	Note             string
}

// AllocationCheck is the result of comparing a requested allocation against
// the unallocated pool.
type AllocationCheck struct {
	OK        bool
	Requested sdkmath.Int
	Available sdkmath.Int
	Reason    string
}

// Deposit credits a community budget and records the funding event. It is
// meant for externally realized funding (tips already settled on-chain);
// allocations from the shared operator wallet must go through Allocate.
func (s *Service) Deposit(
	ctx context.Context,
	communityID string,
	amount sdkmath.Int,
	method types.DepositMethod,
	meta DepositMeta,
) (string, error) {
	if err := validateAmount(amount); err != nil {
		return "", err
	}

	if _, err := s.db.GetOrCreateBudget(ctx, communityID); err != nil {
		return "", err
	}

	depositID := meta.DepositID
	if depositID == "" {
		depositID = uuid.NewString()
	}

	deposit := &model.Deposit{
		DepositID:        depositID,
		CommunityID:      communityID,
		Amount:           model.NewAmount(amount),
		Method:           method,
		DepositorAddress: meta.DepositorAddress,
		TxHash:           meta.TxHash,
		Note:             meta.Note,
		Timestamp:        time.Now().Unix(),
	}

	if err := s.db.DepositFunds(ctx, deposit); err != nil {
		return "", err
	}

	log.Ctx(ctx).Debug().
		Str("community_id", communityID).
		Str("amount", amount.String()).
		Str("method", method.String()).
		Msg("recorded deposit")

	return deposit.DepositID, nil
}

// VerifyAllocatable reports whether the unallocated pool covers the
// requested amount. Pure read: it mutates nothing and takes no lock, so its
// answer may be stale by the time a caller acts on it. Use Allocate for the
// race-free check-and-commit.
func (s *Service) VerifyAllocatable(
	ctx context.Context, amount sdkmath.Int,
) (*AllocationCheck, error) {
	if err := validateAmount(amount); err != nil {
		return nil, err
	}

	return s.allocationCheck(ctx, amount)
}

// Allocate carves amount out of the operator wallet for one community. The
// balance read, the committed-sum read, the comparison and the deposit all
// happen under one lock so concurrent allocations cannot jointly exceed the
// wallet's real balance.
func (s *Service) Allocate(
	ctx context.Context,
	communityID string,
	amount sdkmath.Int,
	meta DepositMeta,
) (string, error) {
	if err := validateAmount(amount); err != nil {
		return "", err
	}

	s.allocMu.Lock()
	defer s.allocMu.Unlock()

	check, err := s.allocationCheck(ctx, amount)
	if err != nil {
		return "", err
	}
	if !check.OK {
		metrics.IncAllocationDenied()
		log.Ctx(ctx).Warn().
			Str("community_id", communityID).
			Str("requested", check.Requested.String()).
			Str("available", check.Available.String()).
			Msg("allocation denied by wallet balance check")
		return "", &InsufficientUnallocatedError{
			Requested: check.Requested,
			Available: check.Available,
		}
	}

	return s.Deposit(ctx, communityID, amount, types.MethodAdminAllocation, meta)
}

func (s *Service) allocationCheck(
	ctx context.Context, amount sdkmath.Int,
) (*AllocationCheck, error) {
	actual, err := s.oracle.ActualBalance(ctx)
	if err != nil {
		return nil, &OracleUnavailableError{Err: err}
	}

	allocated, err := s.db.SumFundingBalances(ctx)
	if err != nil {
		return nil, err
	}

	available := actual.Sub(allocated)
	check := &AllocationCheck{
		OK:        available.GTE(amount),
		Requested: amount,
		Available: available,
	}
	if !check.OK {
		check.Reason = "insufficient unallocated funds"
	}

	return check, nil
}

func validateAmount(amount sdkmath.Int) error {
	if amount.IsNil() || !amount.IsPositive() {
		return &InvalidAmountError{Message: "amount must be a positive integer"}
	}
	return nil
}
