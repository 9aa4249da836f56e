package ledger

import (
	"errors"
	"fmt"

	sdkmath "cosmossdk.io/math"
)

// InsufficientBudgetError is returned when a reservation's converted cost
// exceeds the community's funding balance.
type InsufficientBudgetError struct {
	CommunityID string
	Required    sdkmath.Int
	Available   sdkmath.Int
}

func (e *InsufficientBudgetError) Error() string {
	return fmt.Sprintf(
		"insufficient budget for community %s: required %s, available %s",
		e.CommunityID, e.Required, e.Available,
	)
}

func IsInsufficientBudgetError(err error) bool {
	var target *InsufficientBudgetError
	return errors.As(err, &target)
}

// InsufficientUnallocatedError is returned when an allocation would push the
// sum of community balances past the operator wallet's real balance.
type InsufficientUnallocatedError struct {
	Requested sdkmath.Int
	Available sdkmath.Int
}

func (e *InsufficientUnallocatedError) Error() string {
	return fmt.Sprintf(
		"insufficient unallocated funds: requested %s, available %s",
		e.Requested, e.Available,
	)
}

func IsInsufficientUnallocatedError(err error) bool {
	var target *InsufficientUnallocatedError
	return errors.As(err, &target)
}

// OracleUnavailableError wraps a failed or timed-out wallet balance read.
// Callers must treat it as "cannot verify, do not allocate".
type OracleUnavailableError struct {
	Err error
}

func (e *OracleUnavailableError) Error() string {
	return fmt.Sprintf("balance oracle unavailable: %v", e.Err)
}

func (e *OracleUnavailableError) Unwrap() error {
	return e.Err
}

func IsOracleUnavailableError(err error) bool {
	var target *OracleUnavailableError
	return errors.As(err, &target)
}

// InvalidAmountError is returned for zero, negative or unset amounts.
type InvalidAmountError struct {
	Message string
}

func (e *InvalidAmountError) Error() string {
	return e.Message
}

func IsInvalidAmountError(err error) bool {
	var target *InvalidAmountError
	return errors.As(err, &target)
}

// BudgetLimitExceededError is returned when a reservation would push
// cumulative converted spend past the community's advisory budget limit.
type BudgetLimitExceededError struct {
	CommunityID string
	Limit       sdkmath.Int
	Projected   sdkmath.Int
}

func (e *BudgetLimitExceededError) Error() string {
	return fmt.Sprintf(
		"budget limit exceeded for community %s: limit %s, projected spend %s",
		e.CommunityID, e.Limit, e.Projected,
	)
}

func IsBudgetLimitExceededError(err error) bool {
	var target *BudgetLimitExceededError
	return errors.As(err, &target)
}
