package apperrors

import (
	"fmt"
	"strconv"
)

// NonWholeDollarAmountError is returned when a money-accepting boundary
// receives anything other than a signed whole-dollar integer.
type NonWholeDollarAmountError struct {
	Field string
	Value any
}

func (e *NonWholeDollarAmountError) Error() string {
	return fmt.Sprintf("field [%s] must be a signed whole-dollar integer, received [%v]", e.Field, e.Value)
}

func (e *NonWholeDollarAmountError) Code() string  { return "non_whole_dollar_amount" }
func (e *NonWholeDollarAmountError) Unwrap() error { return ErrValidation }

// SavingsGoalRequiresSavingsPoolError is returned when a savings-type goal is
// created or updated without a savings pool linkage.
type SavingsGoalRequiresSavingsPoolError struct {
	GoalType string
}

func (e *SavingsGoalRequiresSavingsPoolError) Error() string {
	return fmt.Sprintf("goals of type [%s] must be linked to a savings pool", e.GoalType)
}

func (e *SavingsGoalRequiresSavingsPoolError) Code() string {
	return "savings_goal_requires_savings_pool"
}
func (e *SavingsGoalRequiresSavingsPoolError) Unwrap() error { return ErrValidation }

// InsufficientPoolFundsError is returned when an allocation would consume more
// than the available income pool.
type InsufficientPoolFundsError struct {
	AvailablePoolAmount       int64
	RequestedAllocationAmount int64
}

// Shortfall is the amount missing from the pool to satisfy the allocation.
func (e *InsufficientPoolFundsError) Shortfall() int64 {
	return e.RequestedAllocationAmount - e.AvailablePoolAmount
}

func (e *InsufficientPoolFundsError) Error() string {
	return fmt.Sprintf(
		"cannot allocate %s against an available pool of %s, add income or reduce allocations by %s",
		FormatUSD(e.RequestedAllocationAmount),
		FormatUSD(e.AvailablePoolAmount),
		FormatUSD(e.Shortfall()),
	)
}

func (e *InsufficientPoolFundsError) Code() string  { return "insufficient_pool_funds" }
func (e *InsufficientPoolFundsError) Unwrap() error { return ErrInvariant }

// ExpenseGoalCapExceededError is returned when an allocation would push an
// expense goal past its hard cap.
type ExpenseGoalCapExceededError struct {
	GoalAmount                int64
	AlreadyAllocatedAmount    int64
	RequestedAllocationAmount int64
}

func (e *ExpenseGoalCapExceededError) Error() string {
	remaining := e.GoalAmount - e.AlreadyAllocatedAmount
	if remaining < 0 {
		remaining = 0
	}
	return fmt.Sprintf(
		"cannot allocate %s because this expense goal has a hard cap of %s with only %s remaining",
		FormatUSD(e.RequestedAllocationAmount),
		FormatUSD(e.GoalAmount),
		FormatUSD(remaining),
	)
}

func (e *ExpenseGoalCapExceededError) Code() string  { return "expense_goal_cap_exceeded" }
func (e *ExpenseGoalCapExceededError) Unwrap() error { return ErrInvariant }

// InsufficientSavingsPoolFundsError is returned when a savings withdrawal
// exceeds the savings pool balance.
type InsufficientSavingsPoolFundsError struct {
	SavingsPoolBalance int64
	WithdrawalAmount   int64
}

func (e *InsufficientSavingsPoolFundsError) Error() string {
	return fmt.Sprintf(
		"cannot withdraw %s from a savings pool holding %s",
		FormatUSD(e.WithdrawalAmount),
		FormatUSD(e.SavingsPoolBalance),
	)
}

func (e *InsufficientSavingsPoolFundsError) Code() string  { return "insufficient_savings_pool_funds" }
func (e *InsufficientSavingsPoolFundsError) Unwrap() error { return ErrInvariant }

// GoalDeletionRequiresNetZeroBalanceError is returned when soft deletion is
// attempted on a goal whose cumulative allocation balance is not zero.
type GoalDeletionRequiresNetZeroBalanceError struct {
	Balance int64
}

func (e *GoalDeletionRequiresNetZeroBalanceError) Error() string {
	return fmt.Sprintf(
		"goal cannot be deleted while it carries a balance of %s, record compensating events first",
		FormatUSD(e.Balance),
	)
}

func (e *GoalDeletionRequiresNetZeroBalanceError) Code() string {
	return "goal_deletion_requires_net_zero_balance"
}
func (e *GoalDeletionRequiresNetZeroBalanceError) Unwrap() error { return ErrInvariant }

// MultipleOpenCyclesNotAllowedError is returned when opening a cycle while
// another cycle is already open for the budget.
type MultipleOpenCyclesNotAllowedError struct {
	OpenCycleCount int
}

func (e *MultipleOpenCyclesNotAllowedError) Error() string {
	return fmt.Sprintf("cannot open a cycle while %d cycle(s) are already open for this budget", e.OpenCycleCount)
}

func (e *MultipleOpenCyclesNotAllowedError) Code() string  { return "multiple_open_cycles_not_allowed" }
func (e *MultipleOpenCyclesNotAllowedError) Unwrap() error { return ErrInvariant }

// InvalidCycleStateTransitionError is returned for any cycle transition other
// than open to closed.
type InvalidCycleStateTransitionError struct {
	From string
	To   string
}

func (e *InvalidCycleStateTransitionError) Error() string {
	return fmt.Sprintf("invalid cycle state transition from [%s] to [%s]", e.From, e.To)
}

func (e *InvalidCycleStateTransitionError) Code() string  { return "invalid_cycle_state_transition" }
func (e *InvalidCycleStateTransitionError) Unwrap() error { return ErrInvariant }

// ClosedCycleReadOnlyError is returned when an allocation targets a closed cycle.
type ClosedCycleReadOnlyError struct{}

func (e *ClosedCycleReadOnlyError) Error() string {
	return "closed cycles are read-only, allocations cannot be posted to them"
}

func (e *ClosedCycleReadOnlyError) Code() string  { return "closed_cycle_read_only" }
func (e *ClosedCycleReadOnlyError) Unwrap() error { return ErrInvariant }

// NonCurrentCyclePostingNotAllowedError is returned when an allocation targets
// any cycle other than the current one.
type NonCurrentCyclePostingNotAllowedError struct{}

func (e *NonCurrentCyclePostingNotAllowedError) Error() string {
	return "allocations may only be posted to the current cycle"
}

func (e *NonCurrentCyclePostingNotAllowedError) Code() string {
	return "non_current_cycle_posting_not_allowed"
}
func (e *NonCurrentCyclePostingNotAllowedError) Unwrap() error { return ErrInvariant }

// AllocationEventMutationNotAllowedError is returned for every update or
// delete attempt against the append-only allocation journal.
type AllocationEventMutationNotAllowedError struct {
	Operation string
}

func (e *AllocationEventMutationNotAllowedError) Error() string {
	return fmt.Sprintf("allocation events are append-only, [%s] is not permitted; record a compensating event instead", e.Operation)
}

func (e *AllocationEventMutationNotAllowedError) Code() string {
	return "allocation_event_mutation_not_allowed"
}
func (e *AllocationEventMutationNotAllowedError) Unwrap() error { return ErrInvariant }

// AllocationEventNotFoundError is returned when a compensating event
// references an unknown original event.
type AllocationEventNotFoundError struct {
	EventID string
}

func (e *AllocationEventNotFoundError) Error() string {
	return fmt.Sprintf("allocation event [%s] not found", e.EventID)
}

func (e *AllocationEventNotFoundError) Code() string  { return "allocation_event_not_found" }
func (e *AllocationEventNotFoundError) Unwrap() error { return ErrNotFound }

// FormatUSD renders a whole-dollar amount with thousands separators, e.g. -1250 -> "$-1,250".
func FormatUSD(amount int64) string {
	digits := strconv.FormatInt(amount, 10)
	sign := ""
	if digits[0] == '-' {
		sign = "-"
		digits = digits[1:]
	}

	var grouped []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped = append(grouped, ',')
		}
		grouped = append(grouped, d)
	}

	return "$" + sign + string(grouped)
}
