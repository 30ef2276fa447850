package domain

import "time"

// SavingsPoolBalances holds the paired aggregate balances of a savings pool.
// A positive savings event moves money income -> savings, a negative event
// moves savings -> income; the two balances always conserve their sum.
type SavingsPoolBalances struct {
	IncomePoolBalance  int64 `json:"incomePoolBalance"`
	SavingsPoolBalance int64 `json:"savingsPoolBalance"`
}

// PlannedSavingsEvent is a dated, not-yet-applied savings event used for
// balance forecasting.
type PlannedSavingsEvent struct {
	Date   time.Time `json:"date"`
	Amount int64     `json:"amount"`
}

// PlannedChildTarget is one cycle's share of a savings target distribution.
type PlannedChildTarget struct {
	ParentGoalID string `json:"parentGoalID"`
	CycleID      string `json:"cycleID"`
	TargetAmount int64  `json:"targetAmount"`
}

// SavingsChildPlan is an existing target-child goal entry subject to
// realignment when its parent's plan is recomputed at cycle close.
type SavingsChildPlan struct {
	ChildGoalID   string `json:"childGoalID"`
	CycleID       string `json:"cycleID"`
	TargetAmount  int64  `json:"targetAmount"`
	IsClosedCycle bool   `json:"isClosedCycle"`
}
