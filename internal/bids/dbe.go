// Package bids implements the bid-management calculators: DBE participation
// and haul economics.
package bids

import (
	"github.com/shopspring/decimal"
)

// DBEInput is the DBE participation calculator input. Amounts are dollars.
type DBEInput struct {
	TotalBid  decimal.Decimal `json:"total_bid"`
	GoalPct   decimal.Decimal `json:"goal_pct"`
	Committed decimal.Decimal `json:"committed"`
}

// DBEResult reports committed participation against the contract goal.
type DBEResult struct {
	GoalAmount decimal.Decimal `json:"goal_amount"`
	Committed  decimal.Decimal `json:"committed"`
	MeetsGoal  bool            `json:"meets_goal"`
	Shortfall  decimal.Decimal `json:"shortfall"`
	PctOfGoal  decimal.Decimal `json:"pct_of_goal"`
}

var oneHundred = decimal.NewFromInt(100)

// CalculateDBE computes the DBE goal amount and the committed shortfall.
// Shortfall is zero when the goal is met, never negative.
func CalculateDBE(in DBEInput) DBEResult {
	goal := in.TotalBid.Mul(in.GoalPct).Div(oneHundred)

	shortfall := goal.Sub(in.Committed)
	meets := !shortfall.IsPositive()
	if meets {
		shortfall = decimal.Zero
	}

	pctOfGoal := decimal.Zero
	if goal.IsPositive() {
		pctOfGoal = in.Committed.Div(goal).Mul(oneHundred).Round(1)
	}

	return DBEResult{
		GoalAmount: goal,
		Committed:  in.Committed,
		MeetsGoal:  meets,
		Shortfall:  shortfall,
		PctOfGoal:  pctOfGoal,
	}
}
