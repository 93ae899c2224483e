// Package grading turns (pick, game, segment scores) into Win/Loss/Push
// outcomes and signed settlement amounts.
package grading

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ToWinFromRisk derives the win amount implied by risking `risk` at
// American odds. Negative odds pay risk*100/|odds|; positive pay
// risk*odds/100.
func ToWinFromRisk(risk decimal.Decimal, odds int) (decimal.Decimal, error) {
	if odds == 0 {
		return decimal.Zero, fmt.Errorf("invalid American odds: cannot be 0")
	}
	if odds < 0 {
		return risk.Mul(hundred).Div(decimal.NewFromInt(int64(-odds))), nil
	}
	return risk.Mul(decimal.NewFromInt(int64(odds))).Div(hundred), nil
}

// RiskFromToWin derives the risk required to win `toWin` at American odds.
func RiskFromToWin(toWin decimal.Decimal, odds int) (decimal.Decimal, error) {
	if odds == 0 {
		return decimal.Zero, fmt.Errorf("invalid American odds: cannot be 0")
	}
	if odds < 0 {
		return toWin.Mul(decimal.NewFromInt(int64(-odds))).Div(hundred), nil
	}
	return toWin.Mul(hundred).Div(decimal.NewFromInt(int64(odds))), nil
}

// StakeAmounts converts a quoted stake into (risk, toWin). The quoted
// number is authoritative for exactly one side: with negative odds the
// bettor quotes the to-win amount, with positive odds the risk amount.
func StakeAmounts(stake decimal.Decimal, odds int) (risk, toWin decimal.Decimal, err error) {
	if odds < 0 {
		toWin = stake
		risk, err = RiskFromToWin(stake, odds)
		return risk, toWin, err
	}
	risk = stake
	toWin, err = ToWinFromRisk(stake, odds)
	return risk, toWin, err
}
