package grading

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestStakeAmounts(t *testing.T) {
	tests := []struct {
		name  string
		stake int64
		odds  int
		risk  string
		toWin string
	}{
		{"negative odds quote to-win", 50000, -110, "55000", "50000"},
		{"positive odds quote risk", 50000, 150, "50000", "75000"},
		{"even money", 20000, 100, "20000", "20000"},
		{"heavy favorite", 10000, -200, "20000", "10000"},
		{"big dog", 10000, 300, "10000", "30000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			risk, toWin, err := StakeAmounts(decimal.NewFromInt(tt.stake), tt.odds)
			if err != nil {
				t.Fatalf("StakeAmounts error: %v", err)
			}
			if risk.String() != tt.risk {
				t.Errorf("risk = %s, want %s", risk, tt.risk)
			}
			if toWin.String() != tt.toWin {
				t.Errorf("toWin = %s, want %s", toWin, tt.toWin)
			}
		})
	}
}

func TestStakeAmountsZeroOdds(t *testing.T) {
	if _, _, err := StakeAmounts(decimal.NewFromInt(100), 0); err == nil {
		t.Fatal("StakeAmounts(_, 0) = nil error, want error")
	}
}

func TestRiskToWinRoundTrip(t *testing.T) {
	for _, odds := range []int{-110, -200, -105, 120, 250, 100} {
		risk := decimal.NewFromInt(11000)
		toWin, err := ToWinFromRisk(risk, odds)
		if err != nil {
			t.Fatalf("ToWinFromRisk(%d): %v", odds, err)
		}
		back, err := RiskFromToWin(toWin, odds)
		if err != nil {
			t.Fatalf("RiskFromToWin(%d): %v", odds, err)
		}
		if !back.Sub(risk).Abs().LessThan(decimal.NewFromFloat(0.01)) {
			t.Errorf("odds %d: round trip %s -> %s -> %s", odds, risk, toWin, back)
		}
	}
}
