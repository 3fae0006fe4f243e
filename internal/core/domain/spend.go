package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const day = 24 * time.Hour

// Spend returns the share of budget considered spent at now, rounded to two
// decimal places. Spend grows linearly with the number of started days of
// the campaign: nothing before start, the full budget after end.
//
// start must be strictly before end; the result is undefined otherwise.
func Spend(budget float64, start, end, now time.Time) float64 {
	if now.Before(start) {
		return 0
	}
	if now.After(end) {
		return budget
	}

	total := decimal.NewFromInt(ceilDays(end.Sub(start)))
	elapsed := decimal.NewFromInt(ceilDays(now.Sub(start)))
	b := decimal.NewFromFloat(budget)

	spent := b.Mul(elapsed).Div(total).Round(2)
	if spent.GreaterThan(b) {
		return budget
	}
	return spent.InexactFloat64()
}

// ceilDays counts started days in d.
func ceilDays(d time.Duration) int64 {
	days := int64(d / day)
	if d%day != 0 {
		days++
	}
	return days
}
