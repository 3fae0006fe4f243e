package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Campaign represents a marketing campaign that runs through one channel.
// Channel is resolved inline when the list or get query joins the channel
// table; it stays nil when the referenced channel no longer exists.
type Campaign struct {
	ID        uuid.UUID
	Name      string
	ChannelID uuid.UUID
	Channel   *Channel
	StartDate time.Time
	EndDate   time.Time
	Budget    float64
	Spent     float64 // derived at read time, never persisted
	CreatedAt time.Time
	UpdatedAt time.Time
}

// WithSpend returns a copy of the campaign carrying the spend computed for
// the given reference time.
func (c Campaign) WithSpend(now time.Time) Campaign {
	c.Spent = Spend(c.Budget, c.StartDate, c.EndDate, now)
	return c
}

// CampaignPatch holds the fields of a partial campaign update. Nil fields
// are left untouched.
type CampaignPatch struct {
	Name      *string
	ChannelID *uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
	Budget    *float64
}

// Empty reports whether the patch changes nothing.
func (p CampaignPatch) Empty() bool {
	return p.Name == nil && p.ChannelID == nil && p.StartDate == nil && p.EndDate == nil && p.Budget == nil
}

// MaxBudget is the exclusive upper bound of a campaign budget; budgets are
// stored with two decimals and twelve integer digits.
const MaxBudget = 1e12

// RoundBudget rounds a budget to cents, the precision it is stored with.
func RoundBudget(b float64) float64 {
	return decimal.NewFromFloat(b).Round(2).InexactFloat64()
}
