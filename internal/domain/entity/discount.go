package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Discount is a time-bounded percentage discount applicable to an explicit set
// of games. The discount's name doubles as the redemption code a buyer enters
// at checkout; matching is exact and case-sensitive. A missing window bound
// means unbounded in that direction.
type Discount struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"` // Display name and redemption code.
	Percent   decimal.Decimal `json:"percent"`
	StartDate *time.Time      `json:"start_date"`
	EndDate   *time.Time      `json:"end_date"`
	GameIDs   []int64         `json:"game_ids"` // Games the discount applies to.
}

// ActiveAt reports whether the discount window contains t. Bounds are inclusive.
func (d *Discount) ActiveAt(t time.Time) bool {
	if d.StartDate != nil && t.Before(*d.StartDate) {
		return false
	}
	if d.EndDate != nil && t.After(*d.EndDate) {
		return false
	}

	return true
}

// AppliesTo reports whether the discount is associated with the given game.
func (d *Discount) AppliesTo(gameID int64) bool {
	for _, id := range d.GameIDs {
		if id == gameID {
			return true
		}
	}

	return false
}
