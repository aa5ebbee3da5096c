package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DiscountModel mirrors the 'discounts' table. The Name doubles as the
// redemption code, hence the unique constraint. The game associations live in
// the 'discount_games' join table.
type DiscountModel struct {
	ID        int64           `gorm:"primaryKey;autoIncrement"`
	Name      string          `gorm:"type:varchar(100);not null;unique"`
	Percent   decimal.Decimal `gorm:"type:numeric(5,2);not null"`
	StartDate *time.Time
	EndDate   *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time

	Games []GameModel `gorm:"many2many:discount_games"`
}

// TableName explicitly sets the table name for GORM.
func (DiscountModel) TableName() string {
	return "discounts"
}
