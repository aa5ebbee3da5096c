package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionModel mirrors the 'transactions' table. The unique index on
// (user_id, game_id) enforces at most one purchase per pair; a concurrent
// double purchase loses the race at commit time.
type TransactionModel struct {
	ID              int64           `gorm:"primaryKey;autoIncrement"`
	UserID          int64           `gorm:"not null;uniqueIndex:idx_transactions_user_game"`
	GameID          int64           `gorm:"not null;uniqueIndex:idx_transactions_user_game"`
	PurchaseDate    time.Time       `gorm:"not null"`
	PricePaid       decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	DiscountPercent decimal.Decimal `gorm:"type:numeric(5,2);not null"`
	PaymentMethod   string          `gorm:"type:varchar(50);not null"`
	CreatedAt       time.Time

	User *UserModel `gorm:"foreignKey:UserID"`
	Game *GameModel `gorm:"foreignKey:GameID"`
}

// TableName explicitly sets the table name for GORM.
func (TransactionModel) TableName() string {
	return "transactions"
}
