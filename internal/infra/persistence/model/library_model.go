package model

import "time"

// LibraryModel mirrors the 'libraries' table. A row with null PurchaseDate
// and ActivationCode is a wishlisted entry; both set means owned. The unique
// index on (user_id, game_id) keeps one row per pair, and the unique index on
// activation_code backs the uniqueness of issued codes.
type LibraryModel struct {
	ID             int64 `gorm:"primaryKey;autoIncrement"`
	UserID         int64 `gorm:"not null;uniqueIndex:idx_libraries_user_game"`
	GameID         int64 `gorm:"not null;uniqueIndex:idx_libraries_user_game"`
	PurchaseDate   *time.Time
	ActivationCode *string `gorm:"type:varchar(32);uniqueIndex"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	User *UserModel `gorm:"foreignKey:UserID"`
	Game *GameModel `gorm:"foreignKey:GameID"`
}

// TableName explicitly sets the table name for GORM.
func (LibraryModel) TableName() string {
	return "libraries"
}
