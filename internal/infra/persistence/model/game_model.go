// Package model contains the GORM table mappings for the storefront schema.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// GenreModel mirrors the 'genres' table.
type GenreModel struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"type:varchar(100);not null;unique"`
}

// TableName explicitly sets the table name for GORM.
func (GenreModel) TableName() string {
	return "genres"
}

// GameModel mirrors the 'games' table.
type GameModel struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	Title       string          `gorm:"type:varchar(255);not null;index"`
	GenreID     *int64          `gorm:"index"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Rating      *float64
	ReleaseDate *time.Time
	IsAvailable bool `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Genre *GenreModel `gorm:"foreignKey:GenreID"`
}

// TableName explicitly sets the table name for GORM.
func (GameModel) TableName() string {
	return "games"
}
