package model

import "time"

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	FullName  string `gorm:"type:varchar(255);not null"`
	Email     string `gorm:"type:varchar(255);unique;not null"`
	IsActive  bool   `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
