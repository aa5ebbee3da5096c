package entity

import "time"

// User represents a storefront account that can wishlist and purchase games.
type User struct {
	ID        int64     `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"is_active"` // Not consulted at purchase time; kept for account management.
	CreatedAt time.Time `json:"created_at"`
}
