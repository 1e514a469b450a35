package domain

import "time"

// User is one registered account. Username and Email are unique natural keys;
// Username is stored lowercase. RefreshToken holds the single active refresh
// token for the account (nil means no session); issuing a new pair overwrites
// it, logout sets it back to nil.
type User struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	Username     string    `json:"userName" gorm:"uniqueIndex;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	FullName     string    `json:"fullName"`
	Password     string    `json:"-"` // Never return password in JSON
	Avatar       string    `json:"avatar,omitempty"`
	CoverImage   string    `json:"coverImage,omitempty"`
	RefreshToken *string   `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
