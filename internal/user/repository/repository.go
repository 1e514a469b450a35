package repository

import userdomain "vidstream-backend/internal/user/domain"

// UserRepository is the account store. Find methods return (nil, nil) when
// no row matches so callers can distinguish absence from infrastructure
// failure.
type UserRepository interface {
	Create(user *userdomain.User) error
	FindByID(id string) (*userdomain.User, error)
	FindByUsernameOrEmail(username, email string) (*userdomain.User, error)
	// FindSanitizedByID loads the account without its password and refresh
	// token columns.
	FindSanitizedByID(id string) (*userdomain.User, error)

	// Single-column patches; these deliberately skip full-record hooks and
	// validation since only one field changes.
	UpdateRefreshToken(userID string, token *string) error
	UpdatePassword(userID string, hashedPassword string) error
	UpdateAvatar(userID string, url string) error
	UpdateCoverImage(userID string, url string) error
}
