package dto

import userdomain "vidstream-backend/internal/user/domain"

// RegisterRequest carries the multipart form fields of POST /users/register.
// The file parts are saved to disk by the delivery layer; only their local
// paths travel further down.
type RegisterRequest struct {
	Username string `form:"userName" binding:"required"`
	Email    string `form:"email" binding:"required,email"`
	FullName string `form:"fullName" binding:"required"`
	Password string `form:"password" binding:"required,min=6"`

	AvatarLocalPath     string `form:"-"`
	CoverImageLocalPath string `form:"-"`
}

type LoginRequest struct {
	Username string `json:"userName"`
	Email    string `json:"email"`
	Password string `json:"password" binding:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

type TokenResponse struct {
	AccessToken  string           `json:"accessToken"`
	RefreshToken string           `json:"refreshToken"`
	User         *userdomain.User `json:"user,omitempty"`
}

type RegisterResponse struct {
	IsUserCreated *userdomain.User `json:"isUserCreated"`
}
