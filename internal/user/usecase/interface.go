package usecase

import (
	"context"

	userdomain "vidstream-backend/internal/user/domain"
	userdto "vidstream-backend/internal/user/dto"
)

// Uploader is the image-hosting collaborator. It receives a path to a file
// the delivery layer already saved locally and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, localPath string) (string, error)
}

// UserUsecase is the account session controller: registration, the token
// pair lifecycle, and profile updates.
type UserUsecase interface {
	Register(ctx context.Context, req *userdto.RegisterRequest) (*userdomain.User, error)
	Login(req *userdto.LoginRequest) (*userdto.TokenResponse, error)
	Logout(userID string) error
	RefreshAccessToken(refreshToken string) (*userdto.TokenResponse, error)
	ChangePassword(userID string, req *userdto.ChangePasswordRequest) error
	GetCurrentUser(userID string) (*userdomain.User, error)
	UpdateAvatar(ctx context.Context, userID, localPath string) (*userdomain.User, error)
	UpdateCoverImage(ctx context.Context, userID, localPath string) (*userdomain.User, error)
	// ValidateToken checks an access token and resolves its account; used by
	// the authentication gate in front of protected routes.
	ValidateToken(accessToken string) (*userdomain.User, error)
}
