package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	userdomain "vidstream-backend/internal/user/domain"
	userdto "vidstream-backend/internal/user/dto"
	"vidstream-backend/internal/user/repository"
	"vidstream-backend/pkg/apperror"
	"vidstream-backend/pkg/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// userUsecase implements UserUsecase
type userUsecase struct {
	userRepo repository.UserRepository
	uploader Uploader
	config   *config.Config
}

// NewUserUsecase creates a new instance of userUsecase
func NewUserUsecase(userRepo repository.UserRepository, uploader Uploader, cfg *config.Config) UserUsecase {
	return &userUsecase{
		userRepo: userRepo,
		uploader: uploader,
		config:   cfg,
	}
}

func (u *userUsecase) Register(ctx context.Context, req *userdto.RegisterRequest) (*userdomain.User, error) {
	username := strings.ToLower(strings.TrimSpace(req.Username))
	email := strings.ToLower(strings.TrimSpace(req.Email))
	fullName := strings.TrimSpace(req.FullName)

	if username == "" || email == "" || fullName == "" || strings.TrimSpace(req.Password) == "" {
		return nil, apperror.BadRequest("All fields are required")
	}

	existing, err := u.userRepo.FindByUsernameOrEmail(username, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.Conflict("User already exists")
	}

	if req.AvatarLocalPath == "" {
		return nil, apperror.BadRequest("Avatar file is required")
	}

	avatarURL, err := u.uploader.Upload(ctx, req.AvatarLocalPath)
	if err != nil || avatarURL == "" {
		return nil, apperror.Wrap(400, "Avatar file is required", err)
	}

	var coverURL string
	if req.CoverImageLocalPath != "" {
		coverURL, err = u.uploader.Upload(ctx, req.CoverImageLocalPath)
		if err != nil || coverURL == "" {
			return nil, apperror.Wrap(400, "Could not upload cover image", err)
		}
	}

	hashedPassword, err := repository.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &userdomain.User{
		Username:   username,
		Email:      email,
		FullName:   fullName,
		Password:   hashedPassword,
		Avatar:     avatarURL,
		CoverImage: coverURL,
	}

	if err := u.userRepo.Create(user); err != nil {
		// Concurrent registration with the same username/email races past
		// the existence check and lands here.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.Conflict("User already exists")
		}
		return nil, err
	}

	created, err := u.userRepo.FindSanitizedByID(user.ID)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, apperror.Internal("Something went wrong while registering the user")
	}

	return created, nil
}

func (u *userUsecase) Login(req *userdto.LoginRequest) (*userdto.TokenResponse, error) {
	username := strings.ToLower(strings.TrimSpace(req.Username))
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if username == "" && email == "" {
		return nil, apperror.BadRequest("Username or email is required")
	}

	user, err := u.userRepo.FindByUsernameOrEmail(username, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.Unauthorized("User does not exist")
	}

	if !repository.CheckPasswordHash(req.Password, user.Password) {
		return nil, apperror.Unauthorized("Invalid password")
	}

	pair, err := u.generateTokenPair(user.ID)
	if err != nil {
		return nil, err
	}

	sanitized, err := u.userRepo.FindSanitizedByID(user.ID)
	if err != nil {
		return nil, err
	}
	pair.User = sanitized

	return pair, nil
}

func (u *userUsecase) Logout(userID string) error {
	// Clearing the stored token terminates the session server-side; any
	// refresh token the client still holds stops matching.
	if err := u.userRepo.UpdateRefreshToken(userID, nil); err != nil {
		return apperror.Wrap(500, "Error logging out", err)
	}
	return nil
}

func (u *userUsecase) RefreshAccessToken(refreshToken string) (*userdto.TokenResponse, error) {
	if refreshToken == "" {
		return nil, apperror.Unauthorized("Unauthorized request")
	}

	claims, err := u.parseToken(refreshToken)
	if err != nil {
		return nil, apperror.Wrap(401, "Invalid refresh token", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok {
		return nil, apperror.Unauthorized("Invalid refresh token")
	}

	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.Unauthorized("Invalid refresh token")
	}

	// Byte-for-byte match against the stored token enforces the single
	// active session: a rotated-out token is well-formed but rejected here.
	if user.RefreshToken == nil ||
		subtle.ConstantTimeCompare([]byte(refreshToken), []byte(*user.RefreshToken)) != 1 {
		return nil, apperror.Unauthorized("Refresh token is expired or used")
	}

	// Rotation: generateTokenPair overwrites the stored token, and the
	// newly minted refresh token is the one returned to the caller.
	return u.generateTokenPair(user.ID)
}

func (u *userUsecase) ChangePassword(userID string, req *userdto.ChangePasswordRequest) error {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.Unauthorized("User does not exist")
	}

	if !repository.CheckPasswordHash(req.OldPassword, user.Password) {
		return apperror.Unauthorized("Old password does not match")
	}

	hashedPassword, err := repository.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	return u.userRepo.UpdatePassword(userID, hashedPassword)
}

func (u *userUsecase) GetCurrentUser(userID string) (*userdomain.User, error) {
	user, err := u.userRepo.FindSanitizedByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("User does not exist")
	}
	return user, nil
}

func (u *userUsecase) UpdateAvatar(ctx context.Context, userID, localPath string) (*userdomain.User, error) {
	if localPath == "" {
		return nil, apperror.BadRequest("Avatar file is required")
	}
	url, err := u.uploader.Upload(ctx, localPath)
	if err != nil || url == "" {
		return nil, apperror.Wrap(400, "Avatar file is required", err)
	}
	if err := u.userRepo.UpdateAvatar(userID, url); err != nil {
		return nil, err
	}
	return u.GetCurrentUser(userID)
}

func (u *userUsecase) UpdateCoverImage(ctx context.Context, userID, localPath string) (*userdomain.User, error) {
	if localPath == "" {
		return nil, apperror.BadRequest("Cover image file is required")
	}
	url, err := u.uploader.Upload(ctx, localPath)
	if err != nil || url == "" {
		return nil, apperror.Wrap(400, "Cover image file is required", err)
	}
	if err := u.userRepo.UpdateCoverImage(userID, url); err != nil {
		return nil, err
	}
	return u.GetCurrentUser(userID)
}

// generateTokenPair mints an access/refresh pair for the account and
// persists the refresh token on its record, overwriting any prior value.
// Tokens from a pair whose persistence failed are never returned.
func (u *userUsecase) generateTokenPair(userID string) (*userdto.TokenResponse, error) {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("User does not exist")
	}

	accessToken, err := u.generateAccessToken(user)
	if err != nil {
		return nil, apperror.Wrap(500, "Error generating tokens", err)
	}

	refreshToken, err := u.generateRefreshToken(user)
	if err != nil {
		return nil, apperror.Wrap(500, "Error generating tokens", err)
	}

	if err := u.userRepo.UpdateRefreshToken(user.ID, &refreshToken); err != nil {
		return nil, apperror.Wrap(500, "Error generating tokens", err)
	}

	return &userdto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (u *userUsecase) generateAccessToken(user *userdomain.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":   user.ID,
		"user_name": user.Username,
		"email":     user.Email,
		"exp":       time.Now().Add(u.config.JWTAccessExpiry).Unix(),
		"iat":       time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(u.config.JWTSecret))
}

func (u *userUsecase) generateRefreshToken(user *userdomain.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"token_id": uuid.New().String(),
		"exp":      time.Now().Add(u.config.JWTRefreshExpiry).Unix(),
		"iat":      time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(u.config.JWTSecret))
}

func (u *userUsecase) ValidateToken(accessToken string) (*userdomain.User, error) {
	claims, err := u.parseToken(accessToken)
	if err != nil {
		return nil, apperror.Wrap(401, "Invalid access token", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok {
		return nil, apperror.Unauthorized("Invalid access token")
	}

	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.Unauthorized("Invalid access token")
	}

	return user, nil
}

// parseToken verifies signature and expiry. The caller sees a single
// Unauthorized-class failure regardless of how the token was invalid.
func (u *userUsecase) parseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(u.config.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
