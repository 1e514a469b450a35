package delivery

import (
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	userdto "vidstream-backend/internal/user/dto"
	"vidstream-backend/internal/user/usecase"
	"vidstream-backend/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	accessTokenCookie  = "accessToken"
	refreshTokenCookie = "refreshToken"
)

type UserHandler struct {
	userUsecase usecase.UserUsecase
	config      *config.Config
}

// NewUserHandler creates a new instance of UserHandler
func NewUserHandler(userUsecase usecase.UserUsecase, cfg *config.Config) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
		config:      cfg,
	}
}

// Register handles POST /users/register (multipart form with avatar and an
// optional coverImage file).
func (h *UserHandler) Register(c *gin.Context) {
	var req userdto.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"statusCode": 400, "message": "All fields are required"})
		return
	}

	avatarPath, cleanupAvatar, err := h.saveUpload(c, "avatar")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"statusCode": 400, "message": "Avatar file is required"})
		return
	}
	defer cleanupAvatar()
	req.AvatarLocalPath = avatarPath

	coverPath, cleanupCover, err := h.saveUpload(c, "coverImage")
	if err == nil {
		defer cleanupCover()
		req.CoverImageLocalPath = coverPath
	}

	user, err := h.userUsecase.Register(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, userdto.RegisterResponse{IsUserCreated: user}, "User registered successfully")
}

// Login handles POST /users/login and delivers the token pair both in the
// body and as HttpOnly cookies.
func (h *UserHandler) Login(c *gin.Context) {
	var req userdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"statusCode": 400, "message": "Username or email is required"})
		return
	}

	tokens, err := h.userUsecase.Login(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setTokenCookies(c, tokens.AccessToken, tokens.RefreshToken)
	respond(c, http.StatusOK, tokens, "User logged in successfully")
}

// Logout handles POST /users/logout. The auth gate runs first.
func (h *UserHandler) Logout(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"statusCode": 401, "message": "Unauthorized request"})
		return
	}

	if err := h.userUsecase.Logout(user.ID); err != nil {
		respondError(c, err)
		return
	}

	h.clearTokenCookies(c)
	respond(c, http.StatusOK, gin.H{}, "User logged out successfully")
}

// RefreshToken handles POST /users/refresh-token. The refresh token comes
// from the cookie or, failing that, the request body.
func (h *UserHandler) RefreshToken(c *gin.Context) {
	token, _ := c.Cookie(refreshTokenCookie)
	if token == "" {
		var req userdto.RefreshTokenRequest
		if err := c.ShouldBindJSON(&req); err == nil {
			token = req.RefreshToken
		}
	}

	tokens, err := h.userUsecase.RefreshAccessToken(token)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setTokenCookies(c, tokens.AccessToken, tokens.RefreshToken)
	respond(c, http.StatusOK, tokens, "Access token refreshed")
}

// ChangePassword handles POST /users/change-password.
func (h *UserHandler) ChangePassword(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"statusCode": 401, "message": "Unauthorized request"})
		return
	}

	var req userdto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"statusCode": 400, "message": "All fields are required"})
		return
	}

	if err := h.userUsecase.ChangePassword(user.ID, &req); err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, gin.H{}, "Password changed successfully")
}

// Me handles GET /users/me.
func (h *UserHandler) Me(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"statusCode": 401, "message": "Unauthorized request"})
		return
	}

	current, err := h.userUsecase.GetCurrentUser(user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, current, "Current user fetched successfully")
}

// UpdateAvatar handles PATCH /users/avatar (multipart).
func (h *UserHandler) UpdateAvatar(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"statusCode": 401, "message": "Unauthorized request"})
		return
	}

	path, cleanup, err := h.saveUpload(c, "avatar")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"statusCode": 400, "message": "Avatar file is required"})
		return
	}
	defer cleanup()

	updated, err := h.userUsecase.UpdateAvatar(c.Request.Context(), user.ID, path)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, updated, "Avatar updated successfully")
}

// UpdateCoverImage handles PATCH /users/cover-image (multipart).
func (h *UserHandler) UpdateCoverImage(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"statusCode": 401, "message": "Unauthorized request"})
		return
	}

	path, cleanup, err := h.saveUpload(c, "coverImage")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"statusCode": 400, "message": "Cover image file is required"})
		return
	}
	defer cleanup()

	updated, err := h.userUsecase.UpdateCoverImage(c.Request.Context(), user.ID, path)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, updated, "Cover image updated successfully")
}

// saveUpload stores the named multipart file in the OS temp dir and returns
// its path plus a cleanup func. The image host reads from this local path.
func (h *UserHandler) saveUpload(c *gin.Context, field string) (string, func(), error) {
	file, err := c.FormFile(field)
	if err != nil {
		return "", nil, err
	}
	return h.saveUploadedFile(c, file)
}

func (h *UserHandler) saveUploadedFile(c *gin.Context, file *multipart.FileHeader) (string, func(), error) {
	dst := filepath.Join(os.TempDir(), uuid.New().String()+filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, dst); err != nil {
		return "", nil, err
	}
	return dst, func() { os.Remove(dst) }, nil
}

// setTokenCookies delivers both tokens as HttpOnly cookies. Secure is only
// ever relaxed through the explicit COOKIE_SECURE config switch.
func (h *UserHandler) setTokenCookies(c *gin.Context, accessToken, refreshToken string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(accessTokenCookie, accessToken, int(h.config.JWTAccessExpiry.Seconds()), "/", "", h.config.CookieSecure, true)
	c.SetCookie(refreshTokenCookie, refreshToken, int(h.config.JWTRefreshExpiry.Seconds()), "/", "", h.config.CookieSecure, true)
}

func (h *UserHandler) clearTokenCookies(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(accessTokenCookie, "", -1, "/", "", h.config.CookieSecure, true)
	c.SetCookie(refreshTokenCookie, "", -1, "/", "", h.config.CookieSecure, true)
}
