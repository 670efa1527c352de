package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/turfbook/turfbook/config"
	"github.com/turfbook/turfbook/internal/middleware"
	"github.com/turfbook/turfbook/internal/user"
	"github.com/turfbook/turfbook/pkg/token"
	"github.com/turfbook/turfbook/utils"
)

const resetTokenExpiryMinutes = 30

type AuthController struct {
	repo   AuthRepository
	config *config.Config
	// mailer MailerService // Interface for sending emails
}

func NewAuthController(repo AuthRepository, cfg *config.Config) *AuthController {
	return &AuthController{
		repo:   repo,
		config: cfg,
	}
}

func (ac *AuthController) generateAndSaveTokens(userID uint, role string) (string, string, error) {
	accessToken, err := token.GenerateJWT(userID, role, ac.config.JWT.AccessTokenSecret, ac.config.JWT.AccessTokenExpiryMinutes)
	if err != nil {
		return "", "", fmt.Errorf("access token generation failed: %w", err)
	}

	refreshTokenString, err := token.GenerateRefreshToken(userID, ac.config.JWT.RefreshTokenSecret, ac.config.JWT.RefreshTokenExpiryDays)
	if err != nil {
		return "", "", fmt.Errorf("refresh token generation failed: %w", err)
	}

	refreshToken := &user.RefreshToken{
		UserID:    userID,
		Token:     refreshTokenString,
		ExpiresAt: time.Now().AddDate(0, 0, ac.config.JWT.RefreshTokenExpiryDays),
	}

	if err := ac.repo.SaveRefreshToken(refreshToken); err != nil {
		return "", "", fmt.Errorf("failed to save refresh token: %w", err)
	}
	return accessToken, refreshTokenString, nil
}

// sendEmail simulates sending an email. Replace with actual email service.
func (ac *AuthController) sendEmail(to, subject, body string) error {
	fmt.Printf("SIMULATING: Sending Email\nTo: %s\nSubject: %s\nBody: %s\n", to, subject, body)
	return nil
}

// @Summary      Register a new user
// @Description  Create a new account with name, email and password. Role is always "user".
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        user  body  RegisterRequest  true  "User registration details"
// @Success      201   {object} AuthResponse "User registered successfully, returns tokens and user info"
// @Failure      400   {object} map[string]string "Validation error or invalid input"
// @Failure      409   {object} map[string]string "User with this email already exists"
// @Failure      500   {object} map[string]string "Internal server error"
// @Router       /auth/register [post]
func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if _, err := ac.repo.GetUserByEmail(req.Email); !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusConflict, gin.H{"error": "User with this email already exists"})
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		config.Logger.Error("failed to hash password", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
		return
	}

	// Admin accounts are promoted manually; self-registration is always "user".
	newUser := &user.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashed,
		Role:     user.RoleUser,
	}

	if err := ac.repo.CreateUser(newUser); err != nil {
		config.Logger.Error("failed to create user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
		return
	}

	accessToken, refreshToken, err := ac.generateAndSaveTokens(newUser.ID, newUser.Role)
	if err != nil {
		config.Logger.Error("failed to issue tokens", zap.Uint("user_id", newUser.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue tokens"})
		return
	}

	c.JSON(http.StatusCreated, AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         FilterUserRecord(newUser),
	})
}

// @Summary      Log in
// @Description  Authenticate with email and password, returns access and refresh tokens.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        credentials  body  LoginRequest  true  "Login credentials"
// @Success      200  {object} AuthResponse
// @Failure      400  {object} map[string]string "Validation error"
// @Failure      401  {object} map[string]string "Invalid credentials"
// @Router       /auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	u, err := ac.repo.GetUserByEmail(req.Email)
	if err != nil {
		// Same response for unknown email and wrong password.
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	if !utils.CheckPassword(u.Password, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	accessToken, refreshToken, err := ac.generateAndSaveTokens(u.ID, u.Role)
	if err != nil {
		config.Logger.Error("failed to issue tokens", zap.Uint("user_id", u.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue tokens"})
		return
	}

	c.JSON(http.StatusOK, AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         FilterUserRecord(u),
	})
}

// @Summary      Refresh access token
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request  body  RefreshTokenRequest  true  "Refresh token"
// @Success      200  {object} AuthResponse
// @Failure      401  {object} map[string]string "Invalid or expired refresh token"
// @Router       /auth/refresh-token [post]
func (ac *AuthController) RefreshToken(c *gin.Context) {
	var req RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	claims, err := token.ValidateJWT(req.RefreshToken, ac.config.JWT.RefreshTokenSecret)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid refresh token: " + err.Error()})
		return
	}

	stored, err := ac.repo.GetRefreshToken(req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Refresh token not recognized or revoked"})
		return
	}

	u, err := ac.repo.GetUserByID(claims.UserID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User no longer exists"})
		return
	}

	// Rotate: revoke the used token and issue a fresh pair.
	if err := ac.repo.InvalidateRefreshToken(stored.Token); err != nil {
		config.Logger.Error("failed to revoke refresh token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to refresh session"})
		return
	}

	accessToken, refreshToken, err := ac.generateAndSaveTokens(u.ID, u.Role)
	if err != nil {
		config.Logger.Error("failed to issue tokens", zap.Uint("user_id", u.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue tokens"})
		return
	}

	c.JSON(http.StatusOK, AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         FilterUserRecord(u),
	})
}

// @Summary      Get current profile
// @Tags         Auth
// @Produce      json
// @Success      200  {object} UserResponse
// @Failure      401  {object} map[string]string
// @Router       /auth/me [get]
// @Security     BearerAuth
func (ac *AuthController) GetProfile(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	u, err := ac.repo.GetUserByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, FilterUserRecord(u))
}

// @Summary      Update current profile
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        profile  body  UpdateProfileRequest  true  "Fields to update"
// @Success      200  {object} UserResponse
// @Router       /auth/me [put]
// @Security     BearerAuth
func (ac *AuthController) UpdateProfile(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	u, err := ac.repo.GetUserByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.Avatar != nil {
		u.Avatar = *req.Avatar
	}

	if err := ac.repo.UpdateUser(u); err != nil {
		config.Logger.Error("failed to update profile", zap.Uint("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, FilterUserRecord(u))
}

// @Summary      Change password
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request  body  ChangePasswordRequest  true  "Old and new password"
// @Success      200  {object} map[string]string
// @Failure      401  {object} map[string]string "Wrong old password"
// @Router       /auth/change-password [post]
// @Security     BearerAuth
func (ac *AuthController) ChangePassword(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	u, err := ac.repo.GetUserByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if !utils.CheckPassword(u.Password, req.OldPassword) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Old password is incorrect"})
		return
	}

	hashed, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		config.Logger.Error("failed to hash password", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to change password"})
		return
	}

	u.Password = hashed
	if err := ac.repo.UpdateUser(u); err != nil {
		config.Logger.Error("failed to change password", zap.Uint("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to change password"})
		return
	}

	// All existing sessions are stale once the password changes.
	if err := ac.repo.InvalidateAllRefreshTokensForUser(userID); err != nil {
		config.Logger.Error("failed to revoke sessions after password change", zap.Uint("user_id", userID), zap.Error(err))
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password changed successfully"})
}

// @Summary      Request a password reset email
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request  body  ForgotPasswordRequest  true  "Account email"
// @Success      200  {object} map[string]string
// @Router       /auth/forgot-password [post]
func (ac *AuthController) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	// Do not reveal whether the email exists.
	genericMsg := gin.H{"message": "If an account exists for this email, a reset link has been sent"}

	u, err := ac.repo.GetUserByEmail(req.Email)
	if err != nil {
		c.JSON(http.StatusOK, genericMsg)
		return
	}

	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		config.Logger.Error("failed to generate reset token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process request"})
		return
	}

	expiry := time.Now().Add(resetTokenExpiryMinutes * time.Minute)
	u.ResetToken = hex.EncodeToString(raw)
	u.ResetTokenExpiry = &expiry

	if err := ac.repo.UpdateUser(u); err != nil {
		config.Logger.Error("failed to save reset token", zap.Uint("user_id", u.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process request"})
		return
	}

	resetLink := fmt.Sprintf("%s/reset-password?token=%s", ac.config.App.FrontendURL, u.ResetToken)
	if err := ac.sendEmail(u.Email, "Reset your TurfBook password", "Reset link: "+resetLink); err != nil {
		config.Logger.Error("failed to send reset email", zap.Uint("user_id", u.ID), zap.Error(err))
	}

	c.JSON(http.StatusOK, genericMsg)
}

// @Summary      Reset password with an emailed token
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request  body  ResetPasswordRequest  true  "Token and new password"
// @Success      200  {object} map[string]string
// @Failure      400  {object} map[string]string "Invalid or expired token"
// @Router       /auth/reset-password [post]
func (ac *AuthController) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	u, err := ac.repo.GetUserByResetToken(req.Token)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired reset token"})
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		config.Logger.Error("failed to hash password", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset password"})
		return
	}

	u.Password = hashed
	u.ResetToken = ""
	u.ResetTokenExpiry = nil

	if err := ac.repo.UpdateUser(u); err != nil {
		config.Logger.Error("failed to reset password", zap.Uint("user_id", u.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset password"})
		return
	}

	if err := ac.repo.InvalidateAllRefreshTokensForUser(u.ID); err != nil {
		config.Logger.Error("failed to revoke sessions after reset", zap.Uint("user_id", u.ID), zap.Error(err))
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password reset successfully"})
}

// @Summary      Log out
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request  body  LogoutRequest  true  "Logout options"
// @Success      200  {object} map[string]string
// @Router       /auth/logout [post]
// @Security     BearerAuth
func (ac *AuthController) Logout(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req LogoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if req.InvalidateAllSessions {
		if err := ac.repo.InvalidateAllRefreshTokensForUser(userID); err != nil {
			config.Logger.Error("failed to revoke sessions", zap.Uint("user_id", userID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log out"})
			return
		}
	} else if req.RefreshToken != "" {
		if err := ac.repo.InvalidateRefreshToken(req.RefreshToken); err != nil {
			config.Logger.Error("failed to revoke refresh token", zap.Uint("user_id", userID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log out"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}
