package controllers

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"Backend-FitForm/src/services"
	"Backend-FitForm/src/utils"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/oauth2"
)

const refreshTokenTTL = 7 * 24 * time.Hour

// RegisterUser godoc
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  models.ErrorResponse
// @Failure      409  {object}  models.ErrorResponse
// @Router       /auth/register [post]
func RegisterUser(c *fiber.Ctx) error {
	type RegisterRequest struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request format",
			"code":  "INVALID_REQUEST",
		})
	}

	if req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Email and password are required",
			"code":  "MISSING_CREDENTIALS",
		})
	}

	user, err := services.RegisterUser(c.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "Email is already registered",
				"code":  "EMAIL_TAKEN",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Registration failed",
			"code":  "REGISTRATION_ERROR",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Registration successful",
		"user": fiber.Map{
			"id":    user.ID.Hex(),
			"name":  user.Name,
			"email": user.Email,
		},
	})
}

// LoginUser godoc
// @Summary      Login with email and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  models.ErrorResponse
// @Failure      401  {object}  models.ErrorResponse
// @Router       /auth/login [post]
func LoginUser(c *fiber.Ctx) error {
	type LoginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	// 1. Input validation
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request format",
			"code":  "INVALID_REQUEST",
		})
	}

	// 2. Validate required fields
	if req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Email and password are required",
			"code":  "MISSING_CREDENTIALS",
		})
	}

	// 3. Authenticate user
	user, err := services.AuthenticateUser(req.Email, req.Password)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid credentials",
			"code":  "INVALID_CREDENTIALS",
		})
	}

	// 4. Generate tokens
	token, err := utils.GenerateJWT(user.ID.Hex(), user.Email)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Token generation failed",
			"code":  "TOKEN_ERROR",
		})
	}

	refreshToken := utils.GenerateRandomString(32)
	if err := utils.StoreRefreshToken(user.ID.Hex(), refreshToken, refreshTokenTTL); err != nil {
		fmt.Printf("⚠️ Failed to store refresh token: %v\n", err)
	}

	// 5. Set security headers
	c.Set("X-Frame-Options", "DENY")
	c.Set("X-Content-Type-Options", "nosniff")

	// 6. Return response
	return c.JSON(fiber.Map{
		"token":        token,
		"refreshToken": refreshToken,
		"expiresIn":    3600,
		"user": fiber.Map{
			"id":        user.ID.Hex(),
			"name":      user.Name,
			"email":     user.Email,
			"lastLogin": time.Now(),
		},
		"message": "Login successful",
	})
}

// RefreshToken godoc
// @Summary      Rotate an access token using a refresh token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  models.ErrorResponse
// @Router       /auth/refresh [post]
func RefreshToken(c *fiber.Ctx) error {
	type RefreshRequest struct {
		UserID       string `json:"userId"`
		RefreshToken string `json:"refreshToken"`
	}

	var req RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request format",
			"code":  "INVALID_REQUEST",
		})
	}

	valid, err := utils.ValidateRefreshToken(req.UserID, req.RefreshToken)
	if err != nil || !valid {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid refresh token",
			"code":  "INVALID_REFRESH_TOKEN",
		})
	}

	user, err := services.GetUserByID(req.UserID)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid refresh token",
			"code":  "INVALID_REFRESH_TOKEN",
		})
	}

	token, err := utils.GenerateJWT(user.ID.Hex(), user.Email)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Token generation failed",
			"code":  "TOKEN_ERROR",
		})
	}

	// Rotate the refresh token on every use.
	newRefreshToken := utils.GenerateRandomString(32)
	if err := utils.StoreRefreshToken(user.ID.Hex(), newRefreshToken, refreshTokenTTL); err != nil {
		fmt.Printf("⚠️ Failed to rotate refresh token: %v\n", err)
	}

	return c.JSON(fiber.Map{
		"token":        token,
		"refreshToken": newRefreshToken,
		"expiresIn":    3600,
	})
}

// LogoutUser godoc
// @Summary      Logout and invalidate the current token
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /auth/logout [post]
func LogoutUser(c *fiber.Ctx) error {
	// 1. Get user from JWT middleware context
	userID, _ := c.Locals("userId").(string)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User not authenticated",
			"code":  "NOT_AUTHENTICATED",
		})
	}

	// 2. Blacklist the access token for the rest of its lifetime
	token := c.Get("Authorization")
	if token != "" {
		token = strings.TrimPrefix(token, "Bearer ")
		if err := utils.BlacklistToken(token, 24*time.Hour); err != nil {
			fmt.Printf("⚠️ Failed to blacklist token: %v\n", err)
		}
	}

	// 3. Drop the refresh token
	if err := utils.DeleteRefreshToken(userID); err != nil {
		fmt.Printf("⚠️ Failed to delete refresh token: %v\n", err)
	}

	return c.JSON(fiber.Map{
		"message":      "Logout successful",
		"success":      true,
		"timestamp":    time.Now(),
		"sessionEnded": true,
	})
}

// GetMe godoc
// @Summary      Get the authenticated user's profile
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /auth/me [get]
func GetMe(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User not authenticated",
			"code":  "NOT_AUTHENTICATED",
		})
	}

	user, err := services.GetUserByID(userID)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User not found",
			"code":  "USER_NOT_FOUND",
		})
	}

	return c.JSON(fiber.Map{
		"id":       user.ID.Hex(),
		"name":     user.Name,
		"email":    user.Email,
		"provider": user.Provider,
	})
}

// GoogleLogin - start the Google OAuth flow
func GoogleLogin(c *fiber.Ctx) error {
	config := services.GetGoogleOAuthConfig()

	// Generate state parameter for security
	state := utils.GenerateRandomString(32)

	url := config.AuthCodeURL(state, oauth2.AccessTypeOffline)

	return c.JSON(fiber.Map{
		"url": url,
	})
}

// GoogleCallback - handle Google OAuth callback
func GoogleCallback(c *fiber.Ctx) error {
	code := c.Query("code")
	errorParam := c.Query("error")
	frontendURL := os.Getenv("FRONTEND_URL")

	if errorParam != "" {
		fmt.Printf("❌ Google OAuth error: %s\n", errorParam)
		return c.Redirect(fmt.Sprintf("%s/auth/callback?error=%s", frontendURL, errorParam))
	}
	if code == "" {
		return c.Redirect(fmt.Sprintf("%s/auth/callback?error=missing_code", frontendURL))
	}

	user, err := services.ProcessGoogleLogin(code)
	if err != nil {
		fmt.Printf("❌ Google login failed: %v\n", err)
		return c.Redirect(fmt.Sprintf("%s/auth/callback?error=login_failed", frontendURL))
	}

	token, err := utils.GenerateJWT(user.ID.Hex(), user.Email)
	if err != nil {
		fmt.Printf("❌ Token generation failed: %v\n", err)
		return c.Redirect(fmt.Sprintf("%s/auth/callback?error=token_generation_failed", frontendURL))
	}

	fmt.Printf("✅ User authenticated: %s\n", user.Email)

	// Redirect to frontend with token
	return c.Redirect(fmt.Sprintf("%s/auth/callback?token=%s", frontendURL, token))
}
