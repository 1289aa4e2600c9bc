package authController

import (
	"coursehub/config"
	"coursehub/database"
	"coursehub/middleware"
	"coursehub/models"
	"coursehub/utils"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

const otpValidity = 10 * time.Minute

// createOTP invalidates previous codes for the same purpose and stores a new one
func createOTP(userID uint, email, purpose string) (string, error) {
	db := database.Database.Db

	db.Model(&models.OTP{}).
		Where("user_id = ? AND purpose = ? AND is_used = false", userID, purpose).
		Update("is_deleted", true)

	code := utils.GenerateOTP()
	otp := models.OTP{
		UserID:    userID,
		Email:     email,
		Code:      code,
		Purpose:   purpose,
		ExpiresAt: time.Now().Add(otpValidity),
	}
	if err := db.Create(&otp).Error; err != nil {
		return "", err
	}
	return code, nil
}

// consumeOTP validates and burns a code; returns false when no valid code matches
func consumeOTP(email, code, purpose string) (models.OTP, bool) {
	db := database.Database.Db

	var otp models.OTP
	err := db.Where(
		"email = ? AND code = ? AND purpose = ? AND is_used = false AND is_deleted = false AND expires_at > ?",
		email, code, purpose, time.Now(),
	).Order("created_at DESC").First(&otp).Error
	if err != nil {
		return models.OTP{}, false
	}

	db.Model(&otp).Update("is_used", true)
	return otp, true
}

func Signup(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSignup").(*struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db
	email := strings.ToLower(strings.TrimSpace(reqData.Email))

	// Check if email already exists
	if err := db.Where("email = ?", email).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
	}

	// Hash Password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	newUser := models.User{
		Name:     strings.TrimSpace(reqData.Name),
		Email:    email,
		Password: string(hashedPassword),
		Role:     reqData.Role,
	}

	if err := db.Create(&newUser).Error; err != nil {
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to Signup user!", nil)
	}

	code, err := createOTP(newUser.ID, newUser.Email, models.OTPPurposeVerifyEmail)
	if err != nil {
		log.Printf("Error creating OTP: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create verification code!", nil)
	}

	// The signup's purpose is the verification email, so a send failure is
	// fatal for this request. The account stays; /auth/send/otp re-sends.
	if err := utils.SendOTPEmail(newUser.Email, code); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false,
			"Account created but the verification email failed. Request a new code.", nil)
	}

	newUser.Password = ""

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully. Check your email for the verification code.", newUser)
}

// SendOTP re-sends the email verification code
func SendOTP(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSendOTP").(*struct {
		Email string `json:"email"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db
	email := strings.ToLower(strings.TrimSpace(reqData.Email))

	var user models.User
	if err := db.Where("email = ? AND is_deleted = false", email).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No account found for this email!", nil)
	}
	if user.IsEmailVerified {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already verified!", nil)
	}

	code, err := createOTP(user.ID, user.Email, models.OTPPurposeVerifyEmail)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create verification code!", nil)
	}
	if err := utils.SendOTPEmail(user.Email, code); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to send verification email!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Verification code sent.", nil)
}

// VerifyOTP marks the account's email verified
func VerifyOTP(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedVerifyOTP").(*struct {
		Email string `json:"email"`
		Code  string `json:"code"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db
	email := strings.ToLower(strings.TrimSpace(reqData.Email))

	otp, valid := consumeOTP(email, reqData.Code, models.OTPPurposeVerifyEmail)
	if !valid {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid or expired code!", nil)
	}

	var user models.User
	if err := db.First(&user, otp.UserID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	if err := db.Model(&user).Update("is_email_verified", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to verify email!", nil)
	}

	utils.SendWelcomeEmail(user.Email, user.Name)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Email verified successfully.", nil)
}

func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db
	email := strings.ToLower(strings.TrimSpace(reqData.Email))

	var user models.User
	if err := db.Where("email = ? AND is_deleted = false", email).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or password!", nil)
	}

	if user.BlockedUntil != nil && user.BlockedUntil.After(time.Now()) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Account temporarily locked. Try again later.", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		attempts := user.FailedLoginAttempts + 1
		updates := map[string]interface{}{"failed_login_attempts": attempts}
		if attempts >= 5 {
			lockUntil := time.Now().Add(15 * time.Minute)
			updates["blocked_until"] = &lockUntil
			updates["failed_login_attempts"] = 0
		}
		db.Model(&user).Updates(updates)
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or password!", nil)
	}

	if !user.IsEmailVerified {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Email not verified! Check your inbox for the code.", nil)
	}

	switch user.Status {
	case models.AccountSuspended:
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Your account is suspended. Contact support.", nil)
	case models.AccountBanned:
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Your account is banned.", nil)
	}

	db.Model(&user).Updates(map[string]interface{}{
		"failed_login_attempts": 0,
		"blocked_until":         nil,
		"last_login":            time.Now(),
	})

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	if err != nil {
		log.Printf("Error generating JWT: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to login!", nil)
	}

	user.Password = ""

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful.", fiber.Map{
		"token": token,
		"user":  user,
	})
}

// ForgotPasswordSendOTP emails a reset code
func ForgotPasswordSendOTP(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSendOTP").(*struct {
		Email string `json:"email"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db
	email := strings.ToLower(strings.TrimSpace(reqData.Email))

	var user models.User
	if err := db.Where("email = ? AND is_deleted = false", email).First(&user).Error; err != nil {
		// Do not reveal whether the email exists
		return middleware.JsonResponse(c, fiber.StatusOK, true, "If the email exists, a reset code was sent.", nil)
	}

	code, err := createOTP(user.ID, user.Email, models.OTPPurposeResetPassword)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create reset code!", nil)
	}
	if err := utils.SendPasswordResetEmail(user.Email, code); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to send reset email!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "If the email exists, a reset code was sent.", nil)
}

// ForgotPasswordVerifyOTP exchanges a valid reset code for a short-lived token
func ForgotPasswordVerifyOTP(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedVerifyOTP").(*struct {
		Email string `json:"email"`
		Code  string `json:"code"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	email := strings.ToLower(strings.TrimSpace(reqData.Email))

	otp, valid := consumeOTP(email, reqData.Code, models.OTPPurposeResetPassword)
	if !valid {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid or expired code!", nil)
	}

	token, err := middleware.GenerateResetJWT(otp.UserID, email)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to issue reset token!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Code verified.", fiber.Map{"resetToken": token})
}

// ResetPassword sets a new password for the authenticated identity
func ResetPassword(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedResetPassword").(*struct {
		NewPassword string `json:"newPassword"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = false", userId).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.NewPassword), config.AppConfig.SaltRound)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	if err := db.Model(&user).Updates(map[string]interface{}{
		"password":              string(hashedPassword),
		"failed_login_attempts": 0,
		"blocked_until":         nil,
	}).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to reset password!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Password reset successfully.", nil)
}
