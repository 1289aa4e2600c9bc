package middleware

import (
	"coursehub/config"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// GenerateJWT generates a JWT token for the user
func GenerateJWT(userID uint, name, role, email string) (string, error) {
	claims := jwt.MapClaims{
		"userId": userID,
		"name":   name,
		"role":   role,
		"email":  email,
		"iat":    time.Now().Unix(),                     // issued at
		"exp":    time.Now().Add(24 * time.Hour).Unix(), // expiry 24h
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	jwtSecret := []byte(config.AppConfig.JWTKey)

	return token.SignedString(jwtSecret)
}

// GenerateResetJWT issues a short-lived token used only to finish a password
// reset after the OTP was verified. The purpose claim keeps it out of every
// other authenticated route.
func GenerateResetJWT(userID uint, email string) (string, error) {
	claims := jwt.MapClaims{
		"userId":  userID,
		"email":   email,
		"purpose": "password-reset",
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(15 * time.Minute).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.AppConfig.JWTKey))
}

// parseBearerClaims extracts and verifies the Bearer token from the request.
// Returns the claims, or a user-facing message when the token is unusable.
func parseBearerClaims(c *fiber.Ctx) (jwt.MapClaims, string) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return nil, "Missing or invalid Authorization header"
	}

	// The token should be prefixed with "Bearer "
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return nil, "Invalid Authorization header format"
	}

	tokenString := authHeader[len("Bearer "):]

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		jwtSecret := []byte(config.AppConfig.JWTKey)
		return jwtSecret, nil
	})

	if err != nil || !token.Valid {
		return nil, "Invalid or expired token"
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["userId"] == nil {
		return nil, "Invalid token payload"
	}

	return claims, ""
}

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"status":  false,
		"message": message,
	})
}

// JWTMiddleware is a middleware to check for valid JWT token in the request
func JWTMiddleware(c *fiber.Ctx) error {
	claims, errMsg := parseBearerClaims(c)
	if errMsg != "" {
		return unauthorized(c, errMsg)
	}

	// Single-purpose tokens (password reset) never open a session
	if purpose, ok := claims["purpose"].(string); ok && purpose != "" {
		return unauthorized(c, "Invalid or expired token")
	}

	// JWT claims are typically stored as `float64`, so cast it
	userID := claims["userId"].(float64)
	c.Locals("userId", uint(userID))
	if role, ok := claims["role"].(string); ok {
		c.Locals("userRole", role)
	}
	if email, ok := claims["email"].(string); ok {
		c.Locals("userEmail", email)
	}

	return c.Next()
}

// PasswordResetMiddleware admits a normal session token or a reset token
// issued after OTP verification. Only the password reset route uses it.
func PasswordResetMiddleware(c *fiber.Ctx) error {
	claims, errMsg := parseBearerClaims(c)
	if errMsg != "" {
		return unauthorized(c, errMsg)
	}

	if purpose, ok := claims["purpose"].(string); ok && purpose != "" && purpose != "password-reset" {
		return unauthorized(c, "Invalid or expired token")
	}

	userID := claims["userId"].(float64)
	c.Locals("userId", uint(userID))

	return c.Next()
}

func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Validation failed!", errors)
}
