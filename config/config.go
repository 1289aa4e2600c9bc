package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	JWTKey    string
	SaltRound int

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	EmailSender    string
	Password       string // SMTP App Password
	SendGridAPIKey string // When set, emails go through SendGrid instead of SMTP

	SuperAdminEmails []string // Sealed superadmin allow-list, parsed once at startup
	ROIDenominator   string   // "all" or "answered"

	EnableAdminDigest bool
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:      getEnv("PORT", "3000"),
		JWTKey:    getEnv("JWT_SECRET_KEY", "defaultSecret"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "coursehub"),
		DBPort:     getEnv("DB_PORT", "5432"),

		EmailSender:    getEnv("EMAIL_SENDER", "defaultSecret"),
		Password:       getEnv("PASSWORD", "defaultSecret"),
		SendGridAPIKey: getEnv("SENDGRID_API_KEY", ""),

		SuperAdminEmails: getEnvList("SUPER_ADMIN_EMAILS", "admin@gmail.com"),
		ROIDenominator:   getEnv("ROI_DENOMINATOR", "all"),

		EnableAdminDigest: getEnv("ENABLE_ADMIN_DIGEST", "true") == "true",
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.ROIDenominator != "all" && AppConfig.ROIDenominator != "answered" {
		log.Printf("Warning: Unknown ROI_DENOMINATOR %q, falling back to \"all\".", AppConfig.ROIDenominator)
		AppConfig.ROIDenominator = "all"
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}

// getEnvList retrieves a comma separated environment variable as a trimmed slice
func getEnvList(key, defaultValue string) []string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, strings.ToLower(item))
		}
	}
	return items
}
