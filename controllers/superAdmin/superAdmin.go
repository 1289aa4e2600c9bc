package superAdminController

import (
	"coursehub/access"
	adminController "coursehub/controllers/admin"
	"coursehub/config"
	"coursehub/database"
	"coursehub/middleware"
	"coursehub/models"
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// RegisterAdmin creates a new admin account (Superadmin only)
func RegisterAdmin(c *fiber.Ctx) error {
	superAdmin, ok := c.Locals("adminUser").(models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedRegisterAdmin").(*struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db
	email := strings.ToLower(strings.TrimSpace(reqData.Email))

	if err := db.Where("email = ?", email).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	newAdmin := models.User{
		Name:            strings.TrimSpace(reqData.Name),
		Email:           email,
		Password:        string(hashedPassword),
		Role:            models.RoleAdmin,
		IsEmailVerified: true,
	}

	if err := db.Create(&newAdmin).Error; err != nil {
		log.Printf("Error saving admin to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register admin!", nil)
	}

	adminController.RecordModerationLog(models.EntityUser, newAdmin.ID, superAdmin.ID,
		"", models.RoleAdmin, "admin account created")

	newAdmin.Password = ""

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Admin registered successfully.", newAdmin)
}

// AdminList returns all admin accounts (Superadmin only)
func AdminList(c *fiber.Ctx) error {
	db := database.Database.Db

	var admins []models.User
	if err := db.Where("role = ? AND is_deleted = false", models.RoleAdmin).
		Order("created_at DESC").
		Find(&admins).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch admin list!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Admin List.", admins)
}

// RemoveAdmin deletes an admin account (Superadmin only). The guard still
// runs: the superadmin-immunity rule protects allow-listed identities from
// everyone, other superadmins included.
func RemoveAdmin(c *fiber.Ctx) error {
	superAdmin, ok := c.Locals("adminUser").(models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	adminId, err := c.ParamsInt("id")
	if err != nil || adminId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid admin id!", nil)
	}

	db := database.Database.Db

	var target models.User
	if err := db.Where("id = ? AND role = ? AND is_deleted = false",
		adminId, models.RoleAdmin).First(&target).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Admin not found!", nil)
	}

	actor := access.Identity{ID: superAdmin.ID, Role: superAdmin.Role, Email: superAdmin.Email}
	targetIdentity := access.Identity{ID: target.ID, Role: target.Role, Email: target.Email}
	if err := access.CanPerform(actor, access.ActionDelete, targetIdentity); err != nil {
		var denied *access.DeniedError
		if errors.As(err, &denied) {
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, denied.Reason, nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to evaluate permissions!", nil)
	}

	if err := db.Model(&target).Update("is_deleted", true).Error; err != nil {
		log.Printf("Error deleting admin %d: %v", target.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete admin!", nil)
	}

	adminController.RecordModerationLog(models.EntityUser, target.ID, superAdmin.ID,
		target.Status, "DELETED", "admin account removed")

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Admin deleted successfully!", nil)
}
