package adminController

import (
	"coursehub/access"
	"coursehub/database"
	"coursehub/middleware"
	"coursehub/models"
	"coursehub/utils"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

func guardIdentity(u models.User) access.Identity {
	return access.Identity{ID: u.ID, Role: u.Role, Email: u.Email}
}

// statusAction maps a requested account status to the guarded action
func statusAction(status string) access.Action {
	switch status {
	case models.AccountSuspended:
		return access.ActionSuspend
	case models.AccountBanned:
		return access.ActionBan
	case models.AccountFlagged:
		return access.ActionFlag
	default:
		return access.ActionActivate
	}
}

// denyResponse converts a guard denial into the HTTP error surface. Guard
// denials must never be downgraded; anything that isn't a DeniedError is a
// server fault.
func denyResponse(c *fiber.Ctx, err error) error {
	var denied *access.DeniedError
	if errors.As(err, &denied) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, denied.Reason, nil)
	}
	return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to evaluate permissions!", nil)
}

// UserList returns managed accounts. Plain admins see students and coaches
// only; superadmins also see admin accounts.
func UserList(c *fiber.Ctx) error {
	admin, ok := c.Locals("adminUser").(models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedPagination").(*struct {
		Page  int `query:"page"`
		Limit int `query:"limit"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}
	offset := (reqData.Page - 1) * reqData.Limit

	db := database.Database.Db

	query := db.Model(&models.User{}).Where("is_deleted = false")
	if !access.IsSuperAdmin(admin.Email) {
		query = query.Where("role != ?", models.RoleAdmin)
	}
	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	query.Count(&total)

	var users []models.User
	if err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(reqData.Limit).
		Find(&users).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch user list!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User List.", fiber.Map{
		"users": users,
		"pagination": fiber.Map{
			"total": total,
			"page":  reqData.Page,
			"limit": reqData.Limit,
		},
	})
}

// UpdateUserStatus suspends/bans/flags/reactivates an account
func UpdateUserStatus(c *fiber.Ctx) error {
	admin, ok := c.Locals("adminUser").(models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedUserStatus").(*struct {
		UserID uint   `json:"userId"`
		Status string `json:"status"`
		Note   string `json:"note"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var target models.User
	if err := db.Where("id = ? AND is_deleted = false", reqData.UserID).First(&target).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	if err := access.CanPerform(guardIdentity(admin), statusAction(reqData.Status), guardIdentity(target)); err != nil {
		return denyResponse(c, err)
	}

	if target.Status == reqData.Status {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "User already in requested status.", target)
	}

	fromStatus := target.Status
	if err := db.Model(&target).Update("status", reqData.Status).Error; err != nil {
		log.Printf("Error updating status for user %d: %v", target.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update user status!", nil)
	}

	RecordModerationLog(models.EntityUser, target.ID, admin.ID, fromStatus, reqData.Status, reqData.Note)
	utils.SendAccountStatusEmail(target.Email, target.Name, reqData.Status, reqData.Note)

	target.Status = reqData.Status
	return middleware.JsonResponse(c, fiber.StatusOK, true, "User status updated successfully!", target)
}

// UpdateUserRole changes an account's role. Granting or removing admin
// privileges is a superadmin-only operation.
func UpdateUserRole(c *fiber.Ctx) error {
	admin, ok := c.Locals("adminUser").(models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedUserRole").(*struct {
		UserID uint   `json:"userId"`
		Role   string `json:"role"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var target models.User
	if err := db.Where("id = ? AND is_deleted = false", reqData.UserID).First(&target).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	if err := access.CanPerform(guardIdentity(admin), access.ActionChangeRole, guardIdentity(target)); err != nil {
		return denyResponse(c, err)
	}
	if reqData.Role == models.RoleAdmin && !access.IsSuperAdmin(admin.Email) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Only a superadmin may grant admin privileges.", nil)
	}

	if target.Role == reqData.Role {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "User already has this role.", target)
	}

	fromRole := target.Role
	if err := db.Model(&target).Update("role", reqData.Role).Error; err != nil {
		log.Printf("Error updating role for user %d: %v", target.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update user role!", nil)
	}

	RecordModerationLog(models.EntityUser, target.ID, admin.ID, fromRole, reqData.Role, "role change")

	target.Role = reqData.Role
	return middleware.JsonResponse(c, fiber.StatusOK, true, "User role updated successfully!", target)
}

// DeleteUser removes an account. Deletion cascades to the user's reviews so
// they drop out of every course's aggregation.
func DeleteUser(c *fiber.Ctx) error {
	admin, ok := c.Locals("adminUser").(models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	userId, err := c.ParamsInt("id")
	if err != nil || userId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user id!", nil)
	}

	db := database.Database.Db

	var target models.User
	if err := db.Where("id = ? AND is_deleted = false", userId).First(&target).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	if err := access.CanPerform(guardIdentity(admin), access.ActionDelete, guardIdentity(target)); err != nil {
		return denyResponse(c, err)
	}

	if err := db.Model(&target).Update("is_deleted", true).Error; err != nil {
		log.Printf("Error deleting user %d: %v", target.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete user!", nil)
	}

	// Cascade to the user's reviews
	db.Model(&models.Review{}).
		Where("user_id = ? AND is_deleted = false", target.ID).
		Update("is_deleted", true)

	RecordModerationLog(models.EntityUser, target.ID, admin.ID, target.Status, "DELETED", "")

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User deleted successfully!", nil)
}
