package utils

import (
	"coursehub/database"
	"coursehub/models"
	"coursehub/moderation"
	"log"

	"github.com/robfig/cron/v3"
)

// InitializeModerationScheduler sets up the daily moderation housekeeping jobs
func InitializeModerationScheduler() {
	log.Println("[MODERATION-SCHEDULER] Initializing moderation scheduler...")

	c := cron.New()

	// Run daily at 9 AM to nudge admins and sweep orphaned reviews
	c.AddFunc("0 9 * * *", func() {
		log.Println("[MODERATION-SCHEDULER] Running daily moderation check...")
		SendPendingDigest()
		SweepOrphanedReviews()
	})

	c.Start()
	log.Println("[MODERATION-SCHEDULER] Moderation scheduler started - runs daily at 9 AM")
}

// SendPendingDigest emails every active admin a summary of the pending queue
func SendPendingDigest() {
	db := database.Database.Db

	var pendingCourses, pendingReviews int64
	db.Model(&models.Course{}).
		Where("status = ? AND is_deleted = false", moderation.StatusPending).
		Count(&pendingCourses)
	db.Model(&models.Review{}).
		Where("status = ? AND is_deleted = false", moderation.StatusPending).
		Count(&pendingReviews)

	if pendingCourses == 0 && pendingReviews == 0 {
		log.Println("[MODERATION-SCHEDULER] Queue is empty, skipping digest")
		return
	}

	var admins []models.User
	if err := db.Where("role = ? AND status = ? AND is_deleted = false",
		models.RoleAdmin, models.AccountActive).Find(&admins).Error; err != nil {
		log.Printf("[MODERATION-SCHEDULER] Error fetching admins: %v", err)
		return
	}

	log.Printf("[MODERATION-SCHEDULER] Digest: %d pending courses, %d pending reviews, %d admins",
		pendingCourses, pendingReviews, len(admins))

	for _, admin := range admins {
		SendAdminDigestEmail(admin.Email, admin.Name, pendingCourses, pendingReviews)
	}
}

// SweepOrphanedReviews marks reviews of deleted courses deleted so they can
// never re-enter aggregation. The read paths already scope by course, this
// keeps the table honest.
func SweepOrphanedReviews() {
	db := database.Database.Db

	var orphanedCourseIds []uint
	db.Model(&models.Course{}).Where("is_deleted = true").Pluck("id", &orphanedCourseIds)
	if len(orphanedCourseIds) == 0 {
		return
	}

	result := db.Model(&models.Review{}).
		Where("course_id IN ? AND is_deleted = false", orphanedCourseIds).
		Update("is_deleted", true)

	if result.Error != nil {
		log.Printf("[MODERATION-SCHEDULER] Error sweeping orphaned reviews: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("[MODERATION-SCHEDULER] Swept %d orphaned reviews", result.RowsAffected)
	}
}
