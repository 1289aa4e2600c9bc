package adminController

import (
	"coursehub/database"
	"coursehub/models"
	"log"
)

// RecordModerationLog appends one row to the moderation decision log. The log
// is append-only; failures are logged but never fail the action itself, the
// status update is the authoritative outcome.
func RecordModerationLog(entityType string, entityID, actorID uint, fromStatus, toStatus, note string) {
	entry := models.ModerationLog{
		EntityType: entityType,
		EntityID:   entityID,
		ActorID:    actorID,
		FromStatus: fromStatus,
		ToStatus:   toStatus,
		Note:       note,
	}
	if err := database.Database.Db.Create(&entry).Error; err != nil {
		log.Printf("Error recording moderation log for %s %d: %v", entityType, entityID, err)
	}
}
