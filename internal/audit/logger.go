package audit

import (
	"encoding/json"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-chain/internal/models"
)

type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(
	branchID uint,
	userID *uint,
	action string,
	entity string,
	entityID *uint,
	eventUUID string,
	metadata any,
) error {

	// Sem banco configurado a auditoria vira no-op.
	if l == nil || l.db == nil {
		return nil
	}

	var metaJSON string
	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			metaJSON = string(b)
		}
	}

	log := models.AuditLog{
		BranchID:  branchID,
		UserID:    userID,
		Action:    action,
		Entity:    entity,
		EntityID:  entityID,
		EventUUID: eventUUID,
		Metadata:  metaJSON,
	}

	return l.db.Create(&log).Error
}
