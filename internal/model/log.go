// internal/model/log.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Log is an append-only audit record. The application only ever inserts
// and reads these rows; nothing updates or deletes them.
type Log struct {
	ID             uuid.UUID         `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrganisationID uuid.UUID         `gorm:"type:uuid;not null;index" json:"organisation_id"`
	UserID         *uuid.UUID        `gorm:"type:uuid" json:"user_id"`
	Action         string            `gorm:"type:text;not null" json:"action"`
	Meta           datatypes.JSONMap `gorm:"type:jsonb" json:"meta"`
	CreatedAt      time.Time         `json:"created_at"`
}
