// internal/model/organisation.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Organisation is the tenant root. Every other record carries its id and
// every query filters on it.
type Organisation struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"type:text;uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
