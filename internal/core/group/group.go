package group

import (
	"time"

	"github.com/gofrs/uuid"
)

// Group is a topic posts can be tagged with. Title and slug are unique;
// a group's identity never changes after creation.
type Group struct {
	ID          uuid.UUID `gorm:"primary_key;type:char(36)"`
	Title       string    `gorm:"unique;not null"`
	Slug        string    `gorm:"unique;not null"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}
