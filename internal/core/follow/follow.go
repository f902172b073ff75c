package follow

import (
	"time"

	"github.com/gofrs/uuid"
)

// Follow records that UserID receives AuthorID's posts in their
// following feed. The storage layer carries no uniqueness constraint;
// the follow service rejects duplicates and self-follows.
type Follow struct {
	ID        uuid.UUID `gorm:"primary_key;type:char(36)"`
	UserID    uuid.UUID `gorm:"type:char(36);not null;index"`
	AuthorID  uuid.UUID `gorm:"type:char(36);not null;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}
