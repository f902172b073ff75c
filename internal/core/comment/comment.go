package comment

import (
	"time"

	"plume/internal/core/user"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

type Comment struct {
	ID        uuid.UUID      `gorm:"primary_key;type:char(36)"`
	PostID    uuid.UUID      `gorm:"type:char(36);not null;index"`
	AuthorID  uuid.UUID      `gorm:"type:char(36);not null;index"`
	Author    user.User      `gorm:"foreignkey:AuthorID"`
	Text      string         `gorm:"type:text;not null"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
