package post

import (
	"time"

	"plume/internal/core/group"
	"plume/internal/core/user"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

// Post is a published entry. The author is required; the group is
// optional and becomes nil when its group is deleted.
type Post struct {
	ID        uuid.UUID      `gorm:"primary_key;type:char(36)"`
	Text      string         `gorm:"type:text;not null"`
	AuthorID  uuid.UUID      `gorm:"type:char(36);not null;index"`
	Author    user.User      `gorm:"foreignkey:AuthorID"`
	GroupID   *uuid.UUID     `gorm:"type:char(36);index"`
	Group     *group.Group   `gorm:"foreignkey:GroupID"`
	Image     string         `gorm:"type:varchar(512)"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
