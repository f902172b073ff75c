package database

import (
	"context"

	"plume/internal/config"
	"plume/internal/core/follow"
)

// FollowRepositoryDatabase implements FollowRepository over gorm.
type FollowRepositoryDatabase struct{}

func NewFollowRepositoryDatabase() *FollowRepositoryDatabase {
	return &FollowRepositoryDatabase{}
}

func (repo *FollowRepositoryDatabase) Create(ctx context.Context, f *follow.Follow) (*follow.Follow, error) {
	if err := config.DB.WithContext(ctx).Create(f).Error; err != nil {
		return nil, err
	}
	return f, nil
}

func (repo *FollowRepositoryDatabase) Delete(ctx context.Context, userID, authorID string) error {
	return config.DB.WithContext(ctx).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Delete(&follow.Follow{}).Error
}

func (repo *FollowRepositoryDatabase) Exists(ctx context.Context, userID, authorID string) (bool, error) {
	var count int64
	if err := config.DB.WithContext(ctx).Model(&follow.Follow{}).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (repo *FollowRepositoryDatabase) DeleteAllForUser(ctx context.Context, userID string) error {
	return config.DB.WithContext(ctx).
		Where("user_id = ? OR author_id = ?", userID, userID).
		Delete(&follow.Follow{}).Error
}
