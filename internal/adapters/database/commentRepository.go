package database

import (
	"context"

	"plume/internal/config"
	"plume/internal/core/comment"
)

// CommentRepositoryDatabase implements CommentRepository over gorm.
type CommentRepositoryDatabase struct{}

func NewCommentRepositoryDatabase() *CommentRepositoryDatabase {
	return &CommentRepositoryDatabase{}
}

func (repo *CommentRepositoryDatabase) Create(ctx context.Context, c *comment.Comment) (*comment.Comment, error) {
	if err := config.DB.WithContext(ctx).Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func (repo *CommentRepositoryDatabase) FindByPostID(ctx context.Context, postID string) ([]*comment.Comment, error) {
	var comments []*comment.Comment
	if err := config.DB.WithContext(ctx).
		Preload("Author").
		Where("post_id = ?", postID).
		Order("created_at ASC, id ASC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (repo *CommentRepositoryDatabase) DeleteByPostID(ctx context.Context, postID string) error {
	return config.DB.WithContext(ctx).Where("post_id = ?", postID).Delete(&comment.Comment{}).Error
}

func (repo *CommentRepositoryDatabase) DeleteByAuthorID(ctx context.Context, authorID string) error {
	return config.DB.WithContext(ctx).Where("author_id = ?", authorID).Delete(&comment.Comment{}).Error
}
