package database

import (
	"context"

	"plume/internal/config"
	"plume/internal/core/post"
	postPort "plume/internal/ports/post"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// feedOrder is the listing order for every feed: newest first, ties
// broken by id so the order stays stable for equal timestamps.
const feedOrder = "created_at DESC, id DESC"

// PostRepositoryDatabase implements PostRepository over gorm.
type PostRepositoryDatabase struct{}

func NewPostRepositoryDatabase() *PostRepositoryDatabase {
	return &PostRepositoryDatabase{}
}

func (repo *PostRepositoryDatabase) Create(ctx context.Context, p *post.Post) (*post.Post, error) {
	if err := config.DB.WithContext(ctx).Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (repo *PostRepositoryDatabase) Update(ctx context.Context, p *post.Post) (*post.Post, error) {
	if err := config.DB.WithContext(ctx).Omit(clause.Associations).Save(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (repo *PostRepositoryDatabase) FindByID(ctx context.Context, id string) (*post.Post, error) {
	var p post.Post
	if err := repo.listing(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		return nil, translateNotFound(err, postPort.ErrNotFound)
	}
	return &p, nil
}

func (repo *PostRepositoryDatabase) All(ctx context.Context) ([]*post.Post, error) {
	var posts []*post.Post
	if err := repo.listing(ctx).Order(feedOrder).Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (repo *PostRepositoryDatabase) FindByGroupID(ctx context.Context, groupID string) ([]*post.Post, error) {
	var posts []*post.Post
	if err := repo.listing(ctx).Where("group_id = ?", groupID).Order(feedOrder).Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (repo *PostRepositoryDatabase) FindByAuthorID(ctx context.Context, authorID string) ([]*post.Post, error) {
	var posts []*post.Post
	if err := repo.listing(ctx).Where("author_id = ?", authorID).Order(feedOrder).Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (repo *PostRepositoryDatabase) FindFollowedBy(ctx context.Context, userID string) ([]*post.Post, error) {
	var posts []*post.Post
	if err := repo.listing(ctx).
		Joins("JOIN follows ON follows.author_id = posts.author_id AND follows.user_id = ?", userID).
		Order(feedOrder).
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (repo *PostRepositoryDatabase) CountByAuthorID(ctx context.Context, authorID string) (int64, error) {
	var count int64
	if err := config.DB.WithContext(ctx).Model(&post.Post{}).Where("author_id = ?", authorID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *PostRepositoryDatabase) ClearGroup(ctx context.Context, groupID string) error {
	return config.DB.WithContext(ctx).Model(&post.Post{}).
		Where("group_id = ?", groupID).
		Update("group_id", nil).Error
}

func (repo *PostRepositoryDatabase) Delete(ctx context.Context, id string) error {
	return config.DB.WithContext(ctx).Where("id = ?", id).Delete(&post.Post{}).Error
}

func (repo *PostRepositoryDatabase) DeleteByAuthorID(ctx context.Context, authorID string) error {
	return config.DB.WithContext(ctx).Where("author_id = ?", authorID).Delete(&post.Post{}).Error
}

func (repo *PostRepositoryDatabase) listing(ctx context.Context) *gorm.DB {
	return config.DB.WithContext(ctx).Preload("Author").Preload("Group")
}
