package database

import (
	"context"

	"plume/internal/config"
	"plume/internal/core/group"
	groupPort "plume/internal/ports/group"
)

// GroupRepositoryDatabase implements GroupRepository over gorm.
type GroupRepositoryDatabase struct{}

func NewGroupRepositoryDatabase() *GroupRepositoryDatabase {
	return &GroupRepositoryDatabase{}
}

func (repo *GroupRepositoryDatabase) Create(ctx context.Context, g *group.Group) (*group.Group, error) {
	if err := config.DB.WithContext(ctx).Create(g).Error; err != nil {
		return nil, err
	}
	return g, nil
}

func (repo *GroupRepositoryDatabase) FindByID(ctx context.Context, id string) (*group.Group, error) {
	var g group.Group
	if err := config.DB.WithContext(ctx).Where("id = ?", id).First(&g).Error; err != nil {
		return nil, translateNotFound(err, groupPort.ErrNotFound)
	}
	return &g, nil
}

func (repo *GroupRepositoryDatabase) FindBySlug(ctx context.Context, slug string) (*group.Group, error) {
	var g group.Group
	if err := config.DB.WithContext(ctx).Where("slug = ?", slug).First(&g).Error; err != nil {
		return nil, translateNotFound(err, groupPort.ErrNotFound)
	}
	return &g, nil
}

func (repo *GroupRepositoryDatabase) FindByTitleOrSlug(ctx context.Context, title, slug string) (*group.Group, error) {
	var g group.Group
	if err := config.DB.WithContext(ctx).Where("title = ? OR slug = ?", title, slug).First(&g).Error; err != nil {
		return nil, translateNotFound(err, groupPort.ErrNotFound)
	}
	return &g, nil
}

func (repo *GroupRepositoryDatabase) All(ctx context.Context) ([]*group.Group, error) {
	var groups []*group.Group
	if err := config.DB.WithContext(ctx).Order("title").Find(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}

func (repo *GroupRepositoryDatabase) Delete(ctx context.Context, id string) error {
	return config.DB.WithContext(ctx).Where("id = ?", id).Delete(&group.Group{}).Error
}
