package group

import (
	"context"
	"errors"

	"plume/internal/core/group"
)

var (
	ErrNotFound    = errors.New("group not found")
	ErrTaken       = errors.New("group title or slug already taken")
	ErrInvalidSlug = errors.New("slug may only contain lowercase letters, digits, hyphens and underscores")
)

// GroupRepository is the port for storing and retrieving groups.
type GroupRepository interface {
	Create(ctx context.Context, g *group.Group) (*group.Group, error)
	FindByID(ctx context.Context, id string) (*group.Group, error)
	FindBySlug(ctx context.Context, slug string) (*group.Group, error)
	FindByTitleOrSlug(ctx context.Context, title, slug string) (*group.Group, error)
	All(ctx context.Context) ([]*group.Group, error)
	Delete(ctx context.Context, id string) error
}

type GroupDTO struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

func ToDTO(g *group.Group) *GroupDTO {
	return &GroupDTO{
		ID:          g.ID.String(),
		Title:       g.Title,
		Slug:        g.Slug,
		Description: g.Description,
	}
}
