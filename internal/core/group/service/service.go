package groupapp

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	groupEntity "plume/internal/core/group"
	groupPort "plume/internal/ports/group"
	postPort "plume/internal/ports/post"

	"github.com/gofrs/uuid"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// GroupService manages groups. Groups are never renamed; deletion
// detaches their posts instead of removing them.
type GroupService struct {
	GroupRepository groupPort.GroupRepository
	PostRepository  postPort.PostRepository
}

func NewGroupService(groupRepo groupPort.GroupRepository, postRepo postPort.PostRepository) *GroupService {
	return &GroupService{
		GroupRepository: groupRepo,
		PostRepository:  postRepo,
	}
}

func (s *GroupService) CreateGroup(ctx context.Context, title, slug, description string) (*groupPort.GroupDTO, error) {
	if !slugPattern.MatchString(slug) {
		return nil, groupPort.ErrInvalidSlug
	}

	existing, err := s.GroupRepository.FindByTitleOrSlug(ctx, title, slug)
	if err == nil && existing != nil {
		return nil, groupPort.ErrTaken
	}
	if err != nil && !errors.Is(err, groupPort.ErrNotFound) {
		return nil, err
	}

	g := &groupEntity.Group{
		ID:          uuid.Must(uuid.NewV4()),
		Title:       title,
		Slug:        slug,
		Description: description,
	}

	created, err := s.GroupRepository.Create(ctx, g)
	if err != nil {
		return nil, err
	}
	return groupPort.ToDTO(created), nil
}

func (s *GroupService) ListGroups(ctx context.Context) ([]*groupPort.GroupDTO, error) {
	groups, err := s.GroupRepository.All(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]*groupPort.GroupDTO, 0, len(groups))
	for _, g := range groups {
		dtos = append(dtos, groupPort.ToDTO(g))
	}
	return dtos, nil
}

// DeleteGroup removes the group and sets the group of its posts to
// nil; the posts themselves survive.
func (s *GroupService) DeleteGroup(ctx context.Context, slug string) error {
	g, err := s.GroupRepository.FindBySlug(ctx, slug)
	if err != nil {
		return err
	}
	if err := s.PostRepository.ClearGroup(ctx, g.ID.String()); err != nil {
		return fmt.Errorf("could not detach posts from group %s: %w", slug, err)
	}
	return s.GroupRepository.Delete(ctx, g.ID.String())
}
