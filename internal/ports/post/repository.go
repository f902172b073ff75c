package post

import (
	"context"
	"errors"
	"time"

	"plume/internal/core/post"
	commentPort "plume/internal/ports/comment"
	groupPort "plume/internal/ports/group"
	userPort "plume/internal/ports/user"
)

var ErrNotFound = errors.New("post not found")

// ErrNotAuthor is returned when the acting user tries to modify a post
// they do not own. It carries the actual author's username so the
// caller can redirect there instead of reporting an error.
type ErrNotAuthor struct {
	AuthorUsername string
}

func (e *ErrNotAuthor) Error() string {
	return "post belongs to " + e.AuthorUsername
}

// PostRepository is the port for storing and retrieving posts. Every
// listing method returns posts ordered by created_at descending, ties
// broken by id descending. Find methods load the author and group.
type PostRepository interface {
	Create(ctx context.Context, p *post.Post) (*post.Post, error)
	Update(ctx context.Context, p *post.Post) (*post.Post, error)
	FindByID(ctx context.Context, id string) (*post.Post, error)
	All(ctx context.Context) ([]*post.Post, error)
	FindByGroupID(ctx context.Context, groupID string) ([]*post.Post, error)
	FindByAuthorID(ctx context.Context, authorID string) ([]*post.Post, error)
	FindFollowedBy(ctx context.Context, userID string) ([]*post.Post, error)
	CountByAuthorID(ctx context.Context, authorID string) (int64, error)
	ClearGroup(ctx context.Context, groupID string) error
	Delete(ctx context.Context, id string) error
	DeleteByAuthorID(ctx context.Context, authorID string) error
}

// PostInput carries the user-editable post fields. A nil GroupID
// detaches the post from any group.
type PostInput struct {
	Text    string
	GroupID *string
	Image   string
}

type PostDTO struct {
	ID        string              `json:"id"`
	Text      string              `json:"text"`
	Image     string              `json:"image,omitempty"`
	Author    *userPort.UserDTO   `json:"author"`
	Group     *groupPort.GroupDTO `json:"group,omitempty"`
	CreatedAt string              `json:"created_at"`
}

type PostDetailDTO struct {
	Post            *PostDTO                  `json:"post"`
	Comments        []*commentPort.CommentDTO `json:"comments"`
	AuthorPostCount int64                     `json:"authorPostCount"`
}

func ToDTO(p *post.Post) *PostDTO {
	dto := &PostDTO{
		ID:        p.ID.String(),
		Text:      p.Text,
		Image:     p.Image,
		Author:    userPort.ToDTO(&p.Author),
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
	}
	if p.Group != nil {
		dto.Group = groupPort.ToDTO(p.Group)
	}
	return dto
}

func ToDTOs(posts []*post.Post) []*PostDTO {
	dtos := make([]*PostDTO, 0, len(posts))
	for _, p := range posts {
		dtos = append(dtos, ToDTO(p))
	}
	return dtos
}
