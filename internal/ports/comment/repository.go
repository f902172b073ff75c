package comment

import (
	"context"
	"time"

	"plume/internal/core/comment"
	userPort "plume/internal/ports/user"
)

// CommentRepository is the port for storing and retrieving comments.
// FindByPostID returns comments oldest first.
type CommentRepository interface {
	Create(ctx context.Context, c *comment.Comment) (*comment.Comment, error)
	FindByPostID(ctx context.Context, postID string) ([]*comment.Comment, error)
	DeleteByPostID(ctx context.Context, postID string) error
	DeleteByAuthorID(ctx context.Context, authorID string) error
}

type CommentDTO struct {
	ID        string            `json:"id"`
	Text      string            `json:"text"`
	Author    *userPort.UserDTO `json:"author"`
	CreatedAt string            `json:"created_at"`
}

func ToDTO(c *comment.Comment) *CommentDTO {
	return &CommentDTO{
		ID:        c.ID.String(),
		Text:      c.Text,
		Author:    userPort.ToDTO(&c.Author),
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}
