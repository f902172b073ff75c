package follow

import (
	"context"

	"plume/internal/core/follow"
)

// FollowRepository is the port for storing and retrieving follow
// relations. Delete and DeleteAllForUser are no-ops when nothing
// matches.
type FollowRepository interface {
	Create(ctx context.Context, f *follow.Follow) (*follow.Follow, error)
	Delete(ctx context.Context, userID, authorID string) error
	Exists(ctx context.Context, userID, authorID string) (bool, error)
	DeleteAllForUser(ctx context.Context, userID string) error
}
