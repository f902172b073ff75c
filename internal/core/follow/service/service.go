package followapp

import (
	"context"

	"plume/internal/config"
	followEntity "plume/internal/core/follow"
	followPort "plume/internal/ports/follow"
	userPort "plume/internal/ports/user"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"
)

// FollowService manages follow relations, addressed by the target's
// username. Duplicate follows and self-follows are absorbed silently;
// unfollowing an author not followed is a no-op.
type FollowService struct {
	FollowRepository followPort.FollowRepository
	UserRepository   userPort.UserRepository
}

func NewFollowService(followRepo followPort.FollowRepository, userRepo userPort.UserRepository) *FollowService {
	return &FollowService{
		FollowRepository: followRepo,
		UserRepository:   userRepo,
	}
}

func (s *FollowService) Follow(ctx context.Context, actorID, targetUsername string) error {
	author, err := s.UserRepository.FindByUsername(ctx, targetUsername)
	if err != nil {
		return err
	}

	exists, err := s.FollowRepository.Exists(ctx, actorID, author.ID.String())
	if err != nil {
		return err
	}
	// Both conditions are checked together: an existing relation and a
	// self-follow both leave the store untouched.
	if exists || author.ID.String() == actorID {
		config.Logger.Debug("follow absorbed as no-op",
			zap.String("userID", actorID),
			zap.String("author", targetUsername))
		return nil
	}

	f := &followEntity.Follow{
		ID:       uuid.Must(uuid.NewV4()),
		UserID:   uuid.FromStringOrNil(actorID),
		AuthorID: author.ID,
	}
	_, err = s.FollowRepository.Create(ctx, f)
	return err
}

func (s *FollowService) Unfollow(ctx context.Context, actorID, targetUsername string) error {
	author, err := s.UserRepository.FindByUsername(ctx, targetUsername)
	if err != nil {
		return err
	}
	return s.FollowRepository.Delete(ctx, actorID, author.ID.String())
}
