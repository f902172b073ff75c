package feedapp

import (
	"context"
	"encoding/json"
	"time"

	"plume/internal/config"
	postEntity "plume/internal/core/post"
	"plume/internal/pagination"
	feedPort "plume/internal/ports/feed"
	followPort "plume/internal/ports/follow"
	groupPort "plume/internal/ports/group"
	postPort "plume/internal/ports/post"
	userPort "plume/internal/ports/user"

	"go.uber.org/zap"
)

// FeedService composes the four post listings: index, group, profile
// and following. Group membership and follow relations are read fresh
// on every request; only the index response body is cached.
type FeedService struct {
	PostRepository   postPort.PostRepository
	GroupRepository  groupPort.GroupRepository
	UserRepository   userPort.UserRepository
	FollowRepository followPort.FollowRepository
	Cache            feedPort.PageCache
	CacheTTL         time.Duration
}

func NewFeedService(
	postRepo postPort.PostRepository,
	groupRepo groupPort.GroupRepository,
	userRepo userPort.UserRepository,
	followRepo followPort.FollowRepository,
	cache feedPort.PageCache,
	cacheTTL time.Duration,
) *FeedService {
	return &FeedService{
		PostRepository:   postRepo,
		GroupRepository:  groupRepo,
		UserRepository:   userRepo,
		FollowRepository: followRepo,
		Cache:            cache,
		CacheTTL:         cacheTTL,
	}
}

// Index returns the serialized index feed page. The body is cached
// under one key for every page number, so within the TTL window each
// request gets the first cached body back regardless of the page asked
// for. The cache is refreshed only by expiry or an explicit flush,
// never by post mutations.
func (s *FeedService) Index(ctx context.Context, page int) ([]byte, error) {
	if body, ok, err := s.Cache.Get(ctx, feedPort.IndexPageKey); err != nil {
		config.Logger.Warn("index cache read failed", zap.Error(err))
	} else if ok {
		return body, nil
	}

	posts, err := s.PostRepository.All(ctx)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(s.page(posts, page))
	if err != nil {
		return nil, err
	}

	if err := s.Cache.Set(ctx, feedPort.IndexPageKey, body, s.CacheTTL); err != nil {
		config.Logger.Warn("index cache write failed", zap.Error(err))
	}
	return body, nil
}

func (s *FeedService) Group(ctx context.Context, slug string, page int) (*feedPort.FeedPage, error) {
	g, err := s.GroupRepository.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	posts, err := s.PostRepository.FindByGroupID(ctx, g.ID.String())
	if err != nil {
		return nil, err
	}
	return s.page(posts, page), nil
}

// Profile returns the author's posts plus whether viewerID follows
// them. An empty viewerID is an anonymous viewer and never follows.
func (s *FeedService) Profile(ctx context.Context, username, viewerID string, page int) (*feedPort.ProfilePage, error) {
	author, err := s.UserRepository.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	posts, err := s.PostRepository.FindByAuthorID(ctx, author.ID.String())
	if err != nil {
		return nil, err
	}

	following := false
	if viewerID != "" {
		following, err = s.FollowRepository.Exists(ctx, viewerID, author.ID.String())
		if err != nil {
			return nil, err
		}
	}

	return &feedPort.ProfilePage{
		FeedPage:  *s.page(posts, page),
		Author:    userPort.ToDTO(author),
		Following: following,
	}, nil
}

func (s *FeedService) Following(ctx context.Context, userID string, page int) (*feedPort.FeedPage, error) {
	posts, err := s.PostRepository.FindFollowedBy(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.page(posts, page), nil
}

func (s *FeedService) FlushCache(ctx context.Context) error {
	return s.Cache.Flush(ctx)
}

func (s *FeedService) page(posts []*postEntity.Post, page int) *feedPort.FeedPage {
	p := pagination.Paginate(posts, page, pagination.DefaultPageSize)
	return &feedPort.FeedPage{
		Posts:     postPort.ToDTOs(p.Items),
		Page:      p.Number,
		PageCount: p.PageCount,
		Total:     p.Total,
	}
}
