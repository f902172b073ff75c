package feedapp

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"testing"
	"time"

	"plume/internal/adapters/memory"
	"plume/internal/config"
	followEntity "plume/internal/core/follow"
	groupEntity "plume/internal/core/group"
	postEntity "plume/internal/core/post"
	userEntity "plume/internal/core/user"
	feedPort "plume/internal/ports/feed"
	groupPort "plume/internal/ports/group"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	config.Logger = zap.NewNop()
	os.Exit(m.Run())
}

var baseTime = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newFeedService(store *memory.Store, cache *memory.PageCache) *FeedService {
	return NewFeedService(store.Posts(), store.Groups(), store.Users(), store.Follows(), cache, 20*time.Second)
}

func seedUser(t *testing.T, store *memory.Store, username string) *userEntity.User {
	t.Helper()
	u := &userEntity.User{
		ID:        uuid.Must(uuid.NewV4()),
		FirstName: "Test",
		LastName:  "User",
		Username:  username,
		Email:     username + "@example.com",
		Password:  "irrelevant",
	}
	_, err := store.Users().Create(context.Background(), u)
	require.NoError(t, err)
	return u
}

func seedGroup(t *testing.T, store *memory.Store, slug string) *groupEntity.Group {
	t.Helper()
	g := &groupEntity.Group{
		ID:    uuid.Must(uuid.NewV4()),
		Title: "Group " + slug,
		Slug:  slug,
	}
	_, err := store.Groups().Create(context.Background(), g)
	require.NoError(t, err)
	return g
}

func seedPost(t *testing.T, store *memory.Store, author *userEntity.User, g *groupEntity.Group, text string, at time.Time) *postEntity.Post {
	t.Helper()
	p := &postEntity.Post{
		ID:        uuid.Must(uuid.NewV4()),
		Text:      text,
		AuthorID:  author.ID,
		CreatedAt: at,
	}
	if g != nil {
		id := g.ID
		p.GroupID = &id
	}
	_, err := store.Posts().Create(context.Background(), p)
	require.NoError(t, err)
	return p
}

func TestGroupFeedContainsExactlyGroupPosts(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := newFeedService(store, memory.NewPageCache())

	alice := seedUser(t, store, "alice")
	golang := seedGroup(t, store, "golang")
	other := seedGroup(t, store, "cooking")

	inGroup1 := seedPost(t, store, alice, golang, "first", baseTime)
	inGroup2 := seedPost(t, store, alice, golang, "second", baseTime.Add(time.Hour))
	seedPost(t, store, alice, other, "soup", baseTime.Add(2*time.Hour))
	seedPost(t, store, alice, nil, "no group", baseTime.Add(3*time.Hour))

	page, err := svc.Group(ctx, "golang", 1)
	require.NoError(t, err)
	require.Equal(t, 2, page.Total)
	require.Equal(t, inGroup2.ID.String(), page.Posts[0].ID)
	require.Equal(t, inGroup1.ID.String(), page.Posts[1].ID)

	_, err = svc.Group(ctx, "nope", 1)
	require.ErrorIs(t, err, groupPort.ErrNotFound)
}

func TestGroupFeedReflectsReassignmentImmediately(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := newFeedService(store, memory.NewPageCache())

	alice := seedUser(t, store, "alice")
	golang := seedGroup(t, store, "golang")
	p := seedPost(t, store, alice, golang, "movable", baseTime)

	page, err := svc.Group(ctx, "golang", 1)
	require.NoError(t, err)
	require.Equal(t, 1, page.Total)

	p.GroupID = nil
	_, err = store.Posts().Update(ctx, p)
	require.NoError(t, err)

	page, err = svc.Group(ctx, "golang", 1)
	require.NoError(t, err)
	require.Equal(t, 0, page.Total)
}

func TestProfileFollowingFlag(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := newFeedService(store, memory.NewPageCache())

	author := seedUser(t, store, "author")
	viewer := seedUser(t, store, "viewer")

	// Anonymous viewers never follow.
	page, err := svc.Profile(ctx, "author", "", 1)
	require.NoError(t, err)
	require.False(t, page.Following)
	require.Equal(t, "author", page.Author.Username)

	page, err = svc.Profile(ctx, "author", viewer.ID.String(), 1)
	require.NoError(t, err)
	require.False(t, page.Following)

	_, err = store.Follows().Create(ctx, &followEntity.Follow{
		ID:       uuid.Must(uuid.NewV4()),
		UserID:   viewer.ID,
		AuthorID: author.ID,
	})
	require.NoError(t, err)

	page, err = svc.Profile(ctx, "author", viewer.ID.String(), 1)
	require.NoError(t, err)
	require.True(t, page.Following)
}

func TestFollowingFeedOnlyFollowedAuthors(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := newFeedService(store, memory.NewPageCache())

	reader := seedUser(t, store, "reader")
	followed := seedUser(t, store, "followed")
	stranger := seedUser(t, store, "stranger")

	seedPost(t, store, followed, nil, "from followed", baseTime)
	seedPost(t, store, stranger, nil, "from stranger", baseTime.Add(time.Hour))

	_, err := store.Follows().Create(ctx, &followEntity.Follow{
		ID:       uuid.Must(uuid.NewV4()),
		UserID:   reader.ID,
		AuthorID: followed.ID,
	})
	require.NoError(t, err)

	page, err := svc.Following(ctx, reader.ID.String(), 1)
	require.NoError(t, err)
	require.Equal(t, 1, page.Total)
	require.Equal(t, "from followed", page.Posts[0].Text)
}

func TestProfileFeedPagination(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := newFeedService(store, memory.NewPageCache())

	author := seedUser(t, store, "prolific")
	for i := 0; i < 13; i++ {
		seedPost(t, store, author, nil, fmt.Sprintf("post %d", i), baseTime.Add(time.Duration(i)*time.Minute))
	}

	page1, err := svc.Profile(ctx, "prolific", "", 1)
	require.NoError(t, err)
	require.Len(t, page1.Posts, 10)
	require.Equal(t, 13, page1.Total)
	require.Equal(t, 2, page1.PageCount)
	require.Equal(t, "post 12", page1.Posts[0].Text)

	page2, err := svc.Profile(ctx, "prolific", "", 2)
	require.NoError(t, err)
	require.Len(t, page2.Posts, 3)

	clamped, err := svc.Profile(ctx, "prolific", "", 99)
	require.NoError(t, err)
	require.Equal(t, 2, clamped.Page)
	require.Equal(t, page2.Posts, clamped.Posts)
}

func TestIndexCacheServesStaleBodyUntilFlush(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := newFeedService(store, memory.NewPageCache())

	alice := seedUser(t, store, "alice")
	p := seedPost(t, store, alice, nil, "cached away", baseTime)

	body1, err := svc.Index(ctx, 1)
	require.NoError(t, err)
	require.Contains(t, string(body1), "cached away")

	// Deleting the post does not invalidate the cache: the next read
	// returns the identical stale body.
	require.NoError(t, store.Posts().Delete(ctx, p.ID.String()))

	body2, err := svc.Index(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, body1, body2)

	require.NoError(t, svc.FlushCache(ctx))

	body3, err := svc.Index(ctx, 1)
	require.NoError(t, err)
	require.NotContains(t, string(body3), "cached away")
}

func TestIndexCacheKeyIgnoresPageNumber(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	cache := memory.NewPageCache()
	svc := newFeedService(store, cache)

	alice := seedUser(t, store, "alice")
	for i := 0; i < 13; i++ {
		seedPost(t, store, alice, nil, fmt.Sprintf("post %d", i), baseTime.Add(time.Duration(i)*time.Minute))
	}

	body1, err := svc.Index(ctx, 1)
	require.NoError(t, err)

	// Page 2 inside the TTL window gets page 1's cached body back.
	body2, err := svc.Index(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, body1, body2)

	var page feedPort.FeedPage
	require.NoError(t, json.Unmarshal(body2, &page))
	require.Equal(t, 1, page.Page)
	require.Len(t, page.Posts, 10)
}

func TestIndexCacheExpiresAfterTTL(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	cache := memory.NewPageCache()
	current := baseTime
	cache.Now = func() time.Time { return current }
	svc := newFeedService(store, cache)

	alice := seedUser(t, store, "alice")
	p := seedPost(t, store, alice, nil, "short lived", baseTime)

	body1, err := svc.Index(ctx, 1)
	require.NoError(t, err)
	require.Contains(t, string(body1), "short lived")

	require.NoError(t, store.Posts().Delete(ctx, p.ID.String()))
	current = current.Add(21 * time.Second)

	body2, err := svc.Index(ctx, 1)
	require.NoError(t, err)
	require.NotContains(t, string(body2), "short lived")
}
