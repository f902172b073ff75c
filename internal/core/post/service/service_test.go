package postapp

import (
	"context"
	"testing"
	"time"

	"plume/internal/adapters/memory"
	commentEntity "plume/internal/core/comment"
	groupEntity "plume/internal/core/group"
	postEntity "plume/internal/core/post"
	userEntity "plume/internal/core/user"
	groupPort "plume/internal/ports/group"
	postPort "plume/internal/ports/post"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newPostService(store *memory.Store) *PostService {
	return NewPostService(store.Posts(), store.Comments(), store.Groups(), store.Users())
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

func seedPost(t *testing.T, store *memory.Store, author *userEntity.User, text string, at time.Time) *postEntity.Post {
	t.Helper()
	p := &postEntity.Post{
		ID:        uuid.Must(uuid.NewV4()),
		Text:      text,
		AuthorID:  author.ID,
		CreatedAt: at,
	}
	_, err := store.Posts().Create(context.Background(), p)
	require.NoError(t, err)
	return p
}

func seedComment(t *testing.T, store *memory.Store, p *postEntity.Post, author *userEntity.User, text string, at time.Time) *commentEntity.Comment {
	t.Helper()
	c := &commentEntity.Comment{
		ID:        uuid.Must(uuid.NewV4()),
		PostID:    p.ID,
		AuthorID:  author.ID,
		Text:      text,
		CreatedAt: at,
	}
	_, err := store.Comments().Create(context.Background(), c)
	require.NoError(t, err)
	return c
}

func TestCreatePostWithGroup(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := newPostService(store)

	alice := seedUser(t, store, "alice")
	g := &groupEntity.Group{ID: uuid.Must(uuid.NewV4()), Title: "Go", Slug: "golang"}
	_, err := store.Groups().Create(ctx, g)
	require.NoError(t, err)

	groupID := g.ID.String()
	dto, err := svc.CreatePost(ctx, alice.ID.String(), postPort.PostInput{
		Text:    "hello world",
		GroupID: &groupID,
	})
	require.NoError(t, err)
	require.Equal(t, "hello world", dto.Text)
	require.Equal(t, "alice", dto.Author.Username)
	require.NotNil(t, dto.Group)
	require.Equal(t, "golang", dto.Group.Slug)
}

func TestCreatePostUnknownGroup(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := newPostService(store)

	alice := seedUser(t, store, "alice")
	bogus := uuid.Must(uuid.NewV4()).String()
	_, err := svc.CreatePost(ctx, alice.ID.String(), postPort.PostInput{Text: "x", GroupID: &bogus})
	require.ErrorIs(t, err, groupPort.ErrNotFound)
}

func TestEditPostAsNonAuthorIsSoftDenied(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := newPostService(store)

	alice := seedUser(t, store, "alice")
	mallory := seedUser(t, store, "mallory")
	p := seedPost(t, store, alice, "original text", baseTime)

	_, err := svc.EditPost(ctx, mallory.ID.String(), p.ID.String(), postPort.PostInput{Text: "hijacked"})

	var notAuthor *postPort.ErrNotAuthor
	require.ErrorAs(t, err, &notAuthor)
	require.Equal(t, "alice", notAuthor.AuthorUsername)

	// The post is untouched.
	stored, err := store.Posts().FindByID(ctx, p.ID.String())
	require.NoError(t, err)
	require.Equal(t, "original text", stored.Text)
}

func TestEditPostAsAuthor(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := newPostService(store)

	alice := seedUser(t, store, "alice")
	g := &groupEntity.Group{ID: uuid.Must(uuid.NewV4()), Title: "Go", Slug: "golang"}
	_, err := store.Groups().Create(ctx, g)
	require.NoError(t, err)

	p := seedPost(t, store, alice, "before", baseTime)

	groupID := g.ID.String()
	dto, err := svc.EditPost(ctx, alice.ID.String(), p.ID.String(), postPort.PostInput{
		Text:    "after",
		GroupID: &groupID,
	})
	require.NoError(t, err)
	require.Equal(t, "after", dto.Text)
	require.Equal(t, "golang", dto.Group.Slug)

	// Editing again without a group detaches the post from it.
	dto, err = svc.EditPost(ctx, alice.ID.String(), p.ID.String(), postPort.PostInput{Text: "after"})
	require.NoError(t, err)
	require.Nil(t, dto.Group)
}

// recordingPostStore captures the entity handed to Update.
type recordingPostStore struct {
	*memory.PostStore
	updated *postEntity.Post
}

func (r *recordingPostStore) Update(ctx context.Context, p *postEntity.Post) (*postEntity.Post, error) {
	r.updated = p
	return r.PostStore.Update(ctx, p)
}

func TestEditPostUpdatesPostRowOnly(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	posts := &recordingPostStore{PostStore: store.Posts()}
	svc := NewPostService(posts, store.Comments(), store.Groups(), store.Users())

	alice := seedUser(t, store, "alice")
	g := &groupEntity.Group{ID: uuid.Must(uuid.NewV4()), Title: "Go", Slug: "golang"}
	_, err := store.Groups().Create(ctx, g)
	require.NoError(t, err)

	groupID := g.ID.String()
	p := seedPost(t, store, alice, "before", baseTime)

	_, err = svc.EditPost(ctx, alice.ID.String(), p.ID.String(), postPort.PostInput{
		Text:    "after",
		GroupID: &groupID,
	})
	require.NoError(t, err)

	// The entity written back carries keys only, not the relations the
	// lookup preloaded, so the update cannot touch the users or groups
	// tables.
	require.NotNil(t, posts.updated)
	require.Equal(t, userEntity.User{}, posts.updated.Author)
	require.Nil(t, posts.updated.Group)
	require.Equal(t, alice.ID, posts.updated.AuthorID)
	require.NotNil(t, posts.updated.GroupID)
}

func TestDeletePostCascadesToComments(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := newPostService(store)

	alice := seedUser(t, store, "alice")
	bob := seedUser(t, store, "bob")
	p := seedPost(t, store, alice, "doomed", baseTime)
	seedComment(t, store, p, bob, "first", baseTime.Add(time.Minute))
	seedComment(t, store, p, bob, "second", baseTime.Add(2*time.Minute))

	require.NoError(t, svc.DeletePost(ctx, alice.ID.String(), p.ID.String()))

	_, err := store.Posts().FindByID(ctx, p.ID.String())
	require.ErrorIs(t, err, postPort.ErrNotFound)

	comments, err := store.Comments().FindByPostID(ctx, p.ID.String())
	require.NoError(t, err)
	require.Empty(t, comments)
}

func TestDeletePostAsNonAuthorIsSoftDenied(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := newPostService(store)

	alice := seedUser(t, store, "alice")
	mallory := seedUser(t, store, "mallory")
	p := seedPost(t, store, alice, "still here", baseTime)

	err := svc.DeletePost(ctx, mallory.ID.String(), p.ID.String())
	var notAuthor *postPort.ErrNotAuthor
	require.ErrorAs(t, err, &notAuthor)
	require.Equal(t, "alice", notAuthor.AuthorUsername)

	_, err = store.Posts().FindByID(ctx, p.ID.String())
	require.NoError(t, err)
}

func TestGetPostDetail(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := newPostService(store)

	alice := seedUser(t, store, "alice")
	bob := seedUser(t, store, "bob")
	p := seedPost(t, store, alice, "discussed", baseTime)
	seedPost(t, store, alice, "another", baseTime.Add(time.Minute))
	seedComment(t, store, p, bob, "late", baseTime.Add(2*time.Hour))
	seedComment(t, store, p, bob, "early", baseTime.Add(time.Hour))

	detail, err := svc.GetPostDetail(ctx, p.ID.String())
	require.NoError(t, err)
	require.Equal(t, "discussed", detail.Post.Text)
	require.Equal(t, int64(2), detail.AuthorPostCount)

	// Comments come back oldest first.
	require.Len(t, detail.Comments, 2)
	require.Equal(t, "early", detail.Comments[0].Text)
	require.Equal(t, "late", detail.Comments[1].Text)
	require.Equal(t, "bob", detail.Comments[0].Author.Username)
}

func TestAddCommentToUnknownPost(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := newPostService(store)

	bob := seedUser(t, store, "bob")
	_, err := svc.AddComment(ctx, bob.ID.String(), uuid.Must(uuid.NewV4()).String(), "into the void")
	require.ErrorIs(t, err, postPort.ErrNotFound)
}

func TestAddComment(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := newPostService(store)

	alice := seedUser(t, store, "alice")
	bob := seedUser(t, store, "bob")
	p := seedPost(t, store, alice, "open for comments", baseTime)

	dto, err := svc.AddComment(ctx, bob.ID.String(), p.ID.String(), "nice one")
	require.NoError(t, err)
	require.Equal(t, "nice one", dto.Text)
	require.Equal(t, "bob", dto.Author.Username)

	comments, err := store.Comments().FindByPostID(ctx, p.ID.String())
	require.NoError(t, err)
	require.Len(t, comments, 1)
}
