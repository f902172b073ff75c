package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"plume/internal/core/comment"
	"plume/internal/core/follow"
	"plume/internal/core/group"
	"plume/internal/core/post"
	"plume/internal/core/user"
	groupPort "plume/internal/ports/group"
	postPort "plume/internal/ports/post"
	userPort "plume/internal/ports/user"
)

// Store is an in-memory stand-in for the database adapters, used by
// the service tests. A single Store holds every entity; the per-port
// adapters returned by Users(), Posts() and friends share its state,
// mirroring how the gorm adapters share one database.
type Store struct {
	mu       sync.Mutex
	users    []*user.User
	groups   []*group.Group
	posts    []*post.Post
	comments []*comment.Comment
	follows  []*follow.Follow
}

func NewStore() *Store { return &Store{} }

func (s *Store) Users() *UserStore       { return &UserStore{s: s} }
func (s *Store) Groups() *GroupStore     { return &GroupStore{s: s} }
func (s *Store) Posts() *PostStore       { return &PostStore{s: s} }
func (s *Store) Comments() *CommentStore { return &CommentStore{s: s} }
func (s *Store) Follows() *FollowStore   { return &FollowStore{s: s} }

// hydratePost returns a copy of p with its author and group resolved,
// the way the gorm adapters preload relations.
func (s *Store) hydratePost(p *post.Post) *post.Post {
	cp := *p
	for _, u := range s.users {
		if u.ID == p.AuthorID {
			cp.Author = *u
			break
		}
	}
	cp.Group = nil
	if p.GroupID != nil {
		for _, g := range s.groups {
			if g.ID == *p.GroupID {
				gc := *g
				cp.Group = &gc
				break
			}
		}
	}
	return &cp
}

// sortPostsNewestFirst applies the feed order: created_at descending,
// ties broken by id descending.
func sortPostsNewestFirst(posts []*post.Post) {
	sort.Slice(posts, func(i, j int) bool {
		if !posts[i].CreatedAt.Equal(posts[j].CreatedAt) {
			return posts[i].CreatedAt.After(posts[j].CreatedAt)
		}
		return posts[i].ID.String() > posts[j].ID.String()
	})
}

type UserStore struct{ s *Store }

func (st *UserStore) Create(ctx context.Context, u *user.User) (*user.User, error) {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	st.s.users = append(st.s.users, u)
	return u, nil
}

func (st *UserStore) FindByID(ctx context.Context, id string) (*user.User, error) {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	for _, u := range st.s.users {
		if u.ID.String() == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, userPort.ErrNotFound
}

func (st *UserStore) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	for _, u := range st.s.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, userPort.ErrNotFound
}

func (st *UserStore) FindByUsernameOrEmail(ctx context.Context, username, email string) (*user.User, error) {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	for _, u := range st.s.users {
		if u.Username == username || u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, userPort.ErrNotFound
}

func (st *UserStore) Delete(ctx context.Context, id string) error {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	kept := st.s.users[:0]
	for _, u := range st.s.users {
		if u.ID.String() != id {
			kept = append(kept, u)
		}
	}
	st.s.users = kept
	return nil
}

type GroupStore struct{ s *Store }

func (st *GroupStore) Create(ctx context.Context, g *group.Group) (*group.Group, error) {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	if g.CreatedAt.IsZero() {
		g.CreatedAt = time.Now()
	}
	st.s.groups = append(st.s.groups, g)
	return g, nil
}

func (st *GroupStore) FindByID(ctx context.Context, id string) (*group.Group, error) {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	for _, g := range st.s.groups {
		if g.ID.String() == id {
			cp := *g
			return &cp, nil
		}
	}
	return nil, groupPort.ErrNotFound
}

func (st *GroupStore) FindBySlug(ctx context.Context, slug string) (*group.Group, error) {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	for _, g := range st.s.groups {
		if g.Slug == slug {
			cp := *g
			return &cp, nil
		}
	}
	return nil, groupPort.ErrNotFound
}

func (st *GroupStore) FindByTitleOrSlug(ctx context.Context, title, slug string) (*group.Group, error) {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	for _, g := range st.s.groups {
		if g.Title == title || g.Slug == slug {
			cp := *g
			return &cp, nil
		}
	}
	return nil, groupPort.ErrNotFound
}

func (st *GroupStore) All(ctx context.Context) ([]*group.Group, error) {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	groups := make([]*group.Group, 0, len(st.s.groups))
	for _, g := range st.s.groups {
		cp := *g
		groups = append(groups, &cp)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Title < groups[j].Title })
	return groups, nil
}

func (st *GroupStore) Delete(ctx context.Context, id string) error {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	kept := st.s.groups[:0]
	for _, g := range st.s.groups {
		if g.ID.String() != id {
			kept = append(kept, g)
		}
	}
	st.s.groups = kept
	return nil
}

type PostStore struct{ s *Store }

func (st *PostStore) Create(ctx context.Context, p *post.Post) (*post.Post, error) {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	st.s.posts = append(st.s.posts, p)
	return p, nil
}

func (st *PostStore) Update(ctx context.Context, p *post.Post) (*post.Post, error) {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	for i, existing := range st.s.posts {
		if existing.ID == p.ID {
			cp := *p
			st.s.posts[i] = &cp
			return p, nil
		}
	}
	return nil, postPort.ErrNotFound
}

func (st *PostStore) FindByID(ctx context.Context, id string) (*post.Post, error) {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	for _, p := range st.s.posts {
		if p.ID.String() == id {
			return st.s.hydratePost(p), nil
		}
	}
	return nil, postPort.ErrNotFound
}

func (st *PostStore) All(ctx context.Context) ([]*post.Post, error) {
	return st.list(func(*post.Post) bool { return true })
}

func (st *PostStore) FindByGroupID(ctx context.Context, groupID string) ([]*post.Post, error) {
	return st.list(func(p *post.Post) bool {
		return p.GroupID != nil && p.GroupID.String() == groupID
	})
}

func (st *PostStore) FindByAuthorID(ctx context.Context, authorID string) ([]*post.Post, error) {
	return st.list(func(p *post.Post) bool { return p.AuthorID.String() == authorID })
}

func (st *PostStore) FindFollowedBy(ctx context.Context, userID string) ([]*post.Post, error) {
	st.s.mu.Lock()
	followed := make(map[string]bool)
	for _, f := range st.s.follows {
		if f.UserID.String() == userID {
			followed[f.AuthorID.String()] = true
		}
	}
	st.s.mu.Unlock()
	return st.list(func(p *post.Post) bool { return followed[p.AuthorID.String()] })
}

func (st *PostStore) CountByAuthorID(ctx context.Context, authorID string) (int64, error) {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	var count int64
	for _, p := range st.s.posts {
		if p.AuthorID.String() == authorID {
			count++
		}
	}
	return count, nil
}

func (st *PostStore) ClearGroup(ctx context.Context, groupID string) error {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	for _, p := range st.s.posts {
		if p.GroupID != nil && p.GroupID.String() == groupID {
			p.GroupID = nil
			p.Group = nil
		}
	}
	return nil
}

func (st *PostStore) Delete(ctx context.Context, id string) error {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	kept := st.s.posts[:0]
	for _, p := range st.s.posts {
		if p.ID.String() != id {
			kept = append(kept, p)
		}
	}
	st.s.posts = kept
	return nil
}

func (st *PostStore) DeleteByAuthorID(ctx context.Context, authorID string) error {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	kept := st.s.posts[:0]
	for _, p := range st.s.posts {
		if p.AuthorID.String() != authorID {
			kept = append(kept, p)
		}
	}
	st.s.posts = kept
	return nil
}

func (st *PostStore) list(match func(*post.Post) bool) ([]*post.Post, error) {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	var posts []*post.Post
	for _, p := range st.s.posts {
		if match(p) {
			posts = append(posts, st.s.hydratePost(p))
		}
	}
	sortPostsNewestFirst(posts)
	return posts, nil
}

type CommentStore struct{ s *Store }

func (st *CommentStore) Create(ctx context.Context, c *comment.Comment) (*comment.Comment, error) {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	for _, u := range st.s.users {
		if u.ID == c.AuthorID {
			c.Author = *u
			break
		}
	}
	st.s.comments = append(st.s.comments, c)
	return c, nil
}

func (st *CommentStore) FindByPostID(ctx context.Context, postID string) ([]*comment.Comment, error) {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	var comments []*comment.Comment
	for _, c := range st.s.comments {
		if c.PostID.String() == postID {
			cp := *c
			for _, u := range st.s.users {
				if u.ID == c.AuthorID {
					cp.Author = *u
					break
				}
			}
			comments = append(comments, &cp)
		}
	}
	sort.Slice(comments, func(i, j int) bool {
		if !comments[i].CreatedAt.Equal(comments[j].CreatedAt) {
			return comments[i].CreatedAt.Before(comments[j].CreatedAt)
		}
		return comments[i].ID.String() < comments[j].ID.String()
	})
	return comments, nil
}

func (st *CommentStore) DeleteByPostID(ctx context.Context, postID string) error {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	kept := st.s.comments[:0]
	for _, c := range st.s.comments {
		if c.PostID.String() != postID {
			kept = append(kept, c)
		}
	}
	st.s.comments = kept
	return nil
}

func (st *CommentStore) DeleteByAuthorID(ctx context.Context, authorID string) error {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	kept := st.s.comments[:0]
	for _, c := range st.s.comments {
		if c.AuthorID.String() != authorID {
			kept = append(kept, c)
		}
	}
	st.s.comments = kept
	return nil
}

type FollowStore struct{ s *Store }

func (st *FollowStore) Create(ctx context.Context, f *follow.Follow) (*follow.Follow, error) {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	if f.CreatedAt.IsZero() {
		f.CreatedAt = time.Now()
	}
	st.s.follows = append(st.s.follows, f)
	return f, nil
}

func (st *FollowStore) Delete(ctx context.Context, userID, authorID string) error {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	kept := st.s.follows[:0]
	for _, f := range st.s.follows {
		if f.UserID.String() != userID || f.AuthorID.String() != authorID {
			kept = append(kept, f)
		}
	}
	st.s.follows = kept
	return nil
}

func (st *FollowStore) Exists(ctx context.Context, userID, authorID string) (bool, error) {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	for _, f := range st.s.follows {
		if f.UserID.String() == userID && f.AuthorID.String() == authorID {
			return true, nil
		}
	}
	return false, nil
}

func (st *FollowStore) DeleteAllForUser(ctx context.Context, userID string) error {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	kept := st.s.follows[:0]
	for _, f := range st.s.follows {
		if f.UserID.String() != userID && f.AuthorID.String() != userID {
			kept = append(kept, f)
		}
	}
	st.s.follows = kept
	return nil
}

// Count reports how many follow rows exist for a given pair, letting
// tests assert dedupe behavior directly.
func (st *FollowStore) Count(userID, authorID string) int {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	count := 0
	for _, f := range st.s.follows {
		if f.UserID.String() == userID && f.AuthorID.String() == authorID {
			count++
		}
	}
	return count
}
