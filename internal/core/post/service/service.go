package postapp

import (
	"context"
	"fmt"

	commentEntity "plume/internal/core/comment"
	postEntity "plume/internal/core/post"
	userEntity "plume/internal/core/user"
	commentPort "plume/internal/ports/comment"
	groupPort "plume/internal/ports/group"
	postPort "plume/internal/ports/post"
	userPort "plume/internal/ports/user"

	"github.com/gofrs/uuid"
)

// PostService handles post creation, editing, deletion, the detail
// view and comments. Only the author may edit or delete a post; a
// non-author attempt returns ErrNotAuthor and changes nothing.
type PostService struct {
	PostRepository    postPort.PostRepository
	CommentRepository commentPort.CommentRepository
	GroupRepository   groupPort.GroupRepository
	UserRepository    userPort.UserRepository
}

func NewPostService(
	postRepo postPort.PostRepository,
	commentRepo commentPort.CommentRepository,
	groupRepo groupPort.GroupRepository,
	userRepo userPort.UserRepository,
) *PostService {
	return &PostService{
		PostRepository:    postRepo,
		CommentRepository: commentRepo,
		GroupRepository:   groupRepo,
		UserRepository:    userRepo,
	}
}

func (s *PostService) CreatePost(ctx context.Context, actorID string, in postPort.PostInput) (*postPort.PostDTO, error) {
	authorID, err := uuid.FromString(actorID)
	if err != nil {
		return nil, fmt.Errorf("invalid actor id: %w", err)
	}

	groupID, err := s.resolveGroup(ctx, in.GroupID)
	if err != nil {
		return nil, err
	}

	p := &postEntity.Post{
		ID:       uuid.Must(uuid.NewV4()),
		Text:     in.Text,
		AuthorID: authorID,
		GroupID:  groupID,
		Image:    in.Image,
	}

	created, err := s.PostRepository.Create(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	// Reload so the DTO carries the author and group relations.
	full, err := s.PostRepository.FindByID(ctx, created.ID.String())
	if err != nil {
		return nil, err
	}
	return postPort.ToDTO(full), nil
}

func (s *PostService) EditPost(ctx context.Context, actorID, postID string, in postPort.PostInput) (*postPort.PostDTO, error) {
	p, err := s.PostRepository.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if p.AuthorID.String() != actorID {
		return nil, &postPort.ErrNotAuthor{AuthorUsername: p.Author.Username}
	}

	groupID, err := s.resolveGroup(ctx, in.GroupID)
	if err != nil {
		return nil, err
	}

	p.Text = in.Text
	p.GroupID = groupID
	p.Image = in.Image
	// Drop the preloaded relations so the update writes the post row
	// only, never the author or group behind it.
	p.Author = userEntity.User{}
	p.Group = nil

	updated, err := s.PostRepository.Update(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	full, err := s.PostRepository.FindByID(ctx, updated.ID.String())
	if err != nil {
		return nil, err
	}
	return postPort.ToDTO(full), nil
}

// DeletePost removes the post and its comments. The comments go first;
// the schema declares no cascading foreign keys.
func (s *PostService) DeletePost(ctx context.Context, actorID, postID string) error {
	p, err := s.PostRepository.FindByID(ctx, postID)
	if err != nil {
		return err
	}
	if p.AuthorID.String() != actorID {
		return &postPort.ErrNotAuthor{AuthorUsername: p.Author.Username}
	}

	if err := s.CommentRepository.DeleteByPostID(ctx, postID); err != nil {
		return fmt.Errorf("could not delete comments: %w", err)
	}
	return s.PostRepository.Delete(ctx, postID)
}

func (s *PostService) GetPostDetail(ctx context.Context, postID string) (*postPort.PostDetailDTO, error) {
	p, err := s.PostRepository.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	comments, err := s.CommentRepository.FindByPostID(ctx, postID)
	if err != nil {
		return nil, err
	}

	count, err := s.PostRepository.CountByAuthorID(ctx, p.AuthorID.String())
	if err != nil {
		return nil, err
	}

	commentDTOs := make([]*commentPort.CommentDTO, 0, len(comments))
	for _, c := range comments {
		commentDTOs = append(commentDTOs, commentPort.ToDTO(c))
	}

	return &postPort.PostDetailDTO{
		Post:            postPort.ToDTO(p),
		Comments:        commentDTOs,
		AuthorPostCount: count,
	}, nil
}

func (s *PostService) AddComment(ctx context.Context, actorID, postID, text string) (*commentPort.CommentDTO, error) {
	p, err := s.PostRepository.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	authorID, err := uuid.FromString(actorID)
	if err != nil {
		return nil, fmt.Errorf("invalid actor id: %w", err)
	}

	c := &commentEntity.Comment{
		ID:       uuid.Must(uuid.NewV4()),
		PostID:   p.ID,
		AuthorID: authorID,
		Text:     text,
	}

	created, err := s.CommentRepository.Create(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	return commentPort.ToDTO(created), nil
}

// resolveGroup validates an optional group reference. A nil input
// means "no group".
func (s *PostService) resolveGroup(ctx context.Context, raw *string) (*uuid.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	g, err := s.GroupRepository.FindByID(ctx, *raw)
	if err != nil {
		return nil, err
	}
	id := g.ID
	return &id, nil
}
