package userapp

import (
	"context"
	"errors"
	"fmt"
	"time"

	userEntity "plume/internal/core/user"
	commentPort "plume/internal/ports/comment"
	followPort "plume/internal/ports/follow"
	postPort "plume/internal/ports/post"
	userPort "plume/internal/ports/user"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofrs/uuid"
	"golang.org/x/crypto/bcrypt"
)

const tokenLifetime = 24 * time.Hour

// AuthClaims are the JWT claims issued at login. Subject carries the
// user id; Username is duplicated into the token so handlers can build
// profile redirects without a user lookup.
type AuthClaims struct {
	Username string `json:"username"`
	jwt.StandardClaims
}

// UserService handles registration, login and account deletion.
type UserService struct {
	UserRepository    userPort.UserRepository
	PostRepository    postPort.PostRepository
	CommentRepository commentPort.CommentRepository
	FollowRepository  followPort.FollowRepository
	jwtKey            []byte
}

func NewUserService(
	userRepo userPort.UserRepository,
	postRepo postPort.PostRepository,
	commentRepo commentPort.CommentRepository,
	followRepo followPort.FollowRepository,
	jwtKey []byte,
) *UserService {
	return &UserService{
		UserRepository:    userRepo,
		PostRepository:    postRepo,
		CommentRepository: commentRepo,
		FollowRepository:  followRepo,
		jwtKey:            jwtKey,
	}
}

func (s *UserService) RegisterUser(ctx context.Context, firstName, lastName, username, email, password string) (*userPort.UserDTO, error) {
	existing, err := s.UserRepository.FindByUsernameOrEmail(ctx, username, email)
	if err == nil && existing != nil {
		return nil, userPort.ErrTaken
	}
	if err != nil && !errors.Is(err, userPort.ErrNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &userEntity.User{
		ID:        uuid.Must(uuid.NewV4()),
		FirstName: firstName,
		LastName:  lastName,
		Username:  username,
		Email:     email,
		Password:  string(hashed),
	}

	created, err := s.UserRepository.Create(ctx, u)
	if err != nil {
		return nil, err
	}
	return userPort.ToDTO(created), nil
}

func (s *UserService) LoginUser(ctx context.Context, username, password string) (*userPort.LoginResponse, error) {
	u, err := s.UserRepository.FindByUsername(ctx, username)
	if errors.Is(err, userPort.ErrNotFound) {
		return nil, userPort.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, userPort.ErrInvalidCredentials
	}

	expiresAt := time.Now().Add(tokenLifetime)
	claims := &AuthClaims{
		Username: u.Username,
		StandardClaims: jwt.StandardClaims{
			Subject:   u.ID.String(),
			Issuer:    "plume",
			ExpiresAt: expiresAt.Unix(),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtKey)
	if err != nil {
		return nil, fmt.Errorf("could not sign token: %w", err)
	}

	return &userPort.LoginResponse{Token: token, ExpiresAt: expiresAt.Unix()}, nil
}

// DeleteAccount removes the user together with everything that hangs
// off them: comments on their posts, their posts, their own comments
// elsewhere and follow relations in both directions. The cleanup is
// explicit because the schema declares no cascading foreign keys.
func (s *UserService) DeleteAccount(ctx context.Context, userID string) error {
	posts, err := s.PostRepository.FindByAuthorID(ctx, userID)
	if err != nil {
		return fmt.Errorf("could not list posts for deletion: %w", err)
	}
	for _, p := range posts {
		if err := s.CommentRepository.DeleteByPostID(ctx, p.ID.String()); err != nil {
			return fmt.Errorf("could not delete comments of post %s: %w", p.ID, err)
		}
	}
	if err := s.PostRepository.DeleteByAuthorID(ctx, userID); err != nil {
		return fmt.Errorf("could not delete posts: %w", err)
	}
	if err := s.CommentRepository.DeleteByAuthorID(ctx, userID); err != nil {
		return fmt.Errorf("could not delete comments: %w", err)
	}
	if err := s.FollowRepository.DeleteAllForUser(ctx, userID); err != nil {
		return fmt.Errorf("could not delete follows: %w", err)
	}
	return s.UserRepository.Delete(ctx, userID)
}
