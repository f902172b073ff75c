package httpapi

import (
	"context"

	"plume/internal/adapters/httpapi/middleware"
	commentPort "plume/internal/ports/comment"
	feedPort "plume/internal/ports/feed"
	groupPort "plume/internal/ports/group"
	postPort "plume/internal/ports/post"
	userPort "plume/internal/ports/user"

	"github.com/gin-gonic/gin"
)

// Inbound ports: the use-case interfaces the controllers need.

type UserUseCase interface {
	RegisterUser(ctx context.Context, firstName, lastName, username, email, password string) (*userPort.UserDTO, error)
	LoginUser(ctx context.Context, username, password string) (*userPort.LoginResponse, error)
	DeleteAccount(ctx context.Context, userID string) error
}

type PostUseCase interface {
	CreatePost(ctx context.Context, actorID string, in postPort.PostInput) (*postPort.PostDTO, error)
	EditPost(ctx context.Context, actorID, postID string, in postPort.PostInput) (*postPort.PostDTO, error)
	DeletePost(ctx context.Context, actorID, postID string) error
	GetPostDetail(ctx context.Context, postID string) (*postPort.PostDetailDTO, error)
	AddComment(ctx context.Context, actorID, postID, text string) (*commentPort.CommentDTO, error)
}

type GroupUseCase interface {
	CreateGroup(ctx context.Context, title, slug, description string) (*groupPort.GroupDTO, error)
	ListGroups(ctx context.Context) ([]*groupPort.GroupDTO, error)
	DeleteGroup(ctx context.Context, slug string) error
}

type FollowUseCase interface {
	Follow(ctx context.Context, actorID, targetUsername string) error
	Unfollow(ctx context.Context, actorID, targetUsername string) error
}

type FeedUseCase interface {
	Index(ctx context.Context, page int) ([]byte, error)
	Group(ctx context.Context, slug string, page int) (*feedPort.FeedPage, error)
	Profile(ctx context.Context, username, viewerID string, page int) (*feedPort.ProfilePage, error)
	Following(ctx context.Context, userID string, page int) (*feedPort.FeedPage, error)
	FlushCache(ctx context.Context) error
}

// SetupRoutes wires the controllers; use cases are injected from the
// outside.
func SetupRoutes(
	userUC UserUseCase,
	postUC PostUseCase,
	groupUC GroupUseCase,
	followUC FollowUseCase,
	feedUC FeedUseCase,
) *gin.Engine {
	r := gin.Default()
	uc := NewUserController(userUC)
	pc := NewPostController(postUC)
	gc := NewGroupController(groupUC)
	fc := NewFollowController(followUC)
	fdc := NewFeedController(feedUC)

	r.POST("/auth/signup", uc.Signup)
	r.POST("/auth/login", uc.Login)
	r.DELETE("/account", middleware.JWTAuth(), uc.DeleteAccount)

	r.GET("/", fdc.Index)
	r.GET("/group/:slug", fdc.GroupFeed)
	r.GET("/profile/:username", middleware.Identify(), fdc.Profile)
	r.GET("/follow", middleware.JWTAuth(), fdc.Following)
	r.POST("/cache/flush", middleware.JWTAuth(), fdc.FlushCache)

	r.GET("/posts/:id", pc.PostDetail)
	r.POST("/posts", middleware.JWTAuth(), pc.CreatePost)
	r.POST("/posts/:id/edit", middleware.JWTAuth(), pc.EditPost)
	r.POST("/posts/:id/delete", middleware.JWTAuth(), pc.DeletePost)
	r.POST("/posts/:id/comments", middleware.JWTAuth(), pc.AddComment)

	r.POST("/profile/:username/follow", middleware.JWTAuth(), fc.Follow)
	r.POST("/profile/:username/unfollow", middleware.JWTAuth(), fc.Unfollow)

	r.GET("/groups", gc.ListGroups)
	r.POST("/groups", middleware.JWTAuth(), gc.CreateGroup)
	r.POST("/groups/:slug/delete", middleware.JWTAuth(), gc.DeleteGroup)

	return r
}
