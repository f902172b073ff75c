package main

import (
	"os"

	dbadapter "plume/internal/adapters/database"
	"plume/internal/adapters/httpapi"
	redisadapter "plume/internal/adapters/redis"
	"plume/internal/config"
	"plume/internal/core/comment"
	feedapp "plume/internal/core/feed/service"
	"plume/internal/core/follow"
	followapp "plume/internal/core/follow/service"
	"plume/internal/core/group"
	groupapp "plume/internal/core/group/service"
	"plume/internal/core/post"
	postapp "plume/internal/core/post/service"
	"plume/internal/core/user"
	userapp "plume/internal/core/user/service"

	"go.uber.org/zap"
)

func main() {
	config.InitLogger()
	config.Init()
	config.InitDB()

	if err := config.DB.AutoMigrate(
		&user.User{},
		&group.Group{},
		&post.Post{},
		&comment.Comment{},
		&follow.Follow{},
	); err != nil {
		config.Logger.Fatal("error during migrations", zap.Error(err))
	}
	config.Logger.Info("database migrations completed")

	config.InitRedis()
	defer closeResources(config.Logger)

	userRepo := dbadapter.NewUserRepositoryDatabase()
	groupRepo := dbadapter.NewGroupRepositoryDatabase()
	postRepo := dbadapter.NewPostRepositoryDatabase()
	commentRepo := dbadapter.NewCommentRepositoryDatabase()
	followRepo := dbadapter.NewFollowRepositoryDatabase()
	pageCache := redisadapter.NewPageCacheRedis(config.RedisClient)

	userSvc := userapp.NewUserService(userRepo, postRepo, commentRepo, followRepo, []byte(os.Getenv("JWT_SECRET")))
	groupSvc := groupapp.NewGroupService(groupRepo, postRepo)
	postSvc := postapp.NewPostService(postRepo, commentRepo, groupRepo, userRepo)
	followSvc := followapp.NewFollowService(followRepo, userRepo)
	feedSvc := feedapp.NewFeedService(postRepo, groupRepo, userRepo, followRepo, pageCache, config.IndexCacheTTL())

	r := httpapi.SetupRoutes(userSvc, postSvc, groupSvc, followSvc, feedSvc)

	config.Logger.Info("app is running", zap.String("port", config.AppPort()))
	if err := r.Run(":" + config.AppPort()); err != nil {
		config.Logger.Fatal("server failed to start", zap.Error(err))
	}
}

// closeResources closes the Redis and database connections.
func closeResources(logger *zap.Logger) {
	if err := config.RedisClient.Close(); err != nil {
		logger.Error("error closing Redis connection", zap.Error(err))
	}

	sqlDB, err := config.DB.DB()
	if err != nil {
		logger.Error("error getting raw DB", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Error("error closing database connection", zap.Error(err))
	}
}
