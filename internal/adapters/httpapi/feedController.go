package httpapi

import (
	"errors"
	"net/http"

	"plume/internal/pagination"
	groupPort "plume/internal/ports/group"
	userPort "plume/internal/ports/user"

	"github.com/gin-gonic/gin"
)

type FeedController struct{ fc FeedUseCase }

func NewFeedController(fc FeedUseCase) *FeedController { return &FeedController{fc: fc} }

// Index serves the cached index feed. The body comes back as raw bytes
// so repeated requests within the TTL window are byte-identical.
func (ctl *FeedController) Index(c *gin.Context) {
	body, err := ctl.fc.Index(c.Request.Context(), pagination.ParsePage(c.Query("page")))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load feed"})
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

func (ctl *FeedController) GroupFeed(c *gin.Context) {
	page, err := ctl.fc.Group(c.Request.Context(), c.Param("slug"), pagination.ParsePage(c.Query("page")))
	if errors.Is(err, groupPort.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "group not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load feed"})
		return
	}
	c.JSON(http.StatusOK, page)
}

func (ctl *FeedController) Profile(c *gin.Context) {
	page, err := ctl.fc.Profile(c.Request.Context(),
		c.Param("username"),
		c.GetString("userID"),
		pagination.ParsePage(c.Query("page")))
	if errors.Is(err, userPort.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load profile"})
		return
	}
	c.JSON(http.StatusOK, page)
}

func (ctl *FeedController) Following(c *gin.Context) {
	page, err := ctl.fc.Following(c.Request.Context(), c.GetString("userID"), pagination.ParsePage(c.Query("page")))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load feed"})
		return
	}
	c.JSON(http.StatusOK, page)
}

func (ctl *FeedController) FlushCache(c *gin.Context) {
	if err := ctl.fc.FlushCache(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not flush cache"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "cache flushed"})
}
