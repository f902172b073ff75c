package httpapi

import (
	"errors"
	"net/http"

	userPort "plume/internal/ports/user"

	"github.com/gin-gonic/gin"
)

type FollowController struct{ fc FollowUseCase }

func NewFollowController(fc FollowUseCase) *FollowController { return &FollowController{fc: fc} }

// Follow subscribes the acting user to the target author. Duplicate
// follows and self-follows succeed without creating anything, so the
// redirect is the same either way.
func (ctl *FollowController) Follow(c *gin.Context) {
	username := c.Param("username")
	err := ctl.fc.Follow(c.Request.Context(), c.GetString("userID"), username)
	if errors.Is(err, userPort.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not follow user"})
		return
	}
	c.Redirect(http.StatusSeeOther, "/profile/"+username)
}

func (ctl *FollowController) Unfollow(c *gin.Context) {
	username := c.Param("username")
	err := ctl.fc.Unfollow(c.Request.Context(), c.GetString("userID"), username)
	if errors.Is(err, userPort.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not unfollow user"})
		return
	}
	c.Redirect(http.StatusSeeOther, "/profile/"+username)
}
