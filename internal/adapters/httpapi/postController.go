package httpapi

import (
	"errors"
	"net/http"

	groupPort "plume/internal/ports/group"
	postPort "plume/internal/ports/post"

	"github.com/gin-gonic/gin"
)

type PostController struct{ pc PostUseCase }

func NewPostController(pc PostUseCase) *PostController { return &PostController{pc: pc} }

type postRequest struct {
	Text    string  `json:"text" binding:"required"`
	GroupID *string `json:"group_id"`
	Image   string  `json:"image"`
}

func (ctl *PostController) CreatePost(c *gin.Context) {
	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	_, err := ctl.pc.CreatePost(c.Request.Context(), c.GetString("userID"), postPort.PostInput{
		Text:    req.Text,
		GroupID: req.GroupID,
		Image:   req.Image,
	})
	if errors.Is(err, groupPort.ErrNotFound) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown group"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create post"})
		return
	}
	c.Redirect(http.StatusSeeOther, "/profile/"+c.GetString("username"))
}

func (ctl *PostController) EditPost(c *gin.Context) {
	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	postID := c.Param("id")
	_, err := ctl.pc.EditPost(c.Request.Context(), c.GetString("userID"), postID, postPort.PostInput{
		Text:    req.Text,
		GroupID: req.GroupID,
		Image:   req.Image,
	})
	if ctl.handleMutationError(c, err) {
		return
	}
	c.Redirect(http.StatusSeeOther, "/posts/"+postID)
}

func (ctl *PostController) DeletePost(c *gin.Context) {
	err := ctl.pc.DeletePost(c.Request.Context(), c.GetString("userID"), c.Param("id"))
	if ctl.handleMutationError(c, err) {
		return
	}
	c.Redirect(http.StatusSeeOther, "/profile/"+c.GetString("username"))
}

func (ctl *PostController) AddComment(c *gin.Context) {
	var req struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	postID := c.Param("id")
	_, err := ctl.pc.AddComment(c.Request.Context(), c.GetString("userID"), postID, req.Text)
	if errors.Is(err, postPort.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not add comment"})
		return
	}
	c.Redirect(http.StatusSeeOther, "/posts/"+postID)
}

func (ctl *PostController) PostDetail(c *gin.Context) {
	detail, err := ctl.pc.GetPostDetail(c.Request.Context(), c.Param("id"))
	if errors.Is(err, postPort.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load post"})
		return
	}
	c.JSON(http.StatusOK, detail)
}

// handleMutationError maps post mutation failures. A non-author edit
// or delete is a soft deny: the caller is sent to the actual author's
// profile, never a 403.
func (ctl *PostController) handleMutationError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}
	var notAuthor *postPort.ErrNotAuthor
	if errors.As(err, &notAuthor) {
		c.Redirect(http.StatusFound, "/profile/"+notAuthor.AuthorUsername)
		return true
	}
	if errors.Is(err, postPort.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return true
	}
	if errors.Is(err, groupPort.ErrNotFound) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown group"})
		return true
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update post"})
	return true
}
