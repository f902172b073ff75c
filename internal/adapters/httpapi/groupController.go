package httpapi

import (
	"errors"
	"net/http"

	groupPort "plume/internal/ports/group"

	"github.com/gin-gonic/gin"
)

type GroupController struct{ gc GroupUseCase }

func NewGroupController(gc GroupUseCase) *GroupController { return &GroupController{gc: gc} }

func (ctl *GroupController) CreateGroup(c *gin.Context) {
	var req struct {
		Title       string `json:"title" binding:"required"`
		Slug        string `json:"slug" binding:"required"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	g, err := ctl.gc.CreateGroup(c.Request.Context(), req.Title, req.Slug, req.Description)
	if errors.Is(err, groupPort.ErrInvalidSlug) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if errors.Is(err, groupPort.ErrTaken) {
		c.JSON(http.StatusConflict, gin.H{"error": "group title or slug already taken"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create group"})
		return
	}
	c.JSON(http.StatusCreated, g)
}

func (ctl *GroupController) ListGroups(c *gin.Context) {
	groups, err := ctl.gc.ListGroups(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list groups"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"groups": groups})
}

func (ctl *GroupController) DeleteGroup(c *gin.Context) {
	err := ctl.gc.DeleteGroup(c.Request.Context(), c.Param("slug"))
	if errors.Is(err, groupPort.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "group not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete group"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "group deleted"})
}
