package rest

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/fritter/domain"
	"github.com/Guyuepp/fritter/internal/rest/request"
	"github.com/Guyuepp/fritter/internal/rest/response"
)

// PostHandler represent the httphandler for freets
type PostHandler struct {
	Consistency domain.ConsistencyUsecase
	Query       domain.QueryUsecase
}

func NewPostHandler(c domain.ConsistencyUsecase, q domain.QueryUsecase) *PostHandler {
	return &PostHandler{Consistency: c, Query: q}
}

// Store will store the freet by given request body
func (h *PostHandler) Store(c *gin.Context) {
	var req request.Post
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	post, err := h.Consistency.CreatePost(c.Request.Context(), callerID(c), req.Content)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.NewPostFromDomain(&post))
}

// FetchByAuthor lists the freets of ?author=username, newest first
func (h *PostHandler) FetchByAuthor(c *gin.Context) {
	posts, err := h.Query.PostsByAuthor(c.Request.Context(), c.Query("author"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewPostsFromDomain(posts))
}

// GetByID will get the freet with its author and likes
func (h *PostHandler) GetByID(c *gin.Context) {
	post, err := h.Query.GetPost(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewPostFromDomain(&post))
}

// Edit replaces the content, bounded by the drift from the original
func (h *PostHandler) Edit(c *gin.Context) {
	var req request.Post
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	ctx := c.Request.Context()
	id := c.Param("id")
	if err := h.authorize(ctx, id, callerID(c)); err != nil {
		abortWithError(c, err)
		return
	}
	post, err := h.Query.EditPost(ctx, id, req.Content)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewPostFromDomain(&post))
}

// Delete will delete the freet by given param
func (h *PostHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")
	if err := h.authorize(ctx, id, callerID(c)); err != nil {
		abortWithError(c, err)
		return
	}

	ok, err := h.Consistency.DeletePost(ctx, id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	if !ok {
		abortWithError(c, domain.ErrNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteMine removes every freet of the caller
func (h *PostHandler) DeleteMine(c *gin.Context) {
	n, err := h.Consistency.DeletePostsByAuthor(c.Request.Context(), callerID(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": n})
}

// Feed returns the caller's posts and those of everyone they follow
func (h *PostHandler) Feed(c *gin.Context) {
	ctx := c.Request.Context()
	user, err := h.Query.GetUser(ctx, callerID(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	posts, err := h.Query.Feed(ctx, user.Username)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewPostsFromDomain(posts))
}

// authorize returns ErrForbidden unless userID wrote the freet
func (h *PostHandler) authorize(ctx context.Context, postID, userID string) error {
	post, err := h.Query.GetPost(ctx, postID)
	if err != nil {
		return err
	}
	if post.AuthorID != userID {
		return domain.ErrForbidden
	}
	return nil
}
