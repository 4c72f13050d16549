package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/fritter/domain"
	"github.com/Guyuepp/fritter/internal/rest/request"
	"github.com/Guyuepp/fritter/internal/rest/response"
)

// CollectionHandler serves the caller's collections. Reads go through read-repair.
type CollectionHandler struct {
	Consistency domain.ConsistencyUsecase
	Query       domain.QueryUsecase
}

func NewCollectionHandler(c domain.ConsistencyUsecase, q domain.QueryUsecase) *CollectionHandler {
	return &CollectionHandler{Consistency: c, Query: q}
}

// FetchByOwner lists the collections of ?username=
func (h *CollectionHandler) FetchByOwner(c *gin.Context) {
	colls, err := h.Query.CollectionsByOwner(c.Request.Context(), c.Query("username"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewCollectionsFromDomain(colls))
}

func (h *CollectionHandler) Store(c *gin.Context) {
	var req request.Collection
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	coll, err := h.Consistency.CreateCollection(c.Request.Context(), req.Title, callerID(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.NewCollectionFromDomain(coll))
}

// Posts returns the freets of one of the caller's collections, in collection order
func (h *CollectionHandler) Posts(c *gin.Context) {
	posts, err := h.Query.CollectionPosts(c.Request.Context(), c.Param("title"), callerID(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewPostsFromDomain(posts))
}

func (h *CollectionHandler) AddPost(c *gin.Context) {
	var req request.CollectionPost
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	coll, err := h.Consistency.AddPost(c.Request.Context(), c.Param("title"), callerID(c), req.PostID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewCollectionFromDomain(coll))
}

func (h *CollectionHandler) RemovePost(c *gin.Context) {
	coll, err := h.Consistency.RemovePost(c.Request.Context(), c.Param("title"), callerID(c), c.Param("freetId"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewCollectionFromDomain(coll))
}

func (h *CollectionHandler) Delete(c *gin.Context) {
	if err := h.Consistency.DeleteCollection(c.Request.Context(), c.Param("title"), callerID(c)); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
