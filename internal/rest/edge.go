package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/fritter/domain"
	"github.com/Guyuepp/fritter/internal/rest/request"
	"github.com/Guyuepp/fritter/internal/rest/response"
)

// EdgeHandler serves follows and likes
type EdgeHandler struct {
	Service domain.ConsistencyUsecase
}

func NewEdgeHandler(svc domain.ConsistencyUsecase) *EdgeHandler {
	return &EdgeHandler{Service: svc}
}

func (h *EdgeHandler) Follow(c *gin.Context) {
	var req request.Follow
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	follow, err := h.Service.CreateFollow(c.Request.Context(), callerID(c), req.UserID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.NewFollowFromDomain(follow))
}

func (h *EdgeHandler) Unfollow(c *gin.Context) {
	if err := h.Service.RemoveFollow(c.Request.Context(), callerID(c), c.Param("userId")); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Like adds a like edge and mirrors it into the caller's Likes collection
func (h *EdgeHandler) Like(c *gin.Context) {
	var req request.Like
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	like, err := h.Service.CreateLike(c.Request.Context(), req.PostID, callerID(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.NewLikeFromDomain(like))
}

func (h *EdgeHandler) Unlike(c *gin.Context) {
	if err := h.Service.RemoveLike(c.Request.Context(), c.Param("postId"), callerID(c)); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
