package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/fritter/domain"
	"github.com/Guyuepp/fritter/internal/rest/request"
	"github.com/Guyuepp/fritter/internal/rest/response"
)

// UserHandler represent the httphandler for users
type UserHandler struct {
	Consistency domain.ConsistencyUsecase
	Query       domain.QueryUsecase
}

func NewUserHandler(c domain.ConsistencyUsecase, q domain.QueryUsecase) *UserHandler {
	return &UserHandler{Consistency: c, Query: q}
}

// Create registers a user along with their Likes collection
func (h *UserHandler) Create(c *gin.Context) {
	var req request.User
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	user, err := h.Consistency.CreateUser(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.NewUserFromDomain(&user))
}

// DeleteMe removes the caller and everything they own
func (h *UserHandler) DeleteMe(c *gin.Context) {
	ok, err := h.Consistency.DeleteUser(c.Request.Context(), callerID(c))
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

func (h *UserHandler) Following(c *gin.Context) {
	users, err := h.Query.Following(c.Request.Context(), c.Param("username"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewUsersFromDomain(users))
}

func (h *UserHandler) Followers(c *gin.Context) {
	users, err := h.Query.Followers(c.Request.Context(), c.Param("username"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewUsersFromDomain(users))
}

func (h *UserHandler) Likes(c *gin.Context) {
	likes, err := h.Query.LikesByUser(c.Request.Context(), c.Param("username"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewLikesFromDomain(likes))
}
