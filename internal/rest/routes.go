package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/fritter/domain"
	"github.com/Guyuepp/fritter/internal/rest/middleware"
)

// RegisterRoutes mounts every freets route on r. Routes acting for the caller
// sit behind middleware.Identity.
func RegisterRoutes(r gin.IRouter, cons domain.ConsistencyUsecase, query domain.QueryUsecase) {
	users := NewUserHandler(cons, query)
	posts := NewPostHandler(cons, query)
	edges := NewEdgeHandler(cons)
	colls := NewCollectionHandler(cons, query)

	r.POST("/users", users.Create)
	r.GET("/users/:username/following", users.Following)
	r.GET("/users/:username/followers", users.Followers)
	r.GET("/users/:username/likes", users.Likes)
	r.GET("/freets", posts.FetchByAuthor)
	r.GET("/freets/:id", posts.GetByID)
	r.GET("/collections", colls.FetchByOwner)

	authorized := r.Group("/")
	authorized.Use(middleware.Identity())
	{
		authorized.DELETE("/users/me", users.DeleteMe)

		authorized.POST("/freets", posts.Store)
		authorized.PATCH("/freets/:id", posts.Edit)
		authorized.DELETE("/freets/:id", posts.Delete)
		authorized.DELETE("/freets", posts.DeleteMine)
		authorized.GET("/feed", posts.Feed)

		authorized.POST("/follows", edges.Follow)
		authorized.DELETE("/follows/:userId", edges.Unfollow)
		authorized.POST("/likes", edges.Like)
		authorized.DELETE("/likes/:postId", edges.Unlike)

		authorized.POST("/collections", colls.Store)
		authorized.GET("/collections/:title/freets", colls.Posts)
		authorized.PUT("/collections/:title", colls.AddPost)
		authorized.DELETE("/collections/:title/freets/:freetId", colls.RemovePost)
		authorized.DELETE("/collections/:title", colls.Delete)
	}
}
