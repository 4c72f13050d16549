package request

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

func init() {
	// gin binds with go-playground/validator; notblank rejects whitespace-only strings
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("notblank", validators.NotBlank)
	}
}

// User is the body of POST /users
type User struct {
	Username string `json:"username" binding:"required,notblank"`
	Password string `json:"password" binding:"required,notblank"`
}

// Post is the body of POST /freets and PATCH /freets/:id.
// Length is checked by the domain so both routes report the same error.
type Post struct {
	Content string `json:"content" binding:"required"`
}

// Follow is the body of POST /follows
type Follow struct {
	UserID string `json:"user_id" binding:"required,notblank"`
}

// Like is the body of POST /likes
type Like struct {
	PostID string `json:"post_id" binding:"required,notblank"`
}

// Collection is the body of POST /collections
type Collection struct {
	Title string `json:"title" binding:"required,notblank"`
}

// CollectionPost is the body of PUT /collections/:title
type CollectionPost struct {
	PostID string `json:"freet_id" binding:"required,notblank"`
}
