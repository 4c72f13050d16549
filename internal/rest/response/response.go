package response

import (
	"github.com/Guyuepp/fritter/domain"
)

// DateTimeFormat is the layout of every timestamp in a response
const DateTimeFormat = "2006-01-02 15:04:05"

// User never carries the password hash
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	JoinedAt string `json:"joined_at"`
}

func NewUserFromDomain(u *domain.User) *User {
	if u == nil {
		return nil
	}
	return &User{
		ID:       u.ID,
		Username: u.Username,
		JoinedAt: u.JoinedAt.Format(DateTimeFormat),
	}
}

func NewUsersFromDomain(us []domain.User) []*User {
	res := make([]*User, len(us))
	for i := range us {
		res[i] = NewUserFromDomain(&us[i])
	}
	return res
}

type Post struct {
	ID              string `json:"id"`
	AuthorID        string `json:"author_id"`
	Author          string `json:"author,omitempty"`
	Content         string `json:"content"`
	OriginalContent string `json:"original_content"`
	CreatedAt       string `json:"created_at"`
	ModifiedAt      string `json:"modified_at"`
	Likes           []Like `json:"likes,omitempty"`
}

// NewPostFromDomain: Domain -> Response
func NewPostFromDomain(p *domain.Post) Post {
	res := Post{
		ID:              p.ID,
		AuthorID:        p.AuthorID,
		Content:         p.Content,
		OriginalContent: p.OriginalContent,
		CreatedAt:       p.CreatedAt.Format(DateTimeFormat),
		ModifiedAt:      p.ModifiedAt.Format(DateTimeFormat),
	}
	if p.Author != nil {
		res.Author = p.Author.Username
	}
	if len(p.Likes) > 0 {
		res.Likes = NewLikesFromDomain(p.Likes)
	}
	return res
}

func NewPostsFromDomain(ps []domain.Post) []Post {
	res := make([]Post, len(ps))
	for i := range ps {
		res[i] = NewPostFromDomain(&ps[i])
	}
	return res
}

type Follow struct {
	ID         string `json:"id"`
	FollowerID string `json:"follower_id"`
	FollowedID string `json:"followed_id"`
}

func NewFollowFromDomain(f domain.Follow) Follow {
	return Follow{ID: f.ID, FollowerID: f.FollowerID, FollowedID: f.FollowedID}
}

type Like struct {
	ID     string `json:"id"`
	PostID string `json:"post_id"`
	UserID string `json:"user_id"`
}

func NewLikeFromDomain(l domain.Like) Like {
	return Like{ID: l.ID, PostID: l.PostID, UserID: l.UserID}
}

func NewLikesFromDomain(ls []domain.Like) []Like {
	res := make([]Like, len(ls))
	for i, l := range ls {
		res[i] = NewLikeFromDomain(l)
	}
	return res
}

type Collection struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	OwnerID string   `json:"owner_id"`
	System  bool     `json:"system"`
	Posts   []string `json:"posts"`
}

func NewCollectionFromDomain(c domain.Collection) Collection {
	posts := c.Posts
	if posts == nil {
		posts = []string{}
	}
	return Collection{
		ID:      c.ID,
		Title:   c.Title,
		OwnerID: c.OwnerID,
		System:  c.IsSystem(),
		Posts:   posts,
	}
}

func NewCollectionsFromDomain(cs []domain.Collection) []Collection {
	res := make([]Collection, len(cs))
	for i := range cs {
		res[i] = NewCollectionFromDomain(cs[i])
	}
	return res
}
