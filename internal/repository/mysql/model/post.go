package model

import (
	"time"

	"github.com/Guyuepp/fritter/domain"
)

// Post keeps an auto-increment sequence as primary key so that listings
// can break ModifiedAt ties by insertion order. ID is the public identifier.
type Post struct {
	Seq             int64     `gorm:"primaryKey;autoIncrement"`
	ID              string    `gorm:"type:varchar(36);uniqueIndex;not null"`
	AuthorID        string    `gorm:"column:author_id;type:varchar(36);index;not null"`
	Content         string    `gorm:"type:varchar(560);not null"`
	OriginalContent string    `gorm:"column:original_content;type:varchar(560);not null"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	ModifiedAt      time.Time `gorm:"column:modified_at;index"`
}

func (Post) TableName() string {
	return "posts"
}

func (m *Post) ToDomain() domain.Post {
	return domain.Post{
		ID:              m.ID,
		AuthorID:        m.AuthorID,
		Content:         m.Content,
		OriginalContent: m.OriginalContent,
		CreatedAt:       m.CreatedAt,
		ModifiedAt:      m.ModifiedAt,
	}
}

func NewPostFromDomain(p *domain.Post) *Post {
	return &Post{
		ID:              p.ID,
		AuthorID:        p.AuthorID,
		Content:         p.Content,
		OriginalContent: p.OriginalContent,
		CreatedAt:       p.CreatedAt,
		ModifiedAt:      p.ModifiedAt,
	}
}
