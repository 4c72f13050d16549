package model

import (
	"github.com/Guyuepp/fritter/domain"
)

type Like struct {
	ID     string `gorm:"primaryKey;type:varchar(36)"`
	PostID string `gorm:"column:post_id;type:varchar(36);not null;uniqueIndex:idx_like_post_user;index"`
	UserID string `gorm:"column:user_id;type:varchar(36);not null;uniqueIndex:idx_like_post_user;index"`
}

func (Like) TableName() string {
	return "likes"
}

func (m *Like) ToDomain() domain.Like {
	return domain.Like{
		ID:     m.ID,
		PostID: m.PostID,
		UserID: m.UserID,
	}
}

func NewLikeFromDomain(l *domain.Like) *Like {
	return &Like{
		ID:     l.ID,
		PostID: l.PostID,
		UserID: l.UserID,
	}
}
