package model

import (
	"github.com/Guyuepp/fritter/domain"
)

type Follow struct {
	ID         string `gorm:"primaryKey;type:varchar(36)"`
	FollowerID string `gorm:"column:follower_id;type:varchar(36);not null;uniqueIndex:idx_follow_pair;index"`
	FollowedID string `gorm:"column:followed_id;type:varchar(36);not null;uniqueIndex:idx_follow_pair;index"`
}

func (Follow) TableName() string {
	return "follows"
}

func (m *Follow) ToDomain() domain.Follow {
	return domain.Follow{
		ID:         m.ID,
		FollowerID: m.FollowerID,
		FollowedID: m.FollowedID,
	}
}

func NewFollowFromDomain(f *domain.Follow) *Follow {
	return &Follow{
		ID:         f.ID,
		FollowerID: f.FollowerID,
		FollowedID: f.FollowedID,
	}
}
