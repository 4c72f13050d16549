package model

import (
	"time"

	"github.com/Guyuepp/fritter/domain"
)

// User stores the display username and a lower-cased key carrying the unique index.
type User struct {
	ID          string    `gorm:"primaryKey;type:varchar(36)"`
	Username    string    `gorm:"type:varchar(64);not null"`
	UsernameKey string    `gorm:"column:username_key;type:varchar(64);uniqueIndex;not null"`
	Password    string    `gorm:"type:varchar(100);not null"`
	JoinedAt    time.Time `gorm:"column:joined_at"`
}

func (User) TableName() string {
	return "users"
}

func (m *User) ToDomain() domain.User {
	return domain.User{
		ID:       m.ID,
		Username: m.Username,
		Password: m.Password,
		JoinedAt: m.JoinedAt,
	}
}

func NewUserFromDomain(u *domain.User) *User {
	return &User{
		ID:          u.ID,
		Username:    u.Username,
		UsernameKey: domain.NormalizeUsername(u.Username),
		Password:    u.Password,
		JoinedAt:    u.JoinedAt,
	}
}
