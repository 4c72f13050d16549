package model

import (
	"gorm.io/datatypes"

	"github.com/Guyuepp/fritter/domain"
)

type Collection struct {
	Seq     int64                       `gorm:"primaryKey;autoIncrement"`
	ID      string                      `gorm:"type:varchar(36);uniqueIndex;not null"`
	Title   string                      `gorm:"type:varchar(100);not null;uniqueIndex:idx_collection_owner_title"`
	OwnerID string                      `gorm:"column:owner_id;type:varchar(36);not null;uniqueIndex:idx_collection_owner_title;index"`
	Kind    string                      `gorm:"type:varchar(16);not null;default:user"`
	Posts   datatypes.JSONSlice[string] `gorm:"not null"`
	Version int64                       `gorm:"not null;default:0"`
}

func (Collection) TableName() string {
	return "collections"
}

func (m *Collection) ToDomain() domain.Collection {
	posts := make([]string, len(m.Posts))
	copy(posts, m.Posts)
	return domain.Collection{
		ID:      m.ID,
		Title:   m.Title,
		OwnerID: m.OwnerID,
		Kind:    domain.CollectionKind(m.Kind),
		Posts:   posts,
		Version: m.Version,
	}
}

func NewCollectionFromDomain(c *domain.Collection) *Collection {
	posts := datatypes.JSONSlice[string]{}
	posts = append(posts, c.Posts...)
	return &Collection{
		ID:      c.ID,
		Title:   c.Title,
		OwnerID: c.OwnerID,
		Kind:    string(c.Kind),
		Posts:   posts,
		Version: c.Version,
	}
}
