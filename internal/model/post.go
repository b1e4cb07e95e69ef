package model

import "time"

type Post struct {
	ID        uint64    `gorm:"primaryKey"`
	AuthorID  uint64    `gorm:"not null;index:idx_author_time,priority:1"`
	Author    User      `gorm:"constraint:OnUpdate:CASCADE"`
	GroupID   *uint64   `gorm:"index"` // optional category
	Group     *Group    `gorm:"constraint:OnDelete:SET NULL"`
	Text      string    `gorm:"type:text;not null"`
	Image     string    `gorm:"size:255"` // opaque reference into file storage
	CreatedAt time.Time `gorm:"index:idx_author_time,priority:2,sort:desc"`
	UpdatedAt time.Time
}
