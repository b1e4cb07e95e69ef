package model

import "time"

// Follow is a directed subscription edge: UserID follows AuthorID.
// The composite unique index is what keeps two concurrent follow
// calls from inserting the same edge twice.
type Follow struct {
	ID        uint64 `gorm:"primaryKey"`
	UserID    uint64 `gorm:"not null;index:idx_user_id;uniqueIndex:uk_user_author"`
	AuthorID  uint64 `gorm:"not null;index:idx_author_id;uniqueIndex:uk_user_author"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName sets table name for Follow
func (Follow) TableName() string {
	return "follow"
}
