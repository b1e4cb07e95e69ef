package mysql

import (
	"context"

	"Blog_Hub/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FollowRepository struct {
	DB *gorm.DB
}

// Create inserts the edge idempotently. The unique (user, author)
// index plus DO NOTHING means a concurrent duplicate insert is
// swallowed by the database, not just by the application pre-check.
func (r *FollowRepository) Create(ctx context.Context, userID, authorID uint64) error {
	rel := model.Follow{UserID: userID, AuthorID: authorID}
	return r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "author_id"}},
		DoNothing: true,
	}).Create(&rel).Error
}

// Delete removes the edge; deleting an absent edge is not an error.
func (r *FollowRepository) Delete(ctx context.Context, userID, authorID uint64) error {
	return r.DB.WithContext(ctx).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Delete(&model.Follow{}).Error
}

func (r *FollowRepository) Exists(ctx context.Context, userID, authorID uint64) (bool, error) {
	var n int64
	if err := r.DB.WithContext(ctx).
		Model(&model.Follow{}).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}
