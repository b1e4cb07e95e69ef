package mysql

import (
	"Blog_Hub/internal/model"

	"gorm.io/gorm"
)

type PostRepository struct {
	DB *gorm.DB
}

func (r *PostRepository) Create(post *model.Post) error {
	return r.DB.Create(post).Error
}

// UpdateContent rewrites the mutable fields only; author and creation
// time are never touched after the post exists.
func (r *PostRepository) UpdateContent(id uint64, text string, groupID *uint64, image string) error {
	return r.DB.Model(&model.Post{}).
		Where("id = ?", id).
		Updates(map[string]any{"text": text, "group_id": groupID, "image": image}).Error
}

func (r *PostRepository) FindByID(id uint64) (*model.Post, error) {
	var post model.Post
	err := r.DB.Preload("Author").Preload("Group").First(&post, "id = ?", id).Error
	return &post, err
}

func (r *PostRepository) ListAll(offset, limit int) ([]model.Post, error) {
	var list []model.Post
	err := r.newestFirst(r.DB).Offset(offset).Limit(limit).Find(&list).Error
	return list, err
}

func (r *PostRepository) CountAll() (int64, error) {
	var n int64
	err := r.DB.Model(&model.Post{}).Count(&n).Error
	return n, err
}

func (r *PostRepository) ListByGroup(groupID uint64, offset, limit int) ([]model.Post, error) {
	var list []model.Post
	err := r.newestFirst(r.DB.Where("group_id = ?", groupID)).
		Offset(offset).Limit(limit).Find(&list).Error
	return list, err
}

func (r *PostRepository) CountByGroup(groupID uint64) (int64, error) {
	var n int64
	err := r.DB.Model(&model.Post{}).Where("group_id = ?", groupID).Count(&n).Error
	return n, err
}

func (r *PostRepository) ListByAuthor(authorID uint64, offset, limit int) ([]model.Post, error) {
	var list []model.Post
	err := r.newestFirst(r.DB.Where("author_id = ?", authorID)).
		Offset(offset).Limit(limit).Find(&list).Error
	return list, err
}

func (r *PostRepository) CountByAuthor(authorID uint64) (int64, error) {
	var n int64
	err := r.DB.Model(&model.Post{}).Where("author_id = ?", authorID).Count(&n).Error
	return n, err
}

// ListFeed returns posts authored by anyone userID follows.
func (r *PostRepository) ListFeed(userID uint64, offset, limit int) ([]model.Post, error) {
	var list []model.Post
	err := r.newestFirst(r.feedQuery(userID)).
		Offset(offset).Limit(limit).Find(&list).Error
	return list, err
}

func (r *PostRepository) CountFeed(userID uint64) (int64, error) {
	var n int64
	err := r.feedQuery(userID).Count(&n).Error
	return n, err
}

func (r *PostRepository) feedQuery(userID uint64) *gorm.DB {
	return r.DB.Model(&model.Post{}).
		Joins("JOIN follow ON follow.author_id = posts.author_id").
		Where("follow.user_id = ?", userID)
}

// newestFirst applies the display ordering every listing shares; id
// breaks ties between posts created in the same instant.
func (r *PostRepository) newestFirst(q *gorm.DB) *gorm.DB {
	return q.Preload("Author").Preload("Group").
		Order("posts.created_at DESC, posts.id DESC")
}
