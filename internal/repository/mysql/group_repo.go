package mysql

import (
	"Blog_Hub/internal/model"

	"gorm.io/gorm"
)

// Groups are written by the admin side only; this repository is read-only.
type GroupRepository struct {
	DB *gorm.DB
}

func (r *GroupRepository) FindByID(id uint64) (*model.Group, error) {
	var group model.Group
	err := r.DB.First(&group, id).Error
	return &group, err
}

func (r *GroupRepository) FindBySlug(slug string) (*model.Group, error) {
	var group model.Group
	err := r.DB.Where("slug = ?", slug).First(&group).Error
	return &group, err
}
