package feedback

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, f *Feedback) error
	ExistsForUser(ctx context.Context, userID uint) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, f *Feedback) error {
	return r.db.WithContext(ctx).Omit("User").Create(f).Error
}

func (r *repository) ExistsForUser(ctx context.Context, userID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Feedback{}).Where("user_id = ?", userID).Count(&count).Error
	return count > 0, err
}
