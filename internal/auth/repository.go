package auth

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	// Create inserts the user and claims the bootstrap marker in one transaction.
	// The claimant comes back with IsAdmin set.
	Create(ctx context.Context, user *User) error
	FindByID(ctx context.Context, userID uint) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	List(ctx context.Context) ([]User, error)
	SetAdmin(ctx context.Context, userID uint) error
}

type repository struct{ db *gorm.DB }

func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

func (r *repository) Create(ctx context.Context, user *User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}

		claim := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&AdminBootstrap{ID: bootstrapMarkerID, UserID: user.ID})
		if claim.Error != nil {
			return claim.Error
		}
		if claim.RowsAffected == 0 {
			return nil
		}

		if err := tx.Model(&User{}).Where("id = ?", user.ID).Update("is_admin", true).Error; err != nil {
			return err
		}
		user.IsAdmin = true
		return nil
	})
}

func (r *repository) FindByID(ctx context.Context, userID uint) (*User, error) {
	var u User
	if err := r.db.WithContext(ctx).First(&u, userID).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) FindByUsername(ctx context.Context, username string) (*User, error) {
	var u User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) List(ctx context.Context) ([]User, error) {
	var users []User
	err := r.db.WithContext(ctx).Order("id ASC").Find(&users).Error
	return users, err
}

func (r *repository) SetAdmin(ctx context.Context, userID uint) error {
	res := r.db.WithContext(ctx).Model(&User{}).Where("id = ?", userID).Update("is_admin", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// sqlite reports 0 when the value is unchanged, so confirm the row exists
		var count int64
		if err := r.db.WithContext(ctx).Model(&User{}).Where("id = ?", userID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}
	}
	return nil
}
