package auth

import (
	"errors"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SeedBootstrapMarker claims the admin marker for the earliest user of a database that was
// populated before the marker table existed. Empty databases are left alone so the first
// registration claims it.
func SeedBootstrapMarker(db *gorm.DB) error {
	var marker AdminBootstrap
	err := db.First(&marker, bootstrapMarkerID).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	var first User
	err = db.Order("id ASC").First(&first).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&AdminBootstrap{ID: bootstrapMarkerID, UserID: first.ID})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		log.Info().Str("username", first.Username).Msg("✅ admin bootstrap marker seeded")
		return tx.Model(&User{}).Where("id = ?", first.ID).Update("is_admin", true).Error
	})
}
