package migrations

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/sharath018/event-management-backend/internal/auditlog"
	"github.com/sharath018/event-management-backend/internal/auth"
	"github.com/sharath018/event-management-backend/internal/event"
	"github.com/sharath018/event-management-backend/internal/feedback"
)

// Models lists every table in dependency order.
func Models() []interface{} {
	return []interface{}{
		&auth.User{},
		&auth.AdminBootstrap{},
		&feedback.Feedback{},
		&event.Event{},
		&event.Attendance{},
		&auditlog.AuditLog{},
	}
}

// Run migrates the schema and seeds the admin bootstrap marker for existing databases.
func Run(db *gorm.DB) error {
	log.Info().Msg("🔄 Running database migrations...")
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}

	if err := auth.SeedBootstrapMarker(db); err != nil {
		return fmt.Errorf("seed admin bootstrap: %w", err)
	}

	log.Info().Msg("✅ Database migrations completed")
	return nil
}
