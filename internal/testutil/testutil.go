// Package testutil builds throwaway databases and services for package tests.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/sharath018/event-management-backend/config"
	"github.com/sharath018/event-management-backend/database"
	"github.com/sharath018/event-management-backend/internal/auditlog"
	"github.com/sharath018/event-management-backend/internal/auth"
	"github.com/sharath018/event-management-backend/internal/migrations"
	"github.com/sharath018/event-management-backend/internal/notification"
)

// Config returns settings suitable for tests: sqlite, cheap hashing, no rate limit pressure.
func Config() *config.Config {
	return &config.Config{
		Port:                "0",
		GinMode:             "test",
		DBDriver:            config.DriverSQLite,
		JWTAccessSecret:     "test-secret",
		JWTAccessTTLHours:   1,
		BcryptCost:          bcrypt.MinCost,
		RateLimitPerMinute:  10000,
		Timezone:            "UTC",
		JoinDuplicatePolicy: config.JoinPolicyIgnore,
		LogLevel:            "error",
		LogFormat:           "json",
	}
}

// NewDB opens a migrated sqlite database under t.TempDir().
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "test.sqlite3"))
	require.NoError(t, err)
	require.NoError(t, migrations.Run(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// AuditService returns an audit service writing to db.
func AuditService(db *gorm.DB) auditlog.Service {
	return auditlog.NewService(auditlog.NewRepository(db))
}

// AuthService returns a credential store backed by db.
func AuthService(db *gorm.DB, cfg *config.Config) auth.Service {
	return auth.NewService(auth.NewRepository(db), cfg, AuditService(db), notification.NopPublisher{})
}

// MustRegister registers a user with a fixed password and fails the test on error.
func MustRegister(t *testing.T, svc auth.Service, username string) *auth.User {
	t.Helper()

	u, err := svc.Register(t.Context(), auth.RegisterInput{
		Username:  username,
		Password:  "secret123",
		FirstName: "First" + username,
		LastName:  "Last",
		Email:     username + "@example.com",
		Phone:     "5550100",
	}, "127.0.0.1")
	require.NoError(t, err)
	return u
}
