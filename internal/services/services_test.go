package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/yaswanth810/safety-beacon/internal/config"
	"github.com/yaswanth810/safety-beacon/internal/models"
	"github.com/yaswanth810/safety-beacon/internal/notify"
	"github.com/yaswanth810/safety-beacon/internal/realtime"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.UserRole{},
		&models.RefreshToken{},
		&models.Incident{},
		&models.SOSAlert{},
		&models.ForumPost{},
		&models.ForumComment{},
		&models.LegalResource{},
	))
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  time.Minute,
		JWTRefreshExpiry: time.Hour,
	}
}

// discardMailer satisfies notify.Mailer; everything sent is dropped.
type discardMailer struct{}

func (discardMailer) IsConfigured() bool                  { return true }
func (discardMailer) Send([]string, string, string) error { return nil }

func testDispatcher(db *gorm.DB) *notify.Dispatcher {
	return notify.NewDispatcher(db, discardMailer{}, []string{"ops@example.com"})
}

func testHub(t *testing.T) *realtime.Hub {
	t.Helper()
	hub := realtime.NewHub()
	t.Cleanup(hub.Close)
	return hub
}
