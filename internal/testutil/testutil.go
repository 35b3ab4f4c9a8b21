package testutil

import (
	"strings"
	"testing"
	"time"

	"salestracker/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// OpenTestDB opens a fresh in-memory SQLite database with every model
// migrated. Each call gets its own database, closed through t.Cleanup.
func OpenTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name()) + "_" + uuid.NewString()
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("test db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(models.All()...); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func Group(t *testing.T, db *gorm.DB, name string) uint {
	t.Helper()
	g := models.Group{Name: name}
	if err := db.Create(&g).Error; err != nil {
		t.Fatalf("create group: %v", err)
	}
	return g.ID
}

// User creates a user, adding it to groupID when groupID is non-zero.
func User(t *testing.T, db *gorm.DB, name, role string, groupID uint) uint {
	t.Helper()
	u := models.User{Name: name, Role: role}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	if groupID != 0 {
		if err := db.Create(&models.UserGroup{UserID: u.ID, GroupID: groupID}).Error; err != nil {
			t.Fatalf("create membership: %v", err)
		}
	}
	return u.ID
}

// Sale records a sale; date is "YYYY-MM-DD".
func Sale(t *testing.T, db *gorm.DB, userID uint, amount, date string) uint {
	t.Helper()
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		t.Fatalf("parse sale date: %v", err)
	}
	s := models.Sale{UserID: userID, Amount: decimal.RequireFromString(amount), Date: d}
	if err := db.Create(&s).Error; err != nil {
		t.Fatalf("create sale: %v", err)
	}
	return s.ID
}
