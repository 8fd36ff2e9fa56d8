package services

import (
	"fmt"
	"os"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"studiofit/config"
	"studiofit/models"
)

func TestMain(m *testing.M) {
	config.LoadConfig()
	os.Exit(m.Run())
}

// setupTestDB opens an in-memory sqlite database with the full schema. A
// single connection keeps concurrent transactions serialized the way the row
// store would.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get database instance: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.User{},
		&models.Student{},
		&models.Plan{},
		&models.ClassSession{},
		&models.RecurringClass{},
		&models.Enrollment{},
		&models.Payment{},
		&models.Commission{},
	)
	if err != nil {
		t.Fatalf("migration failed: %v", err)
	}
	return db
}

func createInstructor(t *testing.T, db *gorm.DB, name string) *models.User {
	t.Helper()
	user := models.User{
		Name:     name,
		Email:    fmt.Sprintf("%s@studiofit.app", name),
		Role:     models.RoleInstructor,
		Password: "x",
		IsActive: true,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create instructor: %v", err)
	}
	return &user
}

func createAdmin(t *testing.T, db *gorm.DB, name string) *models.User {
	t.Helper()
	user := models.User{
		Name:     name,
		Email:    fmt.Sprintf("%s@studiofit.app", name),
		Role:     models.RoleAdmin,
		Password: "x",
		IsActive: true,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create admin: %v", err)
	}
	return &user
}

func createStudent(t *testing.T, db *gorm.DB, name string) *models.Student {
	t.Helper()
	student := models.Student{
		Name:     name,
		Email:    fmt.Sprintf("%s@example.com", name),
		IsActive: true,
	}
	if err := db.Create(&student).Error; err != nil {
		t.Fatalf("failed to create student: %v", err)
	}
	return &student
}

func createScheduledSession(t *testing.T, db *gorm.DB, instructorID uint, maxStudents int) *models.ClassSession {
	t.Helper()
	start := time.Date(2024, 6, 10, 7, 0, 0, 0, time.UTC)
	session, err := CreateSession(db, "Mat Pilates", start, start.Add(time.Hour), instructorID, maxStudents)
	if err != nil {
		t.Fatalf("failed to create session: %v", err)
	}
	return session
}
