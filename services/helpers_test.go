package services_test

import (
	"fmt"
	"testing"
	"time"

	"learnhub/config"
	"learnhub/database"
	"learnhub/models"
	courseModels "learnhub/models/course"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB opens a fresh in-memory database with the full schema migrated
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	if config.AppConfig == nil {
		config.AppConfig = &config.Config{
			BaseURL: "http://localhost:3000",
			JWTKey:  "test-secret",
		}
	}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get database instance: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(database.Models()...); err != nil {
		t.Fatalf("Migration failed: %v", err)
	}

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	user := models.User{
		Name:     "Test Student",
		Email:    email,
		Password: "hashed",
		Role:     models.RoleStudent,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return &user
}

func createTestCourse(t *testing.T, db *gorm.DB, title string, price *float64) *courseModels.Course {
	t.Helper()

	course := courseModels.Course{
		Title:       title,
		Description: "A course for testing",
		Author:      "Instructor",
		Price:       price,
		Status:      courseModels.StatusActive,
		IsPublished: true,
	}
	if err := db.Create(&course).Error; err != nil {
		t.Fatalf("Failed to create test course: %v", err)
	}
	return &course
}

func createCompletedPayment(t *testing.T, db *gorm.DB, userID uint, amount float64) *models.Payment {
	t.Helper()

	now := time.Now()
	payment := models.Payment{
		UserID:         userID,
		Amount:         amount,
		Method:         models.PaymentMethodUPI,
		Status:         models.PaymentStatusCompleted,
		GatewayOrderID: uuid.NewString(),
		TransactionID:  "txn_" + uuid.NewString(),
		PaidAt:         &now,
	}
	if err := db.Create(&payment).Error; err != nil {
		t.Fatalf("Failed to create test payment: %v", err)
	}
	return &payment
}

func floatPtr(f float64) *float64 { return &f }

func boolPtr(b bool) *bool { return &b }

func uintPtr(u uint) *uint { return &u }
