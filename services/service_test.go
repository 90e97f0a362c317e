package services

import (
	"fmt"
	"testing"

	"lyon/config"
	"lyon/models"
	courseModels "lyon/models/course"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens an isolated in-memory database per test and migrates the
// domain schema into it.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	config.AppConfig = &config.Config{
		ReferrerReward: decimal.RequireFromString("50.00"),
		ReferredBonus:  decimal.RequireFromString("25.00"),
	}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Referral{},
		&models.CreditTransaction{},
		&courseModels.Category{},
		&courseModels.Course{},
		&courseModels.Lesson{},
		&courseModels.Enrollment{},
	))

	return db
}

func createUser(t *testing.T, db *gorm.DB, name string, tier models.SubscriptionTier, balance string) *models.User {
	t.Helper()

	user := models.User{
		Name:             name,
		Email:            name + "@example.com",
		Password:         "hashed",
		SubscriptionTier: tier,
		ReferralCode:     name,
		CreditBalance:    decimal.RequireFromString(balance),
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func createCourse(t *testing.T, db *gorm.DB, title, price string) *courseModels.Course {
	t.Helper()

	course := courseModels.Course{
		Title:    title,
		Level:    courseModels.LevelBeginner,
		Price:    decimal.RequireFromString(price),
		IsActive: true,
	}
	require.NoError(t, db.Create(&course).Error)
	return &course
}

func createLessons(t *testing.T, db *gorm.DB, courseID uint, count int) []courseModels.Lesson {
	t.Helper()

	lessons := make([]courseModels.Lesson, count)
	for i := 0; i < count; i++ {
		lessons[i] = courseModels.Lesson{
			CourseID: courseID,
			Title:    fmt.Sprintf("Lesson %d", i+1),
			Order:    uint(i + 1),
		}
		require.NoError(t, db.Create(&lessons[i]).Error)
	}
	return lessons
}

func reloadUser(t *testing.T, db *gorm.DB, id uint) *models.User {
	t.Helper()

	var user models.User
	require.NoError(t, db.First(&user, id).Error)
	return &user
}
