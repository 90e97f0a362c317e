package utils

import (
	"fmt"
	"testing"

	"lyon/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, code string) {
	t.Helper()
	user := models.User{
		Name:         code,
		Email:        code + "@example.com",
		Password:     "hashed",
		ReferralCode: code,
	}
	require.NoError(t, db.Create(&user).Error)
}

func TestGenerateUniqueReferralCode(t *testing.T) {
	db := openTestDB(t)

	code, err := GenerateUniqueReferralCode(db, "Alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", code)
}

func TestGenerateUniqueReferralCode_TruncatesLongNames(t *testing.T) {
	db := openTestDB(t)

	code, err := GenerateUniqueReferralCode(db, "Bartholomew Cubbins")
	require.NoError(t, err)
	assert.Equal(t, "bartholo", code)
}

func TestGenerateUniqueReferralCode_AppendsCounterOnCollision(t *testing.T) {
	db := openTestDB(t)
	seedUser(t, db, "alice")
	seedUser(t, db, "alice1")

	code, err := GenerateUniqueReferralCode(db, "Alice")
	require.NoError(t, err)
	assert.Equal(t, "alice2", code)
}

func TestGenerateUniqueReferralCode_EmptyBaseFallsBack(t *testing.T) {
	db := openTestDB(t)

	code, err := GenerateUniqueReferralCode(db, "   ")
	require.NoError(t, err)
	assert.Len(t, code, 8)
	assert.NotEqual(t, "        ", code)
}
