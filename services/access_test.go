package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanAccessCourse_FreeCourse(t *testing.T) {
	db := setupTestDB(t)
	user := createUser(t, db, "bob", "free", "0")
	course := createCourse(t, db, "Intro to Markets", "0")

	ok, err := CanAccessCourse(db, user, course)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCanAccessCourse_PremiumRegardlessOfBalance(t *testing.T) {
	db := setupTestDB(t)
	user := createUser(t, db, "carol", "premium", "0")
	course := createCourse(t, db, "Options Deep Dive", "199.99")

	ok, err := CanAccessCourse(db, user, course)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCanAccessCourse_FreeTierPaidCourseDenied(t *testing.T) {
	db := setupTestDB(t)
	user := createUser(t, db, "dave", "free", "500")
	course := createCourse(t, db, "Options Deep Dive", "199.99")

	ok, err := CanAccessCourse(db, user, course)
	require.NoError(t, err)
	assert.False(t, ok, "balance alone grants nothing without enrollment")
}

func TestCanAccessCourse_EnrolledUser(t *testing.T) {
	db := setupTestDB(t)
	user := createUser(t, db, "erin", "free", "100")
	course := createCourse(t, db, "Candlestick Basics", "50")

	_, _, err := Enroll(db, user, course)
	require.NoError(t, err)

	ok, err := CanAccessCourse(db, user, course)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCanViewLesson_PreviewGrantIsIndependent(t *testing.T) {
	db := setupTestDB(t)
	user := createUser(t, db, "frank", "free", "0")
	course := createCourse(t, db, "Paid Course", "80")
	lessons := createLessons(t, db, course.ID, 2)

	// not enrolled, not premium, paid course
	ok, err := CanViewLesson(db, user, course, &lessons[0])
	require.NoError(t, err)
	assert.False(t, ok)

	lessons[0].IsPreview = true
	require.NoError(t, db.Save(&lessons[0]).Error)

	ok, err = CanViewLesson(db, user, course, &lessons[0])
	require.NoError(t, err)
	assert.True(t, ok, "preview flag permits viewing the single lesson")

	// the second lesson stays locked
	ok, err = CanViewLesson(db, user, course, &lessons[1])
	require.NoError(t, err)
	assert.False(t, ok)
}
