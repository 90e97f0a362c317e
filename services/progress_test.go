package services

import (
	"testing"

	courseModels "lyon/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordLessonVisit_ProgressByRank(t *testing.T) {
	db := setupTestDB(t)
	user := createUser(t, db, "bob", "free", "0")
	course := createCourse(t, db, "Free Course", "0")
	lessons := createLessons(t, db, course.ID, 4)

	// visiting rank 2 of 4 yields 50%
	enrollment, err := RecordLessonVisit(db, user.ID, course.ID, lessons[1].ID)
	require.NoError(t, err)
	assert.Equal(t, float64(50), enrollment.Progress)
	assert.False(t, enrollment.Completed)

	// visiting the last lesson completes the course
	enrollment, err = RecordLessonVisit(db, user.ID, course.ID, lessons[3].ID)
	require.NoError(t, err)
	assert.Equal(t, float64(100), enrollment.Progress)
	assert.True(t, enrollment.Completed)
	assert.NotNil(t, enrollment.CompletedAt)
}

func TestRecordLessonVisit_ImplicitEnrollment(t *testing.T) {
	db := setupTestDB(t)
	user := createUser(t, db, "carol", "premium", "0")
	course := createCourse(t, db, "Paid Course", "60")
	lessons := createLessons(t, db, course.ID, 3)

	enrolled, err := IsEnrolled(db, user.ID, course.ID)
	require.NoError(t, err)
	require.False(t, enrolled)

	_, err = RecordLessonVisit(db, user.ID, course.ID, lessons[0].ID)
	require.NoError(t, err)

	enrolled, err = IsEnrolled(db, user.ID, course.ID)
	require.NoError(t, err)
	assert.True(t, enrolled, "visiting a lesson implicitly enrolls")
}

func TestRecordLessonVisit_RevisitLowersProgress(t *testing.T) {
	db := setupTestDB(t)
	user := createUser(t, db, "dave", "free", "0")
	course := createCourse(t, db, "Free Course", "0")
	lessons := createLessons(t, db, course.ID, 4)

	_, err := RecordLessonVisit(db, user.ID, course.ID, lessons[2].ID)
	require.NoError(t, err)

	// progress is recomputed from the visited rank, not kept at the maximum
	enrollment, err := RecordLessonVisit(db, user.ID, course.ID, lessons[0].ID)
	require.NoError(t, err)
	assert.Equal(t, float64(25), enrollment.Progress)
	assert.False(t, enrollment.Completed)
	assert.Nil(t, enrollment.CompletedAt)
}

func TestRecordLessonVisit_RoundsProgress(t *testing.T) {
	db := setupTestDB(t)
	user := createUser(t, db, "erin", "free", "0")
	course := createCourse(t, db, "Free Course", "0")
	lessons := createLessons(t, db, course.ID, 3)

	enrollment, err := RecordLessonVisit(db, user.ID, course.ID, lessons[0].ID)
	require.NoError(t, err)
	assert.Equal(t, float64(33), enrollment.Progress) // round(1/3*100)

	enrollment, err = RecordLessonVisit(db, user.ID, course.ID, lessons[1].ID)
	require.NoError(t, err)
	assert.Equal(t, float64(67), enrollment.Progress) // round(2/3*100)
}

func TestRecordLessonVisit_LessonNotInCourse(t *testing.T) {
	db := setupTestDB(t)
	user := createUser(t, db, "frank", "free", "0")
	course := createCourse(t, db, "Free Course", "0")
	createLessons(t, db, course.ID, 2)

	other := createCourse(t, db, "Other Course", "0")
	otherLessons := createLessons(t, db, other.ID, 1)

	_, err := RecordLessonVisit(db, user.ID, course.ID, otherLessons[0].ID)
	assert.ErrorIs(t, err, ErrLessonNotInCourse)
}

func TestLessonSequence_TieBrokenByID(t *testing.T) {
	db := setupTestDB(t)
	course := createCourse(t, db, "Free Course", "0")

	// two lessons sharing the same position
	first := courseModels.Lesson{CourseID: course.ID, Title: "A", Order: 1}
	require.NoError(t, db.Create(&first).Error)
	second := courseModels.Lesson{CourseID: course.ID, Title: "B", Order: 1}
	require.NoError(t, db.Create(&second).Error)

	lessons, err := LessonSequence(db, course.ID)
	require.NoError(t, err)
	require.Len(t, lessons, 2)
	assert.Equal(t, first.ID, lessons[0].ID, "ties resolve by lesson ID")
	assert.Equal(t, second.ID, lessons[1].ID)
}
