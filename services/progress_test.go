package services_test

import (
	"testing"

	courseModels "learnhub/models/course"
	"learnhub/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestUpdateProgress_Monotone(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "progress@test.com")
	course := createTestCourse(t, db, "Go Concurrency", nil)

	_, err := services.Enroll(db, user.ID, course.ID, nil)
	require.NoError(t, err)

	p1, err := services.UpdateProgress(db, user.ID, course.ID, services.ProgressUpdate{Progress: 80, TimeSpentDelta: 600})
	require.NoError(t, err)
	assert.Equal(t, float64(80), p1.Progress)
	assert.Equal(t, int64(600), p1.TimeSpent)

	// A lower value never regresses recorded progress; time still accumulates
	p2, err := services.UpdateProgress(db, user.ID, course.ID, services.ProgressUpdate{Progress: 50, TimeSpentDelta: 300})
	require.NoError(t, err)
	assert.Equal(t, float64(80), p2.Progress)
	assert.Equal(t, int64(900), p2.TimeSpent)

	// One row per (user, course) at course level
	var count int64
	db.Model(&courseModels.CourseProgress{}).Where("user_id = ? AND course_id = ?", user.ID, course.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestUpdateProgress_StickyCompletion(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "sticky@test.com")
	course := createTestCourse(t, db, "Testing in Go", nil)

	_, err := services.Enroll(db, user.ID, course.ID, nil)
	require.NoError(t, err)

	p1, err := services.UpdateProgress(db, user.ID, course.ID, services.ProgressUpdate{Progress: 90, Completed: boolPtr(true)})
	require.NoError(t, err)
	assert.True(t, p1.Completed)
	// Completion forces progress to 100 even when the reported percent was lower
	assert.Equal(t, float64(100), p1.Progress)
	assert.NotNil(t, p1.CompletedAt)

	// A later lower-progress call cannot reset completion
	p2, err := services.UpdateProgress(db, user.ID, course.ID, services.ProgressUpdate{Progress: 10, Completed: boolPtr(false)})
	require.NoError(t, err)
	assert.True(t, p2.Completed)
	assert.Equal(t, float64(100), p2.Progress)
}

func TestUpdateProgress_OutOfRange(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "range@test.com")
	course := createTestCourse(t, db, "Edge Cases", nil)

	_, err := services.Enroll(db, user.ID, course.ID, nil)
	require.NoError(t, err)

	_, err = services.UpdateProgress(db, user.ID, course.ID, services.ProgressUpdate{Progress: 101})
	require.Error(t, err)
	assert.Equal(t, services.KindInvalidInput, services.ErrKind(err))

	_, err = services.UpdateProgress(db, user.ID, course.ID, services.ProgressUpdate{Progress: -1})
	require.Error(t, err)
	assert.Equal(t, services.KindInvalidInput, services.ErrKind(err))

	_, err = services.UpdateProgress(db, user.ID, course.ID, services.ProgressUpdate{Progress: 10, TimeSpentDelta: -5})
	require.Error(t, err)
	assert.Equal(t, services.KindInvalidInput, services.ErrKind(err))
}

func TestUpdateProgress_RequiresEnrollment(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "noenroll@test.com")
	course := createTestCourse(t, db, "Locked Course", nil)

	_, err := services.UpdateProgress(db, user.ID, course.ID, services.ProgressUpdate{Progress: 10})
	require.Error(t, err)
	assert.Equal(t, services.KindPreconditionFailed, services.ErrKind(err))
}

func TestUpdateProgress_PerLessonRows(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "lesson@test.com")
	course := createTestCourse(t, db, "Structured Course", nil)

	lesson := courseModels.Lesson{CourseID: course.ID, Title: "Lesson 1", IsPublished: true}
	require.NoError(t, db.Create(&lesson).Error)

	_, err := services.Enroll(db, user.ID, course.ID, nil)
	require.NoError(t, err)

	lp, err := services.UpdateProgress(db, user.ID, course.ID, services.ProgressUpdate{LessonID: &lesson.ID, Progress: 40})
	require.NoError(t, err)
	require.NotNil(t, lp.LessonID)
	assert.Equal(t, lesson.ID, *lp.LessonID)

	cp, err := services.UpdateProgress(db, user.ID, course.ID, services.ProgressUpdate{Progress: 20})
	require.NoError(t, err)
	assert.Nil(t, cp.LessonID)

	// Lesson row and course row are distinct
	var count int64
	db.Model(&courseModels.CourseProgress{}).Where("user_id = ? AND course_id = ?", user.ID, course.ID).Count(&count)
	assert.Equal(t, int64(2), count)

	// Unknown lesson id is rejected
	badID := uint(4242)
	_, err = services.UpdateProgress(db, user.ID, course.ID, services.ProgressUpdate{LessonID: &badID, Progress: 10})
	require.Error(t, err)
	assert.Equal(t, services.KindNotFound, services.ErrKind(err))
}

func TestCourseProgress_SingleCourseLevelRowEnforced(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "onerow@test.com")
	course := createTestCourse(t, db, "Constrained", nil)

	first := courseModels.CourseProgress{UserID: user.ID, CourseID: course.ID, Progress: 10}
	require.NoError(t, db.Create(&first).Error)

	// The store rejects a second course-level row even though lesson_id is NULL
	second := courseModels.CourseProgress{UserID: user.ID, CourseID: course.ID, Progress: 20}
	err := db.Create(&second).Error
	require.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestUpdateProgress_NeverTouchesCertificates(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "nocert@test.com")
	course := createTestCourse(t, db, "Certificate-Free", nil)

	_, err := services.Enroll(db, user.ID, course.ID, nil)
	require.NoError(t, err)

	_, err = services.UpdateProgress(db, user.ID, course.ID, services.ProgressUpdate{Progress: 100, Completed: boolPtr(true)})
	require.NoError(t, err)

	var count int64
	db.Model(&courseModels.Certificate{}).Count(&count)
	assert.Equal(t, int64(0), count)
}
