package services_test

import (
	"strings"
	"testing"

	courseModels "learnhub/models/course"
	"learnhub/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueCertificate_RequiresCompletion(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "cert@test.com")
	course := createTestCourse(t, db, "Certified Go", nil)

	_, err := services.Enroll(db, user.ID, course.ID, nil)
	require.NoError(t, err)

	// No progress row at all
	_, err = services.IssueCertificate(db, user.ID, course.ID)
	require.Error(t, err)
	assert.Equal(t, services.KindPreconditionFailed, services.ErrKind(err))

	// Progress exists but not completed
	_, err = services.UpdateProgress(db, user.ID, course.ID, services.ProgressUpdate{Progress: 60})
	require.NoError(t, err)
	_, err = services.IssueCertificate(db, user.ID, course.ID)
	require.Error(t, err)
	assert.Equal(t, services.KindPreconditionFailed, services.ErrKind(err))
}

func TestIssueCertificate_Success(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "winner@test.com")
	course := createTestCourse(t, db, "Finished Course", nil)

	_, err := services.Enroll(db, user.ID, course.ID, nil)
	require.NoError(t, err)
	_, err = services.UpdateProgress(db, user.ID, course.ID, services.ProgressUpdate{Progress: 100, Completed: boolPtr(true)})
	require.NoError(t, err)

	certificate, err := services.IssueCertificate(db, user.ID, course.ID)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(certificate.CertificateNumber, "LH-"))
	assert.Contains(t, certificate.VerificationURL, certificate.CertificateNumber)

	// Second issue for the same pair conflicts
	_, err = services.IssueCertificate(db, user.ID, course.ID)
	require.Error(t, err)
	assert.Equal(t, services.KindConflict, services.ErrKind(err))

	var count int64
	db.Model(&courseModels.Certificate{}).Where("user_id = ? AND course_id = ?", user.ID, course.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestIssueCertificate_CourseNotFound(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "lost@test.com")

	_, err := services.IssueCertificate(db, user.ID, 12345)
	require.Error(t, err)
	assert.Equal(t, services.KindNotFound, services.ErrKind(err))
}

func TestVerifyCertificate(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "public@test.com")
	course := createTestCourse(t, db, "Public Course", nil)

	_, err := services.Enroll(db, user.ID, course.ID, nil)
	require.NoError(t, err)
	_, err = services.UpdateProgress(db, user.ID, course.ID, services.ProgressUpdate{Progress: 100, Completed: boolPtr(true)})
	require.NoError(t, err)

	issued, err := services.IssueCertificate(db, user.ID, course.ID)
	require.NoError(t, err)

	found, err := services.VerifyCertificate(db, issued.CertificateNumber)
	require.NoError(t, err)
	assert.Equal(t, issued.ID, found.ID)

	_, err = services.VerifyCertificate(db, "LH-0-BOGUS")
	require.Error(t, err)
	assert.Equal(t, services.KindNotFound, services.ErrKind(err))
}

func TestGenerateCertificateNumber_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		n := services.GenerateCertificateNumber()
		assert.False(t, seen[n], "duplicate certificate number %s", n)
		seen[n] = true
	}
}
