package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karthik/facultydesk/internal/app/models"
	"github.com/karthik/facultydesk/internal/pkg/apperrors"
)

func activityFixtures() (*fakeActivityRepo, *fakeFacultyRepo, *fakeAcademicYearRepo, *fakeActivityTypeRepo) {
	facultyRepo := newFakeFacultyRepo(
		testFaculty(5, "asha@univ.edu", "9876543210"),
		testFaculty(7, "vikram@univ.edu", "9123456789"),
	)
	yearRepo := newFakeAcademicYearRepo(&models.AcademicYear{ID: 1, YearStart: 2025, YearEnd: 2026})
	typeRepo := newFakeActivityTypeRepo(&models.ActivityType{ID: 1, Name: "Workshop", Category: "Professional Development"})
	return newFakeActivityRepo(), facultyRepo, yearRepo, typeRepo
}

func testActivity(facultyID int64) *models.Activity {
	return &models.Activity{
		Name:           "golang-intro",
		Title:          "Introduction to Go",
		Date:           time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC),
		FacultyID:      facultyID,
		AcademicYearID: 1,
		ActivityTypeID: 1,
	}
}

func TestCreateActivity_DanglingFacultyReference(t *testing.T) {
	activityRepo, facultyRepo, yearRepo, typeRepo := activityFixtures()
	svc := NewActivityService(activityRepo, facultyRepo, yearRepo, typeRepo)

	activity := testActivity(999)
	err := svc.CreateActivity(context.Background(), activity)

	assert.ErrorIs(t, err, apperrors.ErrFacultyNotFound)
	assert.Equal(t, 0, activityRepo.creates, "no row should be written")
}

func TestCreateActivity_DanglingTypeReference(t *testing.T) {
	activityRepo, facultyRepo, yearRepo, typeRepo := activityFixtures()
	svc := NewActivityService(activityRepo, facultyRepo, yearRepo, typeRepo)

	activity := testActivity(5)
	activity.ActivityTypeID = 42
	err := svc.CreateActivity(context.Background(), activity)

	assert.ErrorIs(t, err, apperrors.ErrActivityTypeNotFound)
	assert.Equal(t, 0, activityRepo.creates)
}

func TestCreateActivity_MissingReference(t *testing.T) {
	activityRepo, facultyRepo, yearRepo, typeRepo := activityFixtures()
	svc := NewActivityService(activityRepo, facultyRepo, yearRepo, typeRepo)

	activity := testActivity(5)
	activity.AcademicYearID = 0
	err := svc.CreateActivity(context.Background(), activity)

	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestCreateActivity_Success(t *testing.T) {
	activityRepo, facultyRepo, yearRepo, typeRepo := activityFixtures()
	svc := NewActivityService(activityRepo, facultyRepo, yearRepo, typeRepo)

	activity := testActivity(5)
	require.NoError(t, svc.CreateActivity(context.Background(), activity))
	assert.NotZero(t, activity.ID)
}

func TestCreateOwnActivity_ForcesTokenFaculty(t *testing.T) {
	activityRepo, facultyRepo, yearRepo, typeRepo := activityFixtures()
	svc := NewActivityService(activityRepo, facultyRepo, yearRepo, typeRepo)

	// Body claims faculty 7; the authenticated caller is 5
	activity := testActivity(7)
	require.NoError(t, svc.CreateOwnActivity(context.Background(), activity, 5))
	assert.Equal(t, int64(5), activity.FacultyID)
}

func TestUpdateOwnActivity_OtherOwnerRefused(t *testing.T) {
	activityRepo, facultyRepo, yearRepo, typeRepo := activityFixtures()
	owned := testActivity(7)
	owned.ID = 3
	activityRepo.activities[3] = owned
	svc := NewActivityService(activityRepo, facultyRepo, yearRepo, typeRepo)

	// Faculty 5 tries to edit faculty 7's activity
	edit := testActivity(5)
	edit.ID = 3
	edit.Title = "Hijacked"
	err := svc.UpdateOwnActivity(context.Background(), edit, 5)

	assert.ErrorIs(t, err, apperrors.ErrNotActivityOwner)
	assert.Equal(t, 0, activityRepo.updates)
	assert.Equal(t, "Introduction to Go", activityRepo.activities[3].Title, "activity must be unmodified")
	assert.Equal(t, int64(7), activityRepo.activities[3].FacultyID)
}

func TestUpdateOwnActivity_OwnerSucceeds(t *testing.T) {
	activityRepo, facultyRepo, yearRepo, typeRepo := activityFixtures()
	owned := testActivity(5)
	owned.ID = 3
	activityRepo.activities[3] = owned
	svc := NewActivityService(activityRepo, facultyRepo, yearRepo, typeRepo)

	edit := testActivity(5)
	edit.ID = 3
	edit.Title = "Advanced Go"
	require.NoError(t, svc.UpdateOwnActivity(context.Background(), edit, 5))
	assert.Equal(t, "Advanced Go", activityRepo.activities[3].Title)
}

func TestUpdateOwnActivity_NotFound(t *testing.T) {
	activityRepo, facultyRepo, yearRepo, typeRepo := activityFixtures()
	svc := NewActivityService(activityRepo, facultyRepo, yearRepo, typeRepo)

	edit := testActivity(5)
	edit.ID = 99
	err := svc.UpdateOwnActivity(context.Background(), edit, 5)
	assert.ErrorIs(t, err, apperrors.ErrActivityNotFound)
}
