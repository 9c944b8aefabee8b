package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karthik/facultydesk/internal/app/models"
	"github.com/karthik/facultydesk/internal/pkg/apperrors"
	"github.com/karthik/facultydesk/internal/pkg/helpers"
)

func testFaculty(id int64, email, phone string) *models.Faculty {
	return &models.Faculty{
		ID:          id,
		FirstName:   "Asha",
		LastName:    "Rao",
		DateOfBirth: time.Date(1980, 5, 12, 0, 0, 0, 0, time.UTC),
		Email:       email,
		Phone:       helpers.StringPtr(phone),
		Department:  "Computer Science",
		Designation: "Professor",
	}
}

func TestCreateFaculty_DuplicateEmailRefused(t *testing.T) {
	ctx := context.Background()
	facultyRepo := newFakeFacultyRepo(testFaculty(1, "asha@univ.edu", "9876543210"))
	svc := NewFacultyService(facultyRepo, newFakeSubjectRepo(), newFakeActivityRepo())

	dup := testFaculty(0, "asha@univ.edu", "9999999999")
	err := svc.CreateFaculty(ctx, dup)

	assert.ErrorIs(t, err, apperrors.ErrEmailTaken)
	assert.Equal(t, 0, facultyRepo.creates, "no row should be written on a duplicate")
}

func TestCreateFaculty_DuplicatePhoneRefused(t *testing.T) {
	ctx := context.Background()
	existing := testFaculty(1, "asha@univ.edu", "9876543210")
	existing.AltPhone = helpers.StringPtr("8888888888")
	facultyRepo := newFakeFacultyRepo(existing)
	svc := NewFacultyService(facultyRepo, newFakeSubjectRepo(), newFakeActivityRepo())

	// Colliding with the existing secondary number counts too
	dup := testFaculty(0, "new@univ.edu", "8888888888")
	err := svc.CreateFaculty(ctx, dup)

	assert.ErrorIs(t, err, apperrors.ErrPhoneTaken)
	assert.Equal(t, 0, facultyRepo.creates)
}

func TestCreateFaculty_InvalidEmail(t *testing.T) {
	svc := NewFacultyService(newFakeFacultyRepo(), newFakeSubjectRepo(), newFakeActivityRepo())

	bad := testFaculty(0, "not-an-email", "9876543210")
	err := svc.CreateFaculty(context.Background(), bad)

	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestCreateFaculty_Success(t *testing.T) {
	ctx := context.Background()
	facultyRepo := newFakeFacultyRepo()
	svc := NewFacultyService(facultyRepo, newFakeSubjectRepo(), newFakeActivityRepo())

	f := testFaculty(0, "asha@univ.edu", "9876543210")
	require.NoError(t, svc.CreateFaculty(ctx, f))
	assert.NotZero(t, f.ID)
	assert.Equal(t, 1, facultyRepo.creates)
}

func TestUpdateFaculty_KeepsOwnEmail(t *testing.T) {
	ctx := context.Background()
	facultyRepo := newFakeFacultyRepo(testFaculty(1, "asha@univ.edu", "9876543210"))
	svc := NewFacultyService(facultyRepo, newFakeSubjectRepo(), newFakeActivityRepo())

	// Same email and phone on the same row is not a conflict
	updated := testFaculty(1, "asha@univ.edu", "9876543210")
	updated.Designation = "Head of Department"

	require.NoError(t, svc.UpdateFaculty(ctx, updated))
	stored, err := facultyRepo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Head of Department", stored.Designation)
}

func TestUpdateFaculty_EmailOfAnotherFacultyRefused(t *testing.T) {
	ctx := context.Background()
	facultyRepo := newFakeFacultyRepo(
		testFaculty(1, "asha@univ.edu", "9876543210"),
		testFaculty(2, "vikram@univ.edu", "9123456789"),
	)
	svc := NewFacultyService(facultyRepo, newFakeSubjectRepo(), newFakeActivityRepo())

	updated := testFaculty(2, "asha@univ.edu", "9123456789")
	err := svc.UpdateFaculty(ctx, updated)

	assert.ErrorIs(t, err, apperrors.ErrEmailTaken)
	stored, _ := facultyRepo.GetByID(ctx, 2)
	assert.Equal(t, "vikram@univ.edu", stored.Email, "row must be unchanged")
}

func TestDeleteFaculty_GuardedWhileOwningSubjects(t *testing.T) {
	ctx := context.Background()
	facultyRepo := newFakeFacultyRepo(testFaculty(1, "asha@univ.edu", "9876543210"))
	subjectRepo := newFakeSubjectRepo(&models.Subject{
		CourseCode:  "CS101",
		SubjectName: "Intro to Programming",
		FacultyID:   helpers.Int64Ptr(1),
	})
	svc := NewFacultyService(facultyRepo, subjectRepo, newFakeActivityRepo())

	err := svc.DeleteFaculty(ctx, 1)

	assert.ErrorIs(t, err, apperrors.ErrFacultyInUse)
	assert.Equal(t, 0, facultyRepo.deletes)
	_, getErr := facultyRepo.GetByID(ctx, 1)
	assert.NoError(t, getErr, "faculty must still exist")
}

func TestDeleteFaculty_GuardedWhileOwningActivities(t *testing.T) {
	ctx := context.Background()
	facultyRepo := newFakeFacultyRepo(testFaculty(1, "asha@univ.edu", "9876543210"))
	activityRepo := newFakeActivityRepo(&models.Activity{ID: 10, FacultyID: 1, Title: "Go Workshop"})
	svc := NewFacultyService(facultyRepo, newFakeSubjectRepo(), activityRepo)

	err := svc.DeleteFaculty(ctx, 1)

	assert.ErrorIs(t, err, apperrors.ErrFacultyInUse)
	assert.Equal(t, 0, facultyRepo.deletes)
}

func TestDeleteFaculty_Unreferenced(t *testing.T) {
	ctx := context.Background()
	facultyRepo := newFakeFacultyRepo(testFaculty(1, "asha@univ.edu", "9876543210"))
	svc := NewFacultyService(facultyRepo, newFakeSubjectRepo(), newFakeActivityRepo())

	require.NoError(t, svc.DeleteFaculty(ctx, 1))
	_, err := facultyRepo.GetByID(ctx, 1)
	assert.ErrorIs(t, err, apperrors.ErrFacultyNotFound)
}

func TestDeleteFaculty_NotFound(t *testing.T) {
	svc := NewFacultyService(newFakeFacultyRepo(), newFakeSubjectRepo(), newFakeActivityRepo())

	err := svc.DeleteFaculty(context.Background(), 42)
	assert.ErrorIs(t, err, apperrors.ErrFacultyNotFound)
}
