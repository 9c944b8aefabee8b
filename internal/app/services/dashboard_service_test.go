package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karthik/facultydesk/internal/app/models"
	"github.com/karthik/facultydesk/internal/pkg/helpers"
)

func dashboardActivity(id, facultyID int64, typeName string, date time.Time) *models.Activity {
	return &models.Activity{
		ID:             id,
		Name:           "event",
		Title:          "Event " + typeName,
		Date:           date,
		FacultyID:      facultyID,
		AcademicYearID: 1,
		ActivityTypeID: 1,
		ActivityType:   &models.ActivityType{ID: 1, Name: typeName},
	}
}

func TestTypeColor(t *testing.T) {
	cases := []struct {
		typeName string
		want     string
	}{
		{"Workshop", "bg-primary"},
		{"Seminar", "bg-success"},
		{"Research", "bg-warning"},
		{"Other", "bg-secondary"},
		{"", "bg-secondary"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, TypeColor(tc.typeName), tc.typeName)
	}
}

func TestGetFacultyDashboard_DistributionAndColors(t *testing.T) {
	day := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	facultyRepo := newFakeFacultyRepo(testFaculty(5, "asha@univ.edu", "9876543210"))
	activityRepo := newFakeActivityRepo(
		dashboardActivity(1, 5, "Workshop", day),
		dashboardActivity(2, 5, "Workshop", day.AddDate(0, 0, 1)),
		dashboardActivity(3, 5, "Seminar", day.AddDate(0, 0, 2)),
		// Another faculty's activity must not count
		dashboardActivity(4, 7, "Research", day.AddDate(0, 0, 3)),
	)
	subjectRepo := newFakeSubjectRepo(&models.Subject{
		CourseCode:  "CS101",
		SubjectName: "Intro to Programming",
		FacultyID:   helpers.Int64Ptr(5),
	})
	svc := NewDashboardService(facultyRepo, activityRepo, subjectRepo, newFakeAppraisalRepo())

	dashboard, err := svc.GetFacultyDashboard(context.Background(), 5)
	require.NoError(t, err)

	assert.Equal(t, 1, dashboard.SubjectCount)
	assert.Equal(t, 3, dashboard.ActivityCount)
	require.Len(t, dashboard.Activities, 3)
	assert.Equal(t, "bg-success", dashboard.Activities[0].Color, "newest is the seminar")

	require.Len(t, dashboard.ActivityDistribution, 2)
	workshop := dashboard.ActivityDistribution[0]
	assert.Equal(t, "Workshop", workshop.Name)
	assert.Equal(t, 2, workshop.Count)
	assert.InDelta(t, 66.7, workshop.Percentage, 0.001)
	assert.Equal(t, "bg-info", workshop.Color)

	seminar := dashboard.ActivityDistribution[1]
	assert.Equal(t, "Seminar", seminar.Name)
	assert.Equal(t, 1, seminar.Count)
	assert.InDelta(t, 33.3, seminar.Percentage, 0.001)
	assert.Equal(t, "bg-success", seminar.Color)
}

func TestGetFacultyDashboard_NoActivities(t *testing.T) {
	facultyRepo := newFakeFacultyRepo(testFaculty(5, "asha@univ.edu", "9876543210"))
	svc := NewDashboardService(facultyRepo, newFakeActivityRepo(), newFakeSubjectRepo(), newFakeAppraisalRepo())

	dashboard, err := svc.GetFacultyDashboard(context.Background(), 5)
	require.NoError(t, err)
	assert.Zero(t, dashboard.ActivityCount)
	assert.Empty(t, dashboard.ActivityDistribution)
}

func TestGetAdminDashboard(t *testing.T) {
	day := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	facultyRepo := newFakeFacultyRepo(
		testFaculty(5, "asha@univ.edu", "9876543210"),
		testFaculty(7, "vikram@univ.edu", "9123456789"),
	)
	activityRepo := newFakeActivityRepo(
		dashboardActivity(1, 5, "Workshop", day),
		dashboardActivity(2, 5, "Seminar", day.AddDate(0, 0, 1)),
		dashboardActivity(3, 7, "Research", day.AddDate(0, 0, 2)),
		dashboardActivity(4, 7, "Workshop", day.AddDate(0, 0, 3)),
		dashboardActivity(5, 5, "Seminar", day.AddDate(0, 0, 4)),
		dashboardActivity(6, 7, "Workshop", day.AddDate(0, 0, 5)),
	)
	svc := NewDashboardService(facultyRepo, activityRepo, newFakeSubjectRepo(), newFakeAppraisalRepo())

	dashboard, err := svc.GetAdminDashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, dashboard.FacultyCount)
	assert.Equal(t, 6, dashboard.ActivityCount)
	assert.Zero(t, dashboard.SubjectCount)
	require.Len(t, dashboard.RecentActivities, 5, "feed is capped at five")
	assert.Equal(t, int64(6), dashboard.RecentActivities[0].ID, "newest first")
}
