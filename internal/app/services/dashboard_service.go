package services

import (
	"context"
	"fmt"
	"math"

	"github.com/karthik/facultydesk/internal/app/models/dto"
	"github.com/karthik/facultydesk/internal/pkg/helpers"
)

// Bootstrap contextual classes keyed by activity type name; unknown types
// fall back to bg-secondary.
var activityTypeColors = map[string]string{
	"Workshop": "bg-primary",
	"Seminar":  "bg-success",
	"Research": "bg-warning",
}

// distributionColors cycle across the per-type distribution rows
var distributionColors = []string{"bg-info", "bg-success", "bg-warning"}

const recentActivityLimit = 5

// DashboardService aggregates the admin overview and the per-faculty
// dashboard numbers
type DashboardService struct {
	facultyRepo   FacultyRepository
	activityRepo  ActivityRepository
	subjectRepo   SubjectRepository
	appraisalRepo AppraisalRepository
}

// NewDashboardService creates a new dashboard service instance
func NewDashboardService(facultyRepo FacultyRepository, activityRepo ActivityRepository, subjectRepo SubjectRepository, appraisalRepo AppraisalRepository) *DashboardService {
	return &DashboardService{
		facultyRepo:   facultyRepo,
		activityRepo:  activityRepo,
		subjectRepo:   subjectRepo,
		appraisalRepo: appraisalRepo,
	}
}

// GetAdminDashboard returns entity counts plus the most recently dated
// activities with their relations
func (s *DashboardService) GetAdminDashboard(ctx context.Context) (*dto.AdminDashboard, error) {
	facultyCount, err := s.facultyRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting faculty: %w", err)
	}
	activityCount, err := s.activityRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting activities: %w", err)
	}
	subjectCount, err := s.subjectRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting subjects: %w", err)
	}
	appraisalCount, err := s.appraisalRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting appraisals: %w", err)
	}

	recent, err := s.activityRepo.GetRecent(ctx, recentActivityLimit)
	if err != nil {
		return nil, fmt.Errorf("error retrieving recent activities: %w", err)
	}

	return &dto.AdminDashboard{
		FacultyCount:     facultyCount,
		ActivityCount:    activityCount,
		SubjectCount:     subjectCount,
		AppraisalCount:   appraisalCount,
		RecentActivities: dto.NewActivityListResponse(recent),
	}, nil
}

// GetFacultyDashboard returns one faculty member's own counts, activity feed
// and per-type activity distribution
func (s *DashboardService) GetFacultyDashboard(ctx context.Context, facultyID int64) (*dto.FacultyDashboard, error) {
	faculty, err := s.facultyRepo.GetByID(ctx, facultyID)
	if err != nil {
		return nil, err
	}

	subjectCount, err := s.subjectRepo.CountByFacultyID(ctx, facultyID)
	if err != nil {
		return nil, fmt.Errorf("error counting subjects: %w", err)
	}

	activities, err := s.activityRepo.GetByFacultyID(ctx, facultyID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving activities: %w", err)
	}

	items := make([]dto.FacultyActivityItem, 0, len(activities))
	for _, a := range activities {
		typeName := ""
		if a.ActivityType != nil {
			typeName = a.ActivityType.Name
		}
		items = append(items, dto.FacultyActivityItem{
			Title: a.Title,
			Date:  helpers.FormatDate(a.Date),
			Type:  typeName,
			Color: TypeColor(typeName),
		})
	}

	distribution, err := s.activityDistribution(ctx, facultyID, len(activities))
	if err != nil {
		return nil, err
	}

	return &dto.FacultyDashboard{
		Faculty:              dto.NewFacultyResponse(faculty),
		SubjectCount:         subjectCount,
		ActivityCount:        len(activities),
		Activities:           items,
		ActivityDistribution: distribution,
	}, nil
}

// activityDistribution computes the per-type share of the faculty's
// activities, percentages rounded to one decimal
func (s *DashboardService) activityDistribution(ctx context.Context, facultyID int64, total int) ([]dto.ActivityDistribution, error) {
	counts, err := s.activityRepo.CountByTypeForFaculty(ctx, facultyID)
	if err != nil {
		return nil, fmt.Errorf("error computing activity distribution: %w", err)
	}

	distribution := make([]dto.ActivityDistribution, 0, len(counts))
	for i, tc := range counts {
		var percentage float64
		if total > 0 {
			percentage = math.Round(float64(tc.Count)/float64(total)*1000) / 10
		}
		distribution = append(distribution, dto.ActivityDistribution{
			Name:       tc.Name,
			Count:      tc.Count,
			Percentage: percentage,
			Color:      distributionColors[i%len(distributionColors)],
		})
	}

	return distribution, nil
}

// TypeColor returns the display class for an activity type name
func TypeColor(typeName string) string {
	if color, ok := activityTypeColors[typeName]; ok {
		return color
	}
	return "bg-secondary"
}
