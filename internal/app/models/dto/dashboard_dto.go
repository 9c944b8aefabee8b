package dto

// AdminDashboard aggregates entity counts plus the most recent activity feed
type AdminDashboard struct {
	FacultyCount     int                `json:"facultyCount"`
	ActivityCount    int                `json:"activityCount"`
	SubjectCount     int                `json:"subjectCount"`
	AppraisalCount   int                `json:"appraisalCount"`
	RecentActivities []ActivityResponse `json:"recentActivities"`
}

// FacultyDashboard aggregates one faculty member's own numbers
type FacultyDashboard struct {
	Faculty              FacultyResponse        `json:"faculty"`
	SubjectCount         int                    `json:"subjectCount"`
	ActivityCount        int                    `json:"activityCount"`
	Activities           []FacultyActivityItem  `json:"activities"`
	ActivityDistribution []ActivityDistribution `json:"activityDistribution"`
}

// FacultyActivityItem is one row of the faculty dashboard activity feed, with
// a display color keyed by the activity type name
type FacultyActivityItem struct {
	Title string `json:"title"`
	Date  string `json:"date"`
	Type  string `json:"type"`
	Color string `json:"color" example:"bg-primary"`
}

// ActivityDistribution is the per-type share of one faculty's activities
type ActivityDistribution struct {
	Name       string  `json:"name"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage" example:"33.3"`
	Color      string  `json:"color" example:"bg-info"`
}
