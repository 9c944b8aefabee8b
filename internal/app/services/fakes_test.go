package services

import (
	"context"
	"sort"

	"github.com/karthik/facultydesk/internal/app/models"
	"github.com/karthik/facultydesk/internal/app/repositories"
	"github.com/karthik/facultydesk/internal/pkg/apperrors"
)

// In-memory repository fakes backing the service tests.

type fakeFacultyRepo struct {
	faculties map[int64]*models.Faculty
	nextID    int64
	creates   int
	updates   int
	deletes   int
}

func newFakeFacultyRepo(faculties ...*models.Faculty) *fakeFacultyRepo {
	r := &fakeFacultyRepo{faculties: make(map[int64]*models.Faculty), nextID: 1}
	for _, f := range faculties {
		if f.ID >= r.nextID {
			r.nextID = f.ID + 1
		}
		r.faculties[f.ID] = f
	}
	return r
}

func (r *fakeFacultyRepo) Create(_ context.Context, faculty *models.Faculty) error {
	r.creates++
	faculty.ID = r.nextID
	r.nextID++
	r.faculties[faculty.ID] = faculty
	return nil
}

func (r *fakeFacultyRepo) GetByID(_ context.Context, id int64) (*models.Faculty, error) {
	f, ok := r.faculties[id]
	if !ok {
		return nil, apperrors.ErrFacultyNotFound
	}
	return f, nil
}

func (r *fakeFacultyRepo) GetAll(_ context.Context) ([]*models.Faculty, error) {
	ids := make([]int64, 0, len(r.faculties))
	for id := range r.faculties {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]*models.Faculty, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.faculties[id])
	}
	return out, nil
}

func (r *fakeFacultyRepo) EmailExists(_ context.Context, email string, excludeID int64) (bool, error) {
	for id, f := range r.faculties {
		if id != excludeID && f.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeFacultyRepo) PhoneExists(_ context.Context, phone string, excludeID int64) (bool, error) {
	for id, f := range r.faculties {
		if id == excludeID {
			continue
		}
		if (f.Phone != nil && *f.Phone == phone) || (f.AltPhone != nil && *f.AltPhone == phone) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeFacultyRepo) Update(_ context.Context, faculty *models.Faculty) error {
	if _, ok := r.faculties[faculty.ID]; !ok {
		return apperrors.ErrFacultyNotFound
	}
	r.updates++
	r.faculties[faculty.ID] = faculty
	return nil
}

func (r *fakeFacultyRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.faculties[id]; !ok {
		return apperrors.ErrFacultyNotFound
	}
	r.deletes++
	delete(r.faculties, id)
	return nil
}

func (r *fakeFacultyRepo) Count(_ context.Context) (int, error) {
	return len(r.faculties), nil
}

type fakeAcademicYearRepo struct {
	years  map[int64]*models.AcademicYear
	nextID int64
}

func newFakeAcademicYearRepo(years ...*models.AcademicYear) *fakeAcademicYearRepo {
	r := &fakeAcademicYearRepo{years: make(map[int64]*models.AcademicYear), nextID: 1}
	for _, y := range years {
		if y.ID >= r.nextID {
			r.nextID = y.ID + 1
		}
		r.years[y.ID] = y
	}
	return r
}

func (r *fakeAcademicYearRepo) Create(_ context.Context, year *models.AcademicYear) error {
	year.ID = r.nextID
	r.nextID++
	r.years[year.ID] = year
	return nil
}

func (r *fakeAcademicYearRepo) GetByID(_ context.Context, id int64) (*models.AcademicYear, error) {
	y, ok := r.years[id]
	if !ok {
		return nil, apperrors.ErrAcademicYearNotFound
	}
	return y, nil
}

func (r *fakeAcademicYearRepo) GetAll(_ context.Context) ([]*models.AcademicYear, error) {
	out := make([]*models.AcademicYear, 0, len(r.years))
	for _, y := range r.years {
		out = append(out, y)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].YearStart > out[j].YearStart })
	return out, nil
}

func (r *fakeAcademicYearRepo) ExistsByRange(_ context.Context, start, end int) (bool, error) {
	for _, y := range r.years {
		if y.YearStart == start && y.YearEnd == end {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeAcademicYearRepo) Update(_ context.Context, year *models.AcademicYear) error {
	if _, ok := r.years[year.ID]; !ok {
		return apperrors.ErrAcademicYearNotFound
	}
	r.years[year.ID] = year
	return nil
}

func (r *fakeAcademicYearRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.years[id]; !ok {
		return apperrors.ErrAcademicYearNotFound
	}
	delete(r.years, id)
	return nil
}

type fakeActivityTypeRepo struct {
	types  map[int64]*models.ActivityType
	nextID int64
}

func newFakeActivityTypeRepo(types ...*models.ActivityType) *fakeActivityTypeRepo {
	r := &fakeActivityTypeRepo{types: make(map[int64]*models.ActivityType), nextID: 1}
	for _, t := range types {
		if t.ID >= r.nextID {
			r.nextID = t.ID + 1
		}
		r.types[t.ID] = t
	}
	return r
}

func (r *fakeActivityTypeRepo) Create(_ context.Context, activityType *models.ActivityType) error {
	activityType.ID = r.nextID
	r.nextID++
	r.types[activityType.ID] = activityType
	return nil
}

func (r *fakeActivityTypeRepo) GetByID(_ context.Context, id int64) (*models.ActivityType, error) {
	t, ok := r.types[id]
	if !ok {
		return nil, apperrors.ErrActivityTypeNotFound
	}
	return t, nil
}

func (r *fakeActivityTypeRepo) GetAll(_ context.Context) ([]*models.ActivityType, error) {
	out := make([]*models.ActivityType, 0, len(r.types))
	for _, t := range r.types {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeActivityTypeRepo) NameExists(_ context.Context, name string, excludeID int64) (bool, error) {
	for id, t := range r.types {
		if id != excludeID && t.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeActivityTypeRepo) Update(_ context.Context, activityType *models.ActivityType) error {
	if _, ok := r.types[activityType.ID]; !ok {
		return apperrors.ErrActivityTypeNotFound
	}
	r.types[activityType.ID] = activityType
	return nil
}

func (r *fakeActivityTypeRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.types[id]; !ok {
		return apperrors.ErrActivityTypeNotFound
	}
	delete(r.types, id)
	return nil
}

type fakeActivityRepo struct {
	activities map[int64]*models.Activity
	nextID     int64
	creates    int
	updates    int
}

func newFakeActivityRepo(activities ...*models.Activity) *fakeActivityRepo {
	r := &fakeActivityRepo{activities: make(map[int64]*models.Activity), nextID: 1}
	for _, a := range activities {
		if a.ID >= r.nextID {
			r.nextID = a.ID + 1
		}
		r.activities[a.ID] = a
	}
	return r
}

func (r *fakeActivityRepo) Create(_ context.Context, activity *models.Activity) error {
	r.creates++
	activity.ID = r.nextID
	r.nextID++
	r.activities[activity.ID] = activity
	return nil
}

func (r *fakeActivityRepo) GetByID(_ context.Context, id int64) (*models.Activity, error) {
	a, ok := r.activities[id]
	if !ok {
		return nil, apperrors.ErrActivityNotFound
	}
	return a, nil
}

func (r *fakeActivityRepo) sorted() []*models.Activity {
	out := make([]*models.Activity, 0, len(r.activities))
	for _, a := range r.activities {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out
}

func (r *fakeActivityRepo) GetAll(_ context.Context) ([]*models.Activity, error) {
	return r.sorted(), nil
}

func (r *fakeActivityRepo) GetByFacultyID(_ context.Context, facultyID int64) ([]*models.Activity, error) {
	var out []*models.Activity
	for _, a := range r.sorted() {
		if a.FacultyID == facultyID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeActivityRepo) GetRecent(_ context.Context, limit int) ([]*models.Activity, error) {
	all := r.sorted()
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (r *fakeActivityRepo) Update(_ context.Context, activity *models.Activity) error {
	if _, ok := r.activities[activity.ID]; !ok {
		return apperrors.ErrActivityNotFound
	}
	r.updates++
	r.activities[activity.ID] = activity
	return nil
}

func (r *fakeActivityRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.activities[id]; !ok {
		return apperrors.ErrActivityNotFound
	}
	delete(r.activities, id)
	return nil
}

func (r *fakeActivityRepo) Count(_ context.Context) (int, error) {
	return len(r.activities), nil
}

func (r *fakeActivityRepo) CountByFacultyID(_ context.Context, facultyID int64) (int, error) {
	count := 0
	for _, a := range r.activities {
		if a.FacultyID == facultyID {
			count++
		}
	}
	return count, nil
}

func (r *fakeActivityRepo) CountByTypeForFaculty(_ context.Context, facultyID int64) ([]repositories.TypeCount, error) {
	counts := make(map[string]int)
	for _, a := range r.activities {
		if a.FacultyID != facultyID || a.ActivityType == nil {
			continue
		}
		counts[a.ActivityType.Name]++
	}
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	// Descending count, the repository's ordering
	sort.Slice(names, func(i, j int) bool {
		if counts[names[i]] != counts[names[j]] {
			return counts[names[i]] > counts[names[j]]
		}
		return names[i] < names[j]
	})
	out := make([]repositories.TypeCount, 0, len(names))
	for _, name := range names {
		out = append(out, repositories.TypeCount{Name: name, Count: counts[name]})
	}
	return out, nil
}

type fakeSubjectRepo struct {
	subjects map[string]*models.Subject
	creates  int
}

func newFakeSubjectRepo(subjects ...*models.Subject) *fakeSubjectRepo {
	r := &fakeSubjectRepo{subjects: make(map[string]*models.Subject)}
	for _, s := range subjects {
		r.subjects[s.CourseCode] = s
	}
	return r
}

func (r *fakeSubjectRepo) Create(_ context.Context, subject *models.Subject) error {
	if _, ok := r.subjects[subject.CourseCode]; ok {
		return apperrors.ErrSubjectExists
	}
	r.creates++
	r.subjects[subject.CourseCode] = subject
	return nil
}

func (r *fakeSubjectRepo) GetByCode(_ context.Context, courseCode string) (*models.Subject, error) {
	s, ok := r.subjects[courseCode]
	if !ok {
		return nil, apperrors.ErrSubjectNotFound
	}
	return s, nil
}

func (r *fakeSubjectRepo) GetAll(_ context.Context) ([]*models.Subject, error) {
	codes := make([]string, 0, len(r.subjects))
	for code := range r.subjects {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	out := make([]*models.Subject, 0, len(codes))
	for _, code := range codes {
		out = append(out, r.subjects[code])
	}
	return out, nil
}

func (r *fakeSubjectRepo) GetByFacultyID(_ context.Context, facultyID int64) ([]*models.Subject, error) {
	all, _ := r.GetAll(context.Background())
	var out []*models.Subject
	for _, s := range all {
		if s.FacultyID != nil && *s.FacultyID == facultyID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSubjectRepo) Update(_ context.Context, subject *models.Subject) error {
	if _, ok := r.subjects[subject.CourseCode]; !ok {
		return apperrors.ErrSubjectNotFound
	}
	r.subjects[subject.CourseCode] = subject
	return nil
}

func (r *fakeSubjectRepo) Delete(_ context.Context, courseCode string) error {
	if _, ok := r.subjects[courseCode]; !ok {
		return apperrors.ErrSubjectNotFound
	}
	delete(r.subjects, courseCode)
	return nil
}

func (r *fakeSubjectRepo) Count(_ context.Context) (int, error) {
	return len(r.subjects), nil
}

func (r *fakeSubjectRepo) CountByFacultyID(_ context.Context, facultyID int64) (int, error) {
	count := 0
	for _, s := range r.subjects {
		if s.FacultyID != nil && *s.FacultyID == facultyID {
			count++
		}
	}
	return count, nil
}

type fakeAppraisalRepo struct {
	appraisals map[int64]*models.Appraisal
	nextID     int64
}

func newFakeAppraisalRepo(appraisals ...*models.Appraisal) *fakeAppraisalRepo {
	r := &fakeAppraisalRepo{appraisals: make(map[int64]*models.Appraisal), nextID: 1}
	for _, a := range appraisals {
		if a.ID >= r.nextID {
			r.nextID = a.ID + 1
		}
		r.appraisals[a.ID] = a
	}
	return r
}

func (r *fakeAppraisalRepo) Create(_ context.Context, appraisal *models.Appraisal) error {
	appraisal.ID = r.nextID
	r.nextID++
	r.appraisals[appraisal.ID] = appraisal
	return nil
}

func (r *fakeAppraisalRepo) GetByID(_ context.Context, id int64) (*models.Appraisal, error) {
	a, ok := r.appraisals[id]
	if !ok {
		return nil, apperrors.ErrAppraisalNotFound
	}
	return a, nil
}

func (r *fakeAppraisalRepo) GetAll(_ context.Context) ([]*models.Appraisal, error) {
	out := make([]*models.Appraisal, 0, len(r.appraisals))
	for _, a := range r.appraisals {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (r *fakeAppraisalRepo) GetByFacultyID(_ context.Context, facultyID int64) ([]*models.Appraisal, error) {
	all, _ := r.GetAll(context.Background())
	var out []*models.Appraisal
	for _, a := range all {
		if a.FacultyID == facultyID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAppraisalRepo) Update(_ context.Context, appraisal *models.Appraisal) error {
	if _, ok := r.appraisals[appraisal.ID]; !ok {
		return apperrors.ErrAppraisalNotFound
	}
	r.appraisals[appraisal.ID] = appraisal
	return nil
}

func (r *fakeAppraisalRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.appraisals[id]; !ok {
		return apperrors.ErrAppraisalNotFound
	}
	delete(r.appraisals, id)
	return nil
}

func (r *fakeAppraisalRepo) Count(_ context.Context) (int, error) {
	return len(r.appraisals), nil
}
