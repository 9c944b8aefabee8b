package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karthik/facultydesk/internal/app/models"
	"github.com/karthik/facultydesk/internal/app/models/dto"
	"github.com/karthik/facultydesk/internal/pkg/apperrors"
)

type stubAppraisalService struct {
	appraisal *models.Appraisal
	created   *models.Appraisal
	err       error
}

func (s *stubAppraisalService) CreateAppraisal(_ context.Context, appraisal *models.Appraisal) error {
	if s.err != nil {
		return s.err
	}
	appraisal.ID = 1
	s.created = appraisal
	return nil
}

func (s *stubAppraisalService) GetAppraisalByID(_ context.Context, id int64) (*models.Appraisal, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.appraisal, nil
}

func (s *stubAppraisalService) GetAllAppraisals(_ context.Context) ([]*models.Appraisal, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []*models.Appraisal{s.appraisal}, nil
}

func (s *stubAppraisalService) UpdateAppraisal(_ context.Context, appraisal *models.Appraisal) error {
	return s.err
}

func (s *stubAppraisalService) DeleteAppraisal(_ context.Context, id int64) error {
	return s.err
}

func appraisalRouter(svc AppraisalService) *gin.Engine {
	router := gin.New()
	controller := NewAppraisalController(svc)
	router.POST("/appraisals", controller.CreateAppraisal)
	router.GET("/appraisals", controller.GetAllAppraisals)
	router.GET("/appraisals/:id", controller.GetAppraisalByID)
	router.PUT("/appraisals/:id", controller.UpdateAppraisal)
	router.DELETE("/appraisals/:id", controller.DeleteAppraisal)
	return router
}

func TestCreateAppraisal_Endpoint(t *testing.T) {
	svc := &stubAppraisalService{}
	router := appraisalRouter(svc)

	w := postJSON(router, "/appraisals", `{
		"facultyId": 5,
		"academicYearId": 1,
		"date": "2026-03-15",
		"rating": "A",
		"status": "Completed",
		"comments": "Strong research output"
	}`)
	require.Equal(t, http.StatusCreated, w.Code)

	require.NotNil(t, svc.created)
	assert.Equal(t, int64(5), svc.created.FacultyID)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), svc.created.Date)

	var resp struct {
		Data dto.AppraisalResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.Data.ID)
	assert.Equal(t, "2026-03-15", resp.Data.Date)
}

func TestCreateAppraisal_BadDate(t *testing.T) {
	router := appraisalRouter(&stubAppraisalService{})

	w := postJSON(router, "/appraisals", `{
		"facultyId": 5,
		"academicYearId": 1,
		"date": "15/03/2026",
		"status": "Completed"
	}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateAppraisal_DanglingFaculty(t *testing.T) {
	router := appraisalRouter(&stubAppraisalService{err: apperrors.ErrFacultyNotFound})

	w := postJSON(router, "/appraisals", `{
		"facultyId": 99,
		"academicYearId": 1,
		"date": "2026-03-15",
		"status": "Completed"
	}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetAppraisalByID_EditFormShape(t *testing.T) {
	comments := "Needs more service work"
	svc := &stubAppraisalService{appraisal: &models.Appraisal{
		ID:             3,
		FacultyID:      5,
		AcademicYearID: 1,
		Date:           time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		Rating:         "B",
		Status:         "Pending",
		Comments:       &comments,
	}}
	router := appraisalRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/appraisals/3", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data dto.AppraisalResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(3), resp.Data.ID)
	assert.Equal(t, "2026-03-15", resp.Data.Date)
	assert.Equal(t, "B", resp.Data.Rating)
	require.NotNil(t, resp.Data.Comments)
	assert.Equal(t, comments, *resp.Data.Comments)
}

func TestGetAppraisalByID_BadID(t *testing.T) {
	router := appraisalRouter(&stubAppraisalService{})

	for _, id := range []string{"abc", "0", "-4"} {
		req := httptest.NewRequest(http.MethodGet, "/appraisals/"+id, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code, id)
	}
}

func TestDeleteAppraisal_NotFound(t *testing.T) {
	router := appraisalRouter(&stubAppraisalService{err: apperrors.ErrAppraisalNotFound})

	req := httptest.NewRequest(http.MethodDelete, "/appraisals/9", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
