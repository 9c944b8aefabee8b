package controllers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/karthik/facultydesk/internal/app/models"
	"github.com/karthik/facultydesk/internal/app/models/dto"
	"github.com/karthik/facultydesk/internal/middleware"
)

// SubjectService is the subject surface the controller needs
type SubjectService interface {
	CreateSubject(ctx context.Context, subject *models.Subject) error
	GetSubjectByCode(ctx context.Context, courseCode string) (*models.Subject, error)
	GetAllSubjects(ctx context.Context) ([]*models.Subject, error)
	GetSubjectsByFacultyID(ctx context.Context, facultyID int64) ([]*models.Subject, error)
	UpdateSubject(ctx context.Context, subject *models.Subject) error
	DeleteSubject(ctx context.Context, courseCode string) error
}

// SubjectController handles subject endpoints
type SubjectController struct {
	subjectService SubjectService
}

// NewSubjectController creates a new SubjectController
func NewSubjectController(subjectService SubjectService) *SubjectController {
	return &SubjectController{
		subjectService: subjectService,
	}
}

// courseCodeParam reads the course code path parameter
func courseCodeParam(ctx *gin.Context) (string, bool) {
	code := strings.TrimSpace(ctx.Param("courseCode"))
	if code == "" {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course code parameter")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return "", false
	}
	return code, true
}

// CreateSubject handles subject creation
// @Summary Create a new subject
// @Description Creates a subject keyed by course code; faculty and academic year assignments are optional
// @Tags subjects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateSubjectRequest true "Subject information"
// @Success 201 {object} dto.APIResponse{data=dto.SubjectResponse} "Subject created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Admin role required"
// @Failure 404 {object} dto.ErrorResponse "Referenced faculty or year not found"
// @Failure 409 {object} dto.ErrorResponse "Course code already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /subjects [post]
func (c *SubjectController) CreateSubject(ctx *gin.Context) {
	var req dto.CreateSubjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindJSONError(ctx, err, "Invalid subject data")
		return
	}

	subject := &models.Subject{
		CourseCode:     req.CourseCode,
		SubjectName:    req.SubjectName,
		FacultyID:      req.FacultyID,
		AcademicYearID: req.AcademicYearID,
	}
	if err := c.subjectService.CreateSubject(ctx, subject); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.NewSubjectResponse(subject)))
}

// GetSubjectByCode retrieves a subject by course code
// @Summary Get subject by course code
// @Tags subjects
// @Produce json
// @Security BearerAuth
// @Param courseCode path string true "Course code"
// @Success 200 {object} dto.APIResponse{data=dto.SubjectResponse} "Subject retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid course code"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Subject not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /subjects/{courseCode} [get]
func (c *SubjectController) GetSubjectByCode(ctx *gin.Context) {
	code, ok := courseCodeParam(ctx)
	if !ok {
		return
	}

	subject, err := c.subjectService.GetSubjectByCode(ctx, code)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewSubjectResponse(subject)))
}

// GetAllSubjects retrieves all subjects
// @Summary List subjects
// @Tags subjects
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.SubjectResponse} "Subjects retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /subjects [get]
func (c *SubjectController) GetAllSubjects(ctx *gin.Context) {
	subjects, err := c.subjectService.GetAllSubjects(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewSubjectListResponse(subjects)))
}

// UpdateSubject updates a subject
// @Summary Update a subject
// @Tags subjects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param courseCode path string true "Course code"
// @Param request body dto.UpdateSubjectRequest true "Subject information"
// @Success 200 {object} dto.APIResponse{data=dto.SubjectResponse} "Subject updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Admin role required"
// @Failure 404 {object} dto.ErrorResponse "Subject not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /subjects/{courseCode} [put]
func (c *SubjectController) UpdateSubject(ctx *gin.Context) {
	code, ok := courseCodeParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateSubjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindJSONError(ctx, err, "Invalid subject data")
		return
	}

	subject := &models.Subject{
		CourseCode:     code,
		SubjectName:    req.SubjectName,
		FacultyID:      req.FacultyID,
		AcademicYearID: req.AcademicYearID,
	}
	if err := c.subjectService.UpdateSubject(ctx, subject); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewSubjectResponse(subject)))
}

// DeleteSubject deletes a subject
// @Summary Delete a subject
// @Tags subjects
// @Produce json
// @Security BearerAuth
// @Param courseCode path string true "Course code"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Subject deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid course code"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Admin role required"
// @Failure 404 {object} dto.ErrorResponse "Subject not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /subjects/{courseCode} [delete]
func (c *SubjectController) DeleteSubject(ctx *gin.Context) {
	code, ok := courseCodeParam(ctx)
	if !ok {
		return
	}

	if err := c.subjectService.DeleteSubject(ctx, code); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Subject deleted"}))
}

// GetMySubjects retrieves the authenticated faculty member's subjects
// @Summary List own subjects
// @Tags me
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.SubjectResponse} "Subjects retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /me/subjects [get]
func (c *SubjectController) GetMySubjects(ctx *gin.Context) {
	facultyID, ok := middleware.GetFacultyID(ctx)
	if !ok {
		return
	}

	subjects, err := c.subjectService.GetSubjectsByFacultyID(ctx, facultyID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewSubjectListResponse(subjects)))
}
