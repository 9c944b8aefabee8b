package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/karthik/facultydesk/internal/app/models"
	"github.com/karthik/facultydesk/internal/app/models/dto"
	"github.com/karthik/facultydesk/internal/middleware"
)

// AcademicYearService is the academic year surface the controller needs
type AcademicYearService interface {
	CreateAcademicYear(ctx context.Context, year *models.AcademicYear) error
	GetAcademicYearByID(ctx context.Context, id int64) (*models.AcademicYear, error)
	GetAllAcademicYears(ctx context.Context) ([]*models.AcademicYear, error)
	UpdateAcademicYear(ctx context.Context, year *models.AcademicYear) error
	DeleteAcademicYear(ctx context.Context, id int64) error
}

// AcademicYearController handles academic year endpoints
type AcademicYearController struct {
	yearService AcademicYearService
}

// NewAcademicYearController creates a new AcademicYearController
func NewAcademicYearController(yearService AcademicYearService) *AcademicYearController {
	return &AcademicYearController{
		yearService: yearService,
	}
}

// CreateAcademicYear handles academic year creation
// @Summary Create a new academic year
// @Tags academic-years
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAcademicYearRequest true "Academic year range"
// @Success 201 {object} dto.APIResponse{data=models.AcademicYear} "Academic year created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Admin role required"
// @Failure 409 {object} dto.ErrorResponse "Academic year already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /academic-years [post]
func (c *AcademicYearController) CreateAcademicYear(ctx *gin.Context) {
	var req dto.CreateAcademicYearRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindJSONError(ctx, err, "Invalid academic year data")
		return
	}

	year := &models.AcademicYear{YearStart: req.YearStart, YearEnd: req.YearEnd}
	if err := c.yearService.CreateAcademicYear(ctx, year); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(year))
}

// GetAcademicYearByID retrieves an academic year by ID
// @Summary Get academic year by ID
// @Tags academic-years
// @Produce json
// @Security BearerAuth
// @Param id path int true "Academic year ID"
// @Success 200 {object} dto.APIResponse{data=models.AcademicYear} "Academic year retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid academic year ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Academic year not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /academic-years/{id} [get]
func (c *AcademicYearController) GetAcademicYearByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	year, err := c.yearService.GetAcademicYearByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(year))
}

// GetAllAcademicYears retrieves all academic years
// @Summary List academic years
// @Tags academic-years
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.AcademicYear} "Academic years retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /academic-years [get]
func (c *AcademicYearController) GetAllAcademicYears(ctx *gin.Context) {
	years, err := c.yearService.GetAllAcademicYears(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(years))
}

// UpdateAcademicYear updates an academic year
// @Summary Update an academic year
// @Tags academic-years
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Academic year ID"
// @Param request body dto.UpdateAcademicYearRequest true "Academic year range"
// @Success 200 {object} dto.APIResponse{data=models.AcademicYear} "Academic year updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Admin role required"
// @Failure 404 {object} dto.ErrorResponse "Academic year not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /academic-years/{id} [put]
func (c *AcademicYearController) UpdateAcademicYear(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateAcademicYearRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindJSONError(ctx, err, "Invalid academic year data")
		return
	}

	year := &models.AcademicYear{ID: id, YearStart: req.YearStart, YearEnd: req.YearEnd}
	if err := c.yearService.UpdateAcademicYear(ctx, year); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(year))
}

// DeleteAcademicYear deletes an academic year
// @Summary Delete an academic year
// @Tags academic-years
// @Produce json
// @Security BearerAuth
// @Param id path int true "Academic year ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Academic year deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid academic year ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Admin role required"
// @Failure 404 {object} dto.ErrorResponse "Academic year not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /academic-years/{id} [delete]
func (c *AcademicYearController) DeleteAcademicYear(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.yearService.DeleteAcademicYear(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Academic year deleted"}))
}
