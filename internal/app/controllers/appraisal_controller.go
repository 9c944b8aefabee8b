package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/karthik/facultydesk/internal/app/models"
	"github.com/karthik/facultydesk/internal/app/models/dto"
	"github.com/karthik/facultydesk/internal/middleware"
)

// AppraisalService is the appraisal surface the controller needs
type AppraisalService interface {
	CreateAppraisal(ctx context.Context, appraisal *models.Appraisal) error
	GetAppraisalByID(ctx context.Context, id int64) (*models.Appraisal, error)
	GetAllAppraisals(ctx context.Context) ([]*models.Appraisal, error)
	UpdateAppraisal(ctx context.Context, appraisal *models.Appraisal) error
	DeleteAppraisal(ctx context.Context, id int64) error
}

// AppraisalController handles appraisal endpoints
type AppraisalController struct {
	appraisalService AppraisalService
}

// NewAppraisalController creates a new AppraisalController
func NewAppraisalController(appraisalService AppraisalService) *AppraisalController {
	return &AppraisalController{
		appraisalService: appraisalService,
	}
}

// CreateAppraisal handles appraisal creation
// @Summary Create a new appraisal
// @Tags appraisals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAppraisalRequest true "Appraisal information"
// @Success 201 {object} dto.APIResponse{data=dto.AppraisalResponse} "Appraisal created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Admin role required"
// @Failure 404 {object} dto.ErrorResponse "Referenced faculty or year not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /appraisals [post]
func (c *AppraisalController) CreateAppraisal(ctx *gin.Context) {
	var req dto.CreateAppraisalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindJSONError(ctx, err, "Invalid appraisal data")
		return
	}

	appraisal, err := req.ToModel()
	if err != nil {
		bindJSONError(ctx, err, "Invalid appraisal data")
		return
	}

	if err := c.appraisalService.CreateAppraisal(ctx, appraisal); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.NewAppraisalResponse(appraisal)))
}

// GetAppraisalByID retrieves a single appraisal's fields, the shape the edit
// form loads before submitting an update
// @Summary Get appraisal by ID
// @Tags appraisals
// @Produce json
// @Security BearerAuth
// @Param id path int true "Appraisal ID"
// @Success 200 {object} dto.APIResponse{data=dto.AppraisalResponse} "Appraisal retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid appraisal ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Appraisal not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /appraisals/{id} [get]
func (c *AppraisalController) GetAppraisalByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	appraisal, err := c.appraisalService.GetAppraisalByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewAppraisalResponse(appraisal)))
}

// GetAllAppraisals retrieves all appraisals
// @Summary List appraisals
// @Tags appraisals
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.AppraisalResponse} "Appraisals retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /appraisals [get]
func (c *AppraisalController) GetAllAppraisals(ctx *gin.Context) {
	appraisals, err := c.appraisalService.GetAllAppraisals(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewAppraisalListResponse(appraisals)))
}

// UpdateAppraisal updates an appraisal
// @Summary Update an appraisal
// @Tags appraisals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Appraisal ID"
// @Param request body dto.UpdateAppraisalRequest true "Appraisal information"
// @Success 200 {object} dto.APIResponse{data=dto.AppraisalResponse} "Appraisal updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Admin role required"
// @Failure 404 {object} dto.ErrorResponse "Appraisal not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /appraisals/{id} [put]
func (c *AppraisalController) UpdateAppraisal(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateAppraisalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindJSONError(ctx, err, "Invalid appraisal data")
		return
	}

	appraisal, err := req.ToModel()
	if err != nil {
		bindJSONError(ctx, err, "Invalid appraisal data")
		return
	}
	appraisal.ID = id

	if err := c.appraisalService.UpdateAppraisal(ctx, appraisal); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewAppraisalResponse(appraisal)))
}

// DeleteAppraisal deletes an appraisal
// @Summary Delete an appraisal
// @Tags appraisals
// @Produce json
// @Security BearerAuth
// @Param id path int true "Appraisal ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Appraisal deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid appraisal ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Admin role required"
// @Failure 404 {object} dto.ErrorResponse "Appraisal not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /appraisals/{id} [delete]
func (c *AppraisalController) DeleteAppraisal(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.appraisalService.DeleteAppraisal(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Appraisal deleted"}))
}
