package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/karthik/facultydesk/internal/app/models"
	"github.com/karthik/facultydesk/internal/app/models/dto"
	"github.com/karthik/facultydesk/internal/middleware"
)

// ActivityTypeService is the activity type surface the controller needs
type ActivityTypeService interface {
	CreateActivityType(ctx context.Context, activityType *models.ActivityType) error
	GetActivityTypeByID(ctx context.Context, id int64) (*models.ActivityType, error)
	GetAllActivityTypes(ctx context.Context) ([]*models.ActivityType, error)
	UpdateActivityType(ctx context.Context, activityType *models.ActivityType) error
	DeleteActivityType(ctx context.Context, id int64) error
}

// ActivityTypeController handles activity type endpoints
type ActivityTypeController struct {
	typeService ActivityTypeService
}

// NewActivityTypeController creates a new ActivityTypeController
func NewActivityTypeController(typeService ActivityTypeService) *ActivityTypeController {
	return &ActivityTypeController{
		typeService: typeService,
	}
}

// CreateActivityType handles activity type creation
// @Summary Create a new activity type
// @Tags activity-types
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateActivityTypeRequest true "Activity type information"
// @Success 201 {object} dto.APIResponse{data=models.ActivityType} "Activity type created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Admin role required"
// @Failure 409 {object} dto.ErrorResponse "Activity type name already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /activity-types [post]
func (c *ActivityTypeController) CreateActivityType(ctx *gin.Context) {
	var req dto.CreateActivityTypeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindJSONError(ctx, err, "Invalid activity type data")
		return
	}

	activityType := &models.ActivityType{Name: req.Name, Category: req.Category}
	if err := c.typeService.CreateActivityType(ctx, activityType); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(activityType))
}

// GetActivityTypeByID retrieves an activity type by ID
// @Summary Get activity type by ID
// @Tags activity-types
// @Produce json
// @Security BearerAuth
// @Param id path int true "Activity type ID"
// @Success 200 {object} dto.APIResponse{data=models.ActivityType} "Activity type retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid activity type ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Activity type not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /activity-types/{id} [get]
func (c *ActivityTypeController) GetActivityTypeByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	activityType, err := c.typeService.GetActivityTypeByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(activityType))
}

// GetAllActivityTypes retrieves all activity types
// @Summary List activity types
// @Tags activity-types
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.ActivityType} "Activity types retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /activity-types [get]
func (c *ActivityTypeController) GetAllActivityTypes(ctx *gin.Context) {
	types, err := c.typeService.GetAllActivityTypes(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(types))
}

// UpdateActivityType updates an activity type
// @Summary Update an activity type
// @Tags activity-types
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Activity type ID"
// @Param request body dto.UpdateActivityTypeRequest true "Activity type information"
// @Success 200 {object} dto.APIResponse{data=models.ActivityType} "Activity type updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Admin role required"
// @Failure 404 {object} dto.ErrorResponse "Activity type not found"
// @Failure 409 {object} dto.ErrorResponse "Activity type name already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /activity-types/{id} [put]
func (c *ActivityTypeController) UpdateActivityType(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateActivityTypeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindJSONError(ctx, err, "Invalid activity type data")
		return
	}

	activityType := &models.ActivityType{ID: id, Name: req.Name, Category: req.Category}
	if err := c.typeService.UpdateActivityType(ctx, activityType); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(activityType))
}

// DeleteActivityType deletes an activity type
// @Summary Delete an activity type
// @Description Deletes an activity type; activities of that type are removed with it
// @Tags activity-types
// @Produce json
// @Security BearerAuth
// @Param id path int true "Activity type ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Activity type deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid activity type ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Admin role required"
// @Failure 404 {object} dto.ErrorResponse "Activity type not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /activity-types/{id} [delete]
func (c *ActivityTypeController) DeleteActivityType(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.typeService.DeleteActivityType(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Activity type deleted"}))
}
