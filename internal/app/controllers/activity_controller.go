package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/karthik/facultydesk/internal/app/models"
	"github.com/karthik/facultydesk/internal/app/models/dto"
	"github.com/karthik/facultydesk/internal/middleware"
)

// ActivityService is the activity surface the controller needs
type ActivityService interface {
	CreateActivity(ctx context.Context, activity *models.Activity) error
	CreateOwnActivity(ctx context.Context, activity *models.Activity, facultyID int64) error
	GetActivityByID(ctx context.Context, id int64) (*models.Activity, error)
	GetAllActivities(ctx context.Context) ([]*models.Activity, error)
	GetActivitiesByFacultyID(ctx context.Context, facultyID int64) ([]*models.Activity, error)
	UpdateActivity(ctx context.Context, activity *models.Activity) error
	UpdateOwnActivity(ctx context.Context, activity *models.Activity, facultyID int64) error
	DeleteActivity(ctx context.Context, id int64) error
}

// ActivityController handles activity endpoints, both administrative and the
// authenticated faculty member's own
type ActivityController struct {
	activityService ActivityService
}

// NewActivityController creates a new ActivityController
func NewActivityController(activityService ActivityService) *ActivityController {
	return &ActivityController{
		activityService: activityService,
	}
}

// CreateActivity handles activity creation
// @Summary Create a new activity
// @Description Creates an activity; the faculty, academic year and type references must all resolve
// @Tags activities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateActivityRequest true "Activity information"
// @Success 201 {object} dto.APIResponse{data=dto.ActivityResponse} "Activity created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Admin role required"
// @Failure 404 {object} dto.ErrorResponse "Referenced faculty, year or type not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /activities [post]
func (c *ActivityController) CreateActivity(ctx *gin.Context) {
	var req dto.CreateActivityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindJSONError(ctx, err, "Invalid activity data")
		return
	}

	activity, err := req.ToModel()
	if err != nil {
		bindJSONError(ctx, err, "Invalid activity data")
		return
	}

	if err := c.activityService.CreateActivity(ctx, activity); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.NewActivityResponse(activity)))
}

// GetActivityByID retrieves an activity by ID
// @Summary Get activity by ID
// @Tags activities
// @Produce json
// @Security BearerAuth
// @Param id path int true "Activity ID"
// @Success 200 {object} dto.APIResponse{data=dto.ActivityResponse} "Activity retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid activity ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Activity not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /activities/{id} [get]
func (c *ActivityController) GetActivityByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	activity, err := c.activityService.GetActivityByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewActivityResponse(activity)))
}

// GetAllActivities retrieves all activities
// @Summary List activities
// @Description Retrieves all activities joined with faculty, academic year and type, newest first
// @Tags activities
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.ActivityResponse} "Activities retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /activities [get]
func (c *ActivityController) GetAllActivities(ctx *gin.Context) {
	activities, err := c.activityService.GetAllActivities(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewActivityListResponse(activities)))
}

// UpdateActivity updates an activity
// @Summary Update an activity
// @Tags activities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Activity ID"
// @Param request body dto.UpdateActivityRequest true "Activity information"
// @Success 200 {object} dto.APIResponse{data=dto.ActivityResponse} "Activity updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Admin role required"
// @Failure 404 {object} dto.ErrorResponse "Activity not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /activities/{id} [put]
func (c *ActivityController) UpdateActivity(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateActivityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindJSONError(ctx, err, "Invalid activity data")
		return
	}

	activity, err := req.ToModel()
	if err != nil {
		bindJSONError(ctx, err, "Invalid activity data")
		return
	}
	activity.ID = id

	if err := c.activityService.UpdateActivity(ctx, activity); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewActivityResponse(activity)))
}

// DeleteActivity deletes an activity
// @Summary Delete an activity
// @Tags activities
// @Produce json
// @Security BearerAuth
// @Param id path int true "Activity ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Activity deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid activity ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Admin role required"
// @Failure 404 {object} dto.ErrorResponse "Activity not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /activities/{id} [delete]
func (c *ActivityController) DeleteActivity(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.activityService.DeleteActivity(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Activity deleted"}))
}

// GetMyActivities retrieves the authenticated faculty member's activities
// @Summary List own activities
// @Tags me
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.ActivityResponse} "Activities retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /me/activities [get]
func (c *ActivityController) GetMyActivities(ctx *gin.Context) {
	facultyID, ok := middleware.GetFacultyID(ctx)
	if !ok {
		return
	}

	activities, err := c.activityService.GetActivitiesByFacultyID(ctx, facultyID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewActivityListResponse(activities)))
}

// CreateMyActivity creates an activity owned by the authenticated faculty
// member; any faculty reference in the body is ignored
// @Summary Create own activity
// @Tags me
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateActivityRequest true "Activity information"
// @Success 201 {object} dto.APIResponse{data=dto.ActivityResponse} "Activity created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Referenced year or type not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /me/activities [post]
func (c *ActivityController) CreateMyActivity(ctx *gin.Context) {
	facultyID, ok := middleware.GetFacultyID(ctx)
	if !ok {
		return
	}

	var req dto.CreateActivityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindJSONError(ctx, err, "Invalid activity data")
		return
	}

	activity, err := req.ToModel()
	if err != nil {
		bindJSONError(ctx, err, "Invalid activity data")
		return
	}

	if err := c.activityService.CreateOwnActivity(ctx, activity, facultyID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.NewActivityResponse(activity)))
}

// UpdateMyActivity updates one of the authenticated faculty member's own
// activities; an activity owned by another faculty is refused
// @Summary Update own activity
// @Tags me
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Activity ID"
// @Param request body dto.UpdateActivityRequest true "Activity information"
// @Success 200 {object} dto.APIResponse{data=dto.ActivityResponse} "Activity updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Activity belongs to another faculty"
// @Failure 404 {object} dto.ErrorResponse "Activity not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /me/activities/{id} [put]
func (c *ActivityController) UpdateMyActivity(ctx *gin.Context) {
	facultyID, ok := middleware.GetFacultyID(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateActivityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindJSONError(ctx, err, "Invalid activity data")
		return
	}

	activity, err := req.ToModel()
	if err != nil {
		bindJSONError(ctx, err, "Invalid activity data")
		return
	}
	activity.ID = id

	if err := c.activityService.UpdateOwnActivity(ctx, activity, facultyID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewActivityResponse(activity)))
}
