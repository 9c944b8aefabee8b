package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/karthik/facultydesk/internal/app/models/dto"
	"github.com/karthik/facultydesk/internal/middleware"
)

// DashboardService is the dashboard surface the controller needs
type DashboardService interface {
	GetAdminDashboard(ctx context.Context) (*dto.AdminDashboard, error)
	GetFacultyDashboard(ctx context.Context, facultyID int64) (*dto.FacultyDashboard, error)
}

// DashboardController handles the admin overview and per-faculty dashboards
type DashboardController struct {
	dashboardService DashboardService
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(dashboardService DashboardService) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

// GetAdminDashboard returns entity counts and the most recent activities
// @Summary Admin dashboard
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.AdminDashboard} "Dashboard retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Admin role required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /dashboard [get]
func (c *DashboardController) GetAdminDashboard(ctx *gin.Context) {
	dashboard, err := c.dashboardService.GetAdminDashboard(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dashboard))
}

// GetMyDashboard returns the authenticated faculty member's dashboard
// @Summary Faculty dashboard
// @Description Returns own counts, activity feed and per-type activity distribution
// @Tags me
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.FacultyDashboard} "Dashboard retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Faculty not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /me/dashboard [get]
func (c *DashboardController) GetMyDashboard(ctx *gin.Context) {
	facultyID, ok := middleware.GetFacultyID(ctx)
	if !ok {
		return
	}

	dashboard, err := c.dashboardService.GetFacultyDashboard(ctx, facultyID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dashboard))
}
