package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/alqalam/college-backend/internal/app/models"
	"github.com/alqalam/college-backend/internal/app/models/dto"
	"github.com/alqalam/college-backend/internal/app/services"
	"github.com/alqalam/college-backend/internal/middleware"
	"github.com/alqalam/college-backend/internal/pkg/helpers"
)

// PortalController handles the student portal endpoints
type PortalController struct {
	portalService *services.PortalService
}

// NewPortalController creates a new PortalController
func NewPortalController(portalService *services.PortalService) *PortalController {
	return &PortalController{
		portalService: portalService,
	}
}

// Profile returns the signed-in student's profile
// @Summary Student profile
// @Tags portal
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.StudentProfileResponse} "Profile retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Account has no student profile"
// @Router /portal/profile [get]
func (c *PortalController) Profile(ctx *gin.Context) {
	userID, ok := c.userID(ctx)
	if !ok {
		return
	}

	profile, err := c.portalService.Profile(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      profile,
		Timestamp: time.Now(),
	})
}

// Dashboard returns the composed portal landing view
// @Summary Student dashboard
// @Description Composes GPA, credit totals, unread notifications, today's schedule and outstanding balance
// @Tags portal
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.DashboardResponse} "Dashboard retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Account has no student profile"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /portal/dashboard [get]
func (c *PortalController) Dashboard(ctx *gin.Context) {
	userID, ok := c.userID(ctx)
	if !ok {
		return
	}

	dashboard, err := c.portalService.Dashboard(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dashboard,
		Timestamp: time.Now(),
	})
}

// Grades returns the transcript grouped by semester
// @Summary Student grades
// @Tags portal
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.GradesResponse} "Grades retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Account has no student profile"
// @Router /portal/grades [get]
func (c *PortalController) Grades(ctx *gin.Context) {
	userID, ok := c.userID(ctx)
	if !ok {
		return
	}

	grades, err := c.portalService.Grades(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      grades,
		Timestamp: time.Now(),
	})
}

// Schedule returns the weekly schedule of the student's program level
// @Summary Student schedule
// @Tags portal
// @Produce json
// @Security BearerAuth
// @Param semester query string false "Semester (FIRST, SECOND or SUMMER; defaults to the current one)"
// @Success 200 {object} dto.APIResponse{data=[]models.ScheduleEntry} "Schedule retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Account has no student profile"
// @Router /portal/schedule [get]
func (c *PortalController) Schedule(ctx *gin.Context) {
	userID, ok := c.userID(ctx)
	if !ok {
		return
	}

	entries, err := c.portalService.Schedule(ctx, userID, models.Semester(ctx.Query("semester")))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      entries,
		Timestamp: time.Now(),
	})
}

// Documents lists the student's documents
// @Summary Student documents
// @Tags portal
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.StudentDocument} "Documents retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Account has no student profile"
// @Router /portal/documents [get]
func (c *PortalController) Documents(ctx *gin.Context) {
	userID, ok := c.userID(ctx)
	if !ok {
		return
	}

	docs, err := c.portalService.Documents(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      docs,
		Timestamp: time.Now(),
	})
}

// Payments lists the student's fee records
// @Summary Student payments
// @Tags portal
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.PaymentRecord} "Payments retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Account has no student profile"
// @Router /portal/payments [get]
func (c *PortalController) Payments(ctx *gin.Context) {
	userID, ok := c.userID(ctx)
	if !ok {
		return
	}

	payments, err := c.portalService.Payments(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      payments,
		Timestamp: time.Now(),
	})
}

// Notifications lists the student's notifications
// @Summary Student notifications
// @Tags portal
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (1-based)" default(1)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse} "Notifications retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Account has no student profile"
// @Router /portal/notifications [get]
func (c *PortalController) Notifications(ctx *gin.Context) {
	userID, ok := c.userID(ctx)
	if !ok {
		return
	}

	page, size := helpers.ParsePaginationParams(ctx)

	notifications, total, err := c.portalService.Notifications(ctx, userID, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.PaginatedResponse{
			Items:      notifications,
			Pagination: helpers.NewPaginationInfo(total, page, size),
		},
		Timestamp: time.Now(),
	})
}

// MarkNotificationRead flags one notification as read
// @Summary Mark notification read
// @Tags portal
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.MarkNotificationReadRequest true "Notification id"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Notification marked as read"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Notification not found"
// @Router /portal/notifications/read [post]
func (c *PortalController) MarkNotificationRead(ctx *gin.Context) {
	userID, ok := c.userID(ctx)
	if !ok {
		return
	}

	var req dto.MarkNotificationReadRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.portalService.MarkNotificationRead(ctx, userID, req.NotificationID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Notification marked as read"},
		Timestamp: time.Now(),
	})
}

// userID extracts the authenticated user id, answering 401 itself when missing
func (c *PortalController) userID(ctx *gin.Context) (int64, bool) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return userID, true
}
