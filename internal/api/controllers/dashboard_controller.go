package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"uobsurvey/internal/models/response_models"
	"uobsurvey/internal/services"
	"uobsurvey/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardService
}

func NewDashboardController(dashboardService services.DashboardService) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

// GetDashboard godoc
// @Summary Get admin dashboard
// @Description Fetch submission and report counts, status breakdown, submission/report series and the most recent submissions
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param start    query string false "RFC3339 start (e.g. 2025-10-01T00:00:00Z)"
// @Param end      query string false "RFC3339 end   (e.g. 2025-10-19T23:59:59Z)"
// @Param last_days query int   false "Relative lookback in days (mutually exclusive with start/end). Default 30"
// @Param interval query string false "Bucket size: day | week | month (default: day)"
// @Param tz       query string false "IANA timezone for bucketing (default: Asia/Singapore)"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/dashboard [get]
func (p *DashboardController) GetDashboard(c *gin.Context) {
	tr, msg := parseTimeRange(c, time.Now().UTC())
	if msg != "" {
		utils.RespondError(c, http.StatusBadRequest, msg)
		return
	}

	report, err := p.dashboardService.BuildDashboard(c.Request.Context(), tr)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, report, "Dashboard data fetched successfully")
}

const (
	defaultDashboardTZ   = "Asia/Singapore"
	defaultDashboardDays = 30
)

// parseTimeRange reads the window and bucketing query parameters. A non-empty
// message means the request is invalid.
func parseTimeRange(c *gin.Context, now time.Time) (response_models.TimeRange, string) {
	tr := response_models.TimeRange{
		Interval: c.DefaultQuery("interval", "day"),
		Timezone: c.DefaultQuery("tz", defaultDashboardTZ),
	}
	if _, err := time.LoadLocation(tr.Timezone); err != nil {
		return tr, "tz must be an IANA timezone (e.g. Asia/Singapore)"
	}
	if !validInterval(tr.Interval) {
		return tr, "interval must be one of: day, week, month"
	}

	startStr, endStr, lastDaysStr := c.Query("start"), c.Query("end"), c.Query("last_days")
	if lastDaysStr != "" {
		if startStr != "" || endStr != "" {
			return tr, "provide either last_days or start/end (not both)"
		}
		days, err := strconv.Atoi(lastDaysStr)
		if err != nil || days <= 0 {
			return tr, "last_days must be a positive integer"
		}
		tr.End = now
		tr.Start = now.AddDate(0, 0, -days)
		return tr, ""
	}

	var err error
	if startStr != "" {
		if tr.Start, err = time.Parse(time.RFC3339, startStr); err != nil {
			return tr, "start must be RFC3339 (e.g. 2025-10-01T00:00:00Z)"
		}
	}
	if endStr != "" {
		if tr.End, err = time.Parse(time.RFC3339, endStr); err != nil {
			return tr, "end must be RFC3339 (e.g. 2025-10-19T23:59:59Z)"
		}
	}
	if tr.End.IsZero() {
		tr.End = now
	}
	if tr.Start.IsZero() {
		tr.Start = tr.End.AddDate(0, 0, -defaultDashboardDays)
	}
	if tr.Start.After(tr.End) {
		tr.Start, tr.End = tr.End, tr.Start
	}
	return tr, ""
}

func validInterval(s string) bool {
	switch s {
	case "day", "week", "month":
		return true
	default:
		return false
	}
}
