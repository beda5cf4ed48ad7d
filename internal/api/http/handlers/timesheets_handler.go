package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/employee-portal/internal/api/dto"
	"github.com/spec-kit/employee-portal/internal/auth"
	"github.com/spec-kit/employee-portal/internal/domain"
	"github.com/spec-kit/employee-portal/internal/service"
	apperrors "github.com/spec-kit/employee-portal/pkg/util/errorutil"
)

// TimesheetsHandler manages employee-facing timesheet endpoints.
type TimesheetsHandler struct {
	timesheets *service.TimesheetService
	leaves     *service.LeaveService
}

// NewTimesheetsHandler constructs handler.
func NewTimesheetsHandler(timesheetService *service.TimesheetService, leaveService *service.LeaveService) *TimesheetsHandler {
	return &TimesheetsHandler{timesheets: timesheetService, leaves: leaveService}
}

// Record handles PUT /timesheets. A second submission for the same date
// replaces the first.
func (h *TimesheetsHandler) Record(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.RecordTimesheetRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	workDate, err := time.Parse(dateLayout, req.WorkDate)
	if err != nil {
		return apperrors.NewValidationError("work_date must be YYYY-MM-DD", nil)
	}

	entry, err := h.timesheets.RecordEntry(c.Context(), principal.Profile.ID, service.TimesheetInput{
		WorkDate:    workDate,
		HoursWorked: req.HoursWorked,
		ProjectName: req.ProjectName,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": timesheetResponse(entry)})
}

// ListOwn handles GET /timesheets. The total in the response covers only
// the returned page.
func (h *TimesheetsHandler) ListOwn(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	limit := parseLimit(c.Query("limit"), 0)
	entries, err := h.timesheets.ListOwnEntries(c.Context(), principal.Profile.ID, limit)
	if err != nil {
		return err
	}
	items := make([]dto.TimesheetResponse, 0, len(entries))
	for i := range entries {
		items = append(items, timesheetResponse(&entries[i]))
	}
	return c.JSON(fiber.Map{"data": dto.TimesheetListResponse{
		Entries:    items,
		TotalHours: h.timesheets.SumOfRecentEntries(entries),
	}})
}

// DashboardStats handles GET /dashboard/stats: lifetime leave counters plus
// the true current-month hours sum.
func (h *TimesheetsHandler) DashboardStats(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	stats, err := h.leaves.ComputeLeaveStats(c.Context(), principal.Profile.ID)
	if err != nil {
		return err
	}
	monthHours, err := h.timesheets.HoursThisMonth(c.Context(), principal.Profile.ID, time.Now())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.DashboardStatsResponse{
		PendingLeaves:  stats.PendingCount,
		ApprovedLeaves: stats.ApprovedCount,
		ThisMonthHours: monthHours,
	}})
}

func parseLimit(val string, def int) int {
	if val == "" {
		return def
	}
	parsed, err := strconv.Atoi(val)
	if err != nil || parsed <= 0 {
		return def
	}
	return parsed
}

func timesheetResponse(entry *domain.TimesheetEntry) dto.TimesheetResponse {
	return dto.TimesheetResponse{
		ID:          entry.ID,
		EmployeeID:  entry.EmployeeID,
		WorkDate:    entry.WorkDate.Format(dateLayout),
		HoursWorked: entry.HoursWorked,
		ProjectName: entry.ProjectName,
		Description: entry.Description,
		Submitted:   entry.Submitted,
		CreatedAt:   entry.CreatedAt,
		UpdatedAt:   entry.UpdatedAt,
	}
}
