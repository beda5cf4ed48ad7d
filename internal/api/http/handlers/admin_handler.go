package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/employee-portal/internal/api/dto"
	"github.com/spec-kit/employee-portal/internal/auth"
	"github.com/spec-kit/employee-portal/internal/domain"
	"github.com/spec-kit/employee-portal/internal/service"
	apperrors "github.com/spec-kit/employee-portal/pkg/util/errorutil"
)

// AdminHandler exposes the cross-employee admin surface. Every operation
// is gated inside the services; a non-admin caller gets FORBIDDEN and no
// data.
type AdminHandler struct {
	admin      *service.AdminService
	leaves     *service.LeaveService
	timesheets *service.TimesheetService
}

// NewAdminHandler constructs handler.
func NewAdminHandler(adminService *service.AdminService, leaveService *service.LeaveService, timesheetService *service.TimesheetService) *AdminHandler {
	return &AdminHandler{admin: adminService, leaves: leaveService, timesheets: timesheetService}
}

// Overview handles GET /admin/overview.
func (h *AdminHandler) Overview(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	overview, err := h.admin.Overview(c.Context(), principal.Profile.ID)
	if err != nil {
		return err
	}

	employees := make([]dto.ProfileResponse, 0, len(overview.Employees))
	for i := range overview.Employees {
		employees = append(employees, profileResponse(&overview.Employees[i]))
	}
	return c.JSON(fiber.Map{"data": fiber.Map{
		"employees":  employees,
		"leaves":     leaveWithEmployeeResponses(overview.Leaves),
		"timesheets": timesheetWithEmployeeResponses(overview.Timesheets),
	}})
}

// ListEmployees handles GET /admin/employees.
func (h *AdminHandler) ListEmployees(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	profiles, err := h.admin.ListEmployees(c.Context(), principal.Profile.ID)
	if err != nil {
		return err
	}
	items := make([]dto.ProfileResponse, 0, len(profiles))
	for i := range profiles {
		items = append(items, profileResponse(&profiles[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// ListLeaves handles GET /admin/leaves.
func (h *AdminHandler) ListLeaves(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	requests, err := h.leaves.ListAllLeaveRequests(c.Context(), principal.Profile.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": leaveWithEmployeeResponses(requests)})
}

// DecideLeave handles POST /admin/leaves/:id/decision.
func (h *AdminHandler) DecideLeave(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.DecideLeaveRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	updated, err := h.leaves.DecideLeaveRequest(c.Context(), principal.Profile.ID, c.Params("id"), domain.LeaveStatus(req.Decision), req.Notes)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": leaveResponse(updated)})
}

// ListTimesheets handles GET /admin/timesheets.
func (h *AdminHandler) ListTimesheets(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	limit := parseLimit(c.Query("limit"), 0)
	entries, err := h.timesheets.ListAllEntries(c.Context(), principal.Profile.ID, limit)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": timesheetWithEmployeeResponses(entries)})
}

func leaveWithEmployeeResponses(requests []domain.LeaveRequestWithEmployee) []dto.LeaveWithEmployeeResponse {
	items := make([]dto.LeaveWithEmployeeResponse, 0, len(requests))
	for i := range requests {
		items = append(items, dto.LeaveWithEmployeeResponse{
			LeaveResponse: leaveResponse(&requests[i].LeaveRequest),
			EmployeeName:  requests[i].EmployeeName,
			EmployeeCode:  requests[i].EmployeeCode,
		})
	}
	return items
}

func timesheetWithEmployeeResponses(entries []domain.TimesheetEntryWithEmployee) []dto.TimesheetWithEmployeeResponse {
	items := make([]dto.TimesheetWithEmployeeResponse, 0, len(entries))
	for i := range entries {
		items = append(items, dto.TimesheetWithEmployeeResponse{
			TimesheetResponse: timesheetResponse(&entries[i].TimesheetEntry),
			EmployeeName:      entries[i].EmployeeName,
			EmployeeCode:      entries[i].EmployeeCode,
		})
	}
	return items
}
