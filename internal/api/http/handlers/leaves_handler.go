package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/employee-portal/internal/api/dto"
	"github.com/spec-kit/employee-portal/internal/auth"
	"github.com/spec-kit/employee-portal/internal/domain"
	"github.com/spec-kit/employee-portal/internal/service"
	apperrors "github.com/spec-kit/employee-portal/pkg/util/errorutil"
)

const dateLayout = "2006-01-02"

// LeavesHandler manages employee-facing leave endpoints.
type LeavesHandler struct {
	leaves *service.LeaveService
}

// NewLeavesHandler constructs handler.
func NewLeavesHandler(leaveService *service.LeaveService) *LeavesHandler {
	return &LeavesHandler{leaves: leaveService}
}

// Submit handles POST /leaves.
func (h *LeavesHandler) Submit(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.SubmitLeaveRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	startDate, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return apperrors.NewValidationError("start_date must be YYYY-MM-DD", nil)
	}
	endDate, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return apperrors.NewValidationError("end_date must be YYYY-MM-DD", nil)
	}

	request, err := h.leaves.SubmitLeaveRequest(c.Context(), principal.Profile.ID, service.LeaveSubmission{
		LeaveType: domain.LeaveType(req.LeaveType),
		StartDate: startDate,
		EndDate:   endDate,
		Reason:    req.Reason,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": leaveResponse(request)})
}

// ListOwn handles GET /leaves.
func (h *LeavesHandler) ListOwn(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	requests, err := h.leaves.ListOwnLeaveRequests(c.Context(), principal.Profile.ID)
	if err != nil {
		return err
	}
	items := make([]dto.LeaveResponse, 0, len(requests))
	for i := range requests {
		items = append(items, leaveResponse(&requests[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Stats handles GET /leaves/stats.
func (h *LeavesHandler) Stats(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	stats, err := h.leaves.ComputeLeaveStats(c.Context(), principal.Profile.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.LeaveStatsResponse{
		PendingCount:  stats.PendingCount,
		ApprovedCount: stats.ApprovedCount,
	}})
}

func leaveResponse(request *domain.LeaveRequest) dto.LeaveResponse {
	return dto.LeaveResponse{
		ID:         request.ID,
		EmployeeID: request.EmployeeID,
		LeaveType:  request.LeaveType,
		StartDate:  request.StartDate.Format(dateLayout),
		EndDate:    request.EndDate.Format(dateLayout),
		Reason:     request.Reason,
		Status:     request.Status,
		AdminNotes: request.AdminNotes,
		CreatedAt:  request.CreatedAt,
	}
}
