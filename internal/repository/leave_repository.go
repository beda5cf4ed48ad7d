package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/employee-portal/internal/domain"
)

// LeaveRepository encapsulates leave request persistence.
type LeaveRepository interface {
	Create(ctx context.Context, request *domain.LeaveRequest) error
	GetByID(ctx context.Context, id string) (*domain.LeaveRequest, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]domain.LeaveRequest, error)
	ListAllWithEmployee(ctx context.Context) ([]domain.LeaveRequestWithEmployee, error)
	UpdateDecision(ctx context.Context, id string, status domain.LeaveStatus, notes *string) (*domain.LeaveRequest, error)
}

type leaveRepository struct {
	pool *pgxpool.Pool
}

// NewLeaveRepository instantiates repository.
func NewLeaveRepository(pool *pgxpool.Pool) LeaveRepository {
	return &leaveRepository{pool: pool}
}

const leaveColumns = `id, employee_id, leave_type, start_date, end_date, reason, status, admin_notes, created_at`

func (r *leaveRepository) Create(ctx context.Context, request *domain.LeaveRequest) error {
	const query = `
        INSERT INTO leave_requests (employee_id, leave_type, start_date, end_date, reason, status)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		request.EmployeeID,
		request.LeaveType,
		request.StartDate,
		request.EndDate,
		request.Reason,
		request.Status,
	).Scan(&request.ID, &request.CreatedAt)
}

func (r *leaveRepository) GetByID(ctx context.Context, id string) (*domain.LeaveRequest, error) {
	const query = `SELECT ` + leaveColumns + ` FROM leave_requests WHERE id=$1`
	var request domain.LeaveRequest
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&request.ID,
		&request.EmployeeID,
		&request.LeaveType,
		&request.StartDate,
		&request.EndDate,
		&request.Reason,
		&request.Status,
		&request.AdminNotes,
		&request.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *leaveRepository) ListByEmployee(ctx context.Context, employeeID string) ([]domain.LeaveRequest, error) {
	const query = `SELECT ` + leaveColumns + ` FROM leave_requests WHERE employee_id=$1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanLeaveRequests(rows)
}

func (r *leaveRepository) ListAllWithEmployee(ctx context.Context) ([]domain.LeaveRequestWithEmployee, error) {
	const query = `
        SELECT lr.id, lr.employee_id, lr.leave_type, lr.start_date, lr.end_date, lr.reason,
               lr.status, lr.admin_notes, lr.created_at, p.full_name, p.employee_code
        FROM leave_requests lr
        JOIN profiles p ON p.id = lr.employee_id
        ORDER BY lr.created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.LeaveRequestWithEmployee
	for rows.Next() {
		var joined domain.LeaveRequestWithEmployee
		if err := rows.Scan(
			&joined.ID,
			&joined.EmployeeID,
			&joined.LeaveType,
			&joined.StartDate,
			&joined.EndDate,
			&joined.Reason,
			&joined.Status,
			&joined.AdminNotes,
			&joined.CreatedAt,
			&joined.EmployeeName,
			&joined.EmployeeCode,
		); err != nil {
			return nil, err
		}
		result = append(result, joined)
	}
	return result, rows.Err()
}

// UpdateDecision applies a decision only while the request is still pending.
// The status guard in the WHERE clause makes the transition a single
// conditional write; of two concurrent deciders exactly one sees a row.
// Returns pgx.ErrNoRows when the guard does not match.
func (r *leaveRepository) UpdateDecision(ctx context.Context, id string, status domain.LeaveStatus, notes *string) (*domain.LeaveRequest, error) {
	const query = `
        UPDATE leave_requests SET status=$1, admin_notes=$2
        WHERE id=$3 AND status='pending'
        RETURNING ` + leaveColumns
	var request domain.LeaveRequest
	if err := r.pool.QueryRow(ctx, query, status, notes, id).Scan(
		&request.ID,
		&request.EmployeeID,
		&request.LeaveType,
		&request.StartDate,
		&request.EndDate,
		&request.Reason,
		&request.Status,
		&request.AdminNotes,
		&request.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &request, nil
}

func scanLeaveRequests(rows pgx.Rows) ([]domain.LeaveRequest, error) {
	var result []domain.LeaveRequest
	for rows.Next() {
		var request domain.LeaveRequest
		if err := rows.Scan(
			&request.ID,
			&request.EmployeeID,
			&request.LeaveType,
			&request.StartDate,
			&request.EndDate,
			&request.Reason,
			&request.Status,
			&request.AdminNotes,
			&request.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, request)
	}
	return result, rows.Err()
}
