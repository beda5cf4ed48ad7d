package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/spec-kit/employee-portal/internal/domain"
)

// TimesheetRepository encapsulates timesheet persistence.
type TimesheetRepository interface {
	Upsert(ctx context.Context, entry *domain.TimesheetEntry) error
	ListByEmployee(ctx context.Context, employeeID string, limit int) ([]domain.TimesheetEntry, error)
	ListAllWithEmployee(ctx context.Context, limit int) ([]domain.TimesheetEntryWithEmployee, error)
	SumHoursInRange(ctx context.Context, employeeID string, from, to time.Time) (decimal.Decimal, error)
}

type timesheetRepository struct {
	pool *pgxpool.Pool
}

// NewTimesheetRepository instantiates repository.
func NewTimesheetRepository(pool *pgxpool.Pool) TimesheetRepository {
	return &timesheetRepository{pool: pool}
}

const timesheetColumns = `id, employee_id, work_date, hours_worked, project_name, description, submitted, created_at, updated_at`

// Upsert creates or replaces the entry keyed on (employee_id, work_date).
// This is the sole mutation path for timesheets.
func (r *timesheetRepository) Upsert(ctx context.Context, entry *domain.TimesheetEntry) error {
	const query = `
        INSERT INTO timesheets (employee_id, work_date, hours_worked, project_name, description, submitted)
        VALUES ($1,$2,$3,$4,$5,$6)
        ON CONFLICT (employee_id, work_date) DO UPDATE SET
            hours_worked=EXCLUDED.hours_worked,
            project_name=EXCLUDED.project_name,
            description=EXCLUDED.description,
            submitted=EXCLUDED.submitted,
            updated_at=NOW()
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		entry.EmployeeID,
		entry.WorkDate,
		entry.HoursWorked,
		entry.ProjectName,
		entry.Description,
		entry.Submitted,
	).Scan(&entry.ID, &entry.CreatedAt, &entry.UpdatedAt)
}

func (r *timesheetRepository) ListByEmployee(ctx context.Context, employeeID string, limit int) ([]domain.TimesheetEntry, error) {
	const query = `
        SELECT ` + timesheetColumns + `
        FROM timesheets WHERE employee_id=$1
        ORDER BY work_date DESC LIMIT $2`
	rows, err := r.pool.Query(ctx, query, employeeID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTimesheetEntries(rows)
}

func (r *timesheetRepository) ListAllWithEmployee(ctx context.Context, limit int) ([]domain.TimesheetEntryWithEmployee, error) {
	const query = `
        SELECT t.id, t.employee_id, t.work_date, t.hours_worked, t.project_name, t.description,
               t.submitted, t.created_at, t.updated_at, p.full_name, p.employee_code
        FROM timesheets t
        JOIN profiles p ON p.id = t.employee_id
        ORDER BY t.work_date DESC LIMIT $1`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.TimesheetEntryWithEmployee
	for rows.Next() {
		var joined domain.TimesheetEntryWithEmployee
		if err := rows.Scan(
			&joined.ID,
			&joined.EmployeeID,
			&joined.WorkDate,
			&joined.HoursWorked,
			&joined.ProjectName,
			&joined.Description,
			&joined.Submitted,
			&joined.CreatedAt,
			&joined.UpdatedAt,
			&joined.EmployeeName,
			&joined.EmployeeCode,
		); err != nil {
			return nil, err
		}
		result = append(result, joined)
	}
	return result, rows.Err()
}

// SumHoursInRange aggregates server-side over every row in [from, to),
// unlike the page totals computed client-side over a capped listing.
func (r *timesheetRepository) SumHoursInRange(ctx context.Context, employeeID string, from, to time.Time) (decimal.Decimal, error) {
	const query = `
        SELECT COALESCE(SUM(hours_worked), 0)
        FROM timesheets WHERE employee_id=$1 AND work_date >= $2 AND work_date < $3`
	var total decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, employeeID, from, to).Scan(&total); err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

func scanTimesheetEntries(rows pgx.Rows) ([]domain.TimesheetEntry, error) {
	var result []domain.TimesheetEntry
	for rows.Next() {
		var entry domain.TimesheetEntry
		if err := rows.Scan(
			&entry.ID,
			&entry.EmployeeID,
			&entry.WorkDate,
			&entry.HoursWorked,
			&entry.ProjectName,
			&entry.Description,
			&entry.Submitted,
			&entry.CreatedAt,
			&entry.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, entry)
	}
	return result, rows.Err()
}
