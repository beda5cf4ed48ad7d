package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/spec-kit/employee-portal/internal/domain"
)

type fakeRoleRepo struct {
	admins map[string]bool
	err    error
}

func (r *fakeRoleRepo) HasRole(_ context.Context, userID string, role domain.Role) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	if role != domain.RoleAdmin {
		return false, nil
	}
	return r.admins[userID], nil
}

type fakeEmployee struct {
	name string
	code string
}

type fakeLeaveRepo struct {
	mu        sync.Mutex
	sequence  int
	requests  map[string]*domain.LeaveRequest
	order     []string
	employees map[string]fakeEmployee
	err       error
}

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{
		requests:  make(map[string]*domain.LeaveRequest),
		employees: make(map[string]fakeEmployee),
	}
}

func (r *fakeLeaveRepo) Create(_ context.Context, request *domain.LeaveRequest) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sequence++
	request.ID = fmt.Sprintf("lv-%d", r.sequence)
	request.CreatedAt = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(r.sequence) * time.Hour)
	clone := *request
	r.requests[request.ID] = &clone
	r.order = append(r.order, request.ID)
	return nil
}

func (r *fakeLeaveRepo) GetByID(_ context.Context, id string) (*domain.LeaveRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	request, ok := r.requests[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *request
	return &clone, nil
}

func (r *fakeLeaveRepo) ListByEmployee(_ context.Context, employeeID string) ([]domain.LeaveRequest, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []domain.LeaveRequest
	for i := len(r.order) - 1; i >= 0; i-- {
		request := r.requests[r.order[i]]
		if request.EmployeeID == employeeID {
			result = append(result, *request)
		}
	}
	return result, nil
}

func (r *fakeLeaveRepo) ListAllWithEmployee(_ context.Context) ([]domain.LeaveRequestWithEmployee, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []domain.LeaveRequestWithEmployee
	for i := len(r.order) - 1; i >= 0; i-- {
		request := r.requests[r.order[i]]
		employee := r.employees[request.EmployeeID]
		result = append(result, domain.LeaveRequestWithEmployee{
			LeaveRequest: *request,
			EmployeeName: employee.name,
			EmployeeCode: employee.code,
		})
	}
	return result, nil
}

// UpdateDecision mirrors the conditional write of the real repository: the
// mutation applies only while the stored status is still pending.
func (r *fakeLeaveRepo) UpdateDecision(_ context.Context, id string, status domain.LeaveStatus, notes *string) (*domain.LeaveRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	request, ok := r.requests[id]
	if !ok || request.Status != domain.LeaveStatusPending {
		return nil, pgx.ErrNoRows
	}
	request.Status = status
	request.AdminNotes = notes
	clone := *request
	return &clone, nil
}

type fakeTimesheetRepo struct {
	mu        sync.Mutex
	sequence  int
	entries   map[string]*domain.TimesheetEntry
	employees map[string]fakeEmployee
	err       error
}

func newFakeTimesheetRepo() *fakeTimesheetRepo {
	return &fakeTimesheetRepo{
		entries:   make(map[string]*domain.TimesheetEntry),
		employees: make(map[string]fakeEmployee),
	}
}

func entryKey(employeeID string, workDate time.Time) string {
	return employeeID + "|" + workDate.Format("2006-01-02")
}

func (r *fakeTimesheetRepo) Upsert(_ context.Context, entry *domain.TimesheetEntry) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	key := entryKey(entry.EmployeeID, entry.WorkDate)
	if existing, ok := r.entries[key]; ok {
		entry.ID = existing.ID
		entry.CreatedAt = existing.CreatedAt
	} else {
		r.sequence++
		entry.ID = fmt.Sprintf("ts-%d", r.sequence)
		entry.CreatedAt = time.Now()
	}
	entry.UpdatedAt = time.Now()
	clone := *entry
	r.entries[key] = &clone
	return nil
}

func (r *fakeTimesheetRepo) ListByEmployee(_ context.Context, employeeID string, limit int) ([]domain.TimesheetEntry, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []domain.TimesheetEntry
	for _, entry := range r.entries {
		if entry.EmployeeID == employeeID {
			result = append(result, *entry)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].WorkDate.After(result[j].WorkDate)
	})
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (r *fakeTimesheetRepo) ListAllWithEmployee(_ context.Context, limit int) ([]domain.TimesheetEntryWithEmployee, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []domain.TimesheetEntryWithEmployee
	for _, entry := range r.entries {
		employee := r.employees[entry.EmployeeID]
		result = append(result, domain.TimesheetEntryWithEmployee{
			TimesheetEntry: *entry,
			EmployeeName:   employee.name,
			EmployeeCode:   employee.code,
		})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].WorkDate.After(result[j].WorkDate)
	})
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (r *fakeTimesheetRepo) SumHoursInRange(_ context.Context, employeeID string, from, to time.Time) (decimal.Decimal, error) {
	if r.err != nil {
		return decimal.Zero, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	total := decimal.Zero
	for _, entry := range r.entries {
		if entry.EmployeeID != employeeID {
			continue
		}
		if entry.WorkDate.Before(from) || !entry.WorkDate.Before(to) {
			continue
		}
		total = total.Add(entry.HoursWorked)
	}
	return total, nil
}

type fakeProfileRepo struct {
	mu       sync.Mutex
	sequence int
	profiles map[string]*domain.Profile
	order    []string
	err      error
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[string]*domain.Profile)}
}

func (r *fakeProfileRepo) Create(_ context.Context, profile *domain.Profile) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sequence++
	profile.ID = fmt.Sprintf("emp-%d", r.sequence)
	profile.CreatedAt = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(r.sequence) * time.Hour)
	profile.UpdatedAt = profile.CreatedAt
	clone := *profile
	r.profiles[profile.ID] = &clone
	r.order = append(r.order, profile.ID)
	return nil
}

func (r *fakeProfileRepo) Update(_ context.Context, profile *domain.Profile) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.profiles[profile.ID]; !ok {
		return pgx.ErrNoRows
	}
	clone := *profile
	r.profiles[profile.ID] = &clone
	return nil
}

func (r *fakeProfileRepo) GetByID(_ context.Context, id string) (*domain.Profile, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	profile, ok := r.profiles[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *profile
	return &clone, nil
}

func (r *fakeProfileRepo) GetByEmail(_ context.Context, email string) (*domain.Profile, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, profile := range r.profiles {
		if profile.Email == email {
			clone := *profile
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeProfileRepo) ListAll(_ context.Context) ([]domain.Profile, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []domain.Profile
	for i := len(r.order) - 1; i >= 0; i-- {
		result = append(result, *r.profiles[r.order[i]])
	}
	return result, nil
}
