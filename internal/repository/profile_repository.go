package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/employee-portal/internal/domain"
)

// ProfileRepository defines persistence access for employee profiles.
type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.Profile) error
	Update(ctx context.Context, profile *domain.Profile) error
	GetByID(ctx context.Context, id string) (*domain.Profile, error)
	GetByEmail(ctx context.Context, email string) (*domain.Profile, error)
	ListAll(ctx context.Context) ([]domain.Profile, error)
}

type profileRepository struct {
	pool *pgxpool.Pool
}

// NewProfileRepository instantiates repository.
func NewProfileRepository(pool *pgxpool.Pool) ProfileRepository {
	return &profileRepository{pool: pool}
}

const profileColumns = `id, employee_code, full_name, email, password_hash, department, position, created_at, updated_at`

func (r *profileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	const query = `
        INSERT INTO profiles (employee_code, full_name, email, password_hash, department, position)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		profile.EmployeeCode,
		profile.FullName,
		profile.Email,
		profile.PasswordHash,
		profile.Department,
		profile.Position,
	).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
}

func (r *profileRepository) Update(ctx context.Context, profile *domain.Profile) error {
	const query = `
        UPDATE profiles SET full_name=$1, email=$2, password_hash=$3, department=$4, position=$5, updated_at=NOW()
        WHERE id=$6`
	cmd, err := r.pool.Exec(ctx, query,
		profile.FullName,
		profile.Email,
		profile.PasswordHash,
		profile.Department,
		profile.Position,
		profile.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *profileRepository) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	return r.fetchSingle(ctx, `SELECT `+profileColumns+` FROM profiles WHERE id=$1`, id)
}

func (r *profileRepository) GetByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	return r.fetchSingle(ctx, `SELECT `+profileColumns+` FROM profiles WHERE email=$1`, email)
}

func (r *profileRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.Profile, error) {
	var profile domain.Profile
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&profile.ID,
		&profile.EmployeeCode,
		&profile.FullName,
		&profile.Email,
		&profile.PasswordHash,
		&profile.Department,
		&profile.Position,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) ListAll(ctx context.Context) ([]domain.Profile, error) {
	const query = `SELECT ` + profileColumns + ` FROM profiles ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Profile
	for rows.Next() {
		var profile domain.Profile
		if err := rows.Scan(
			&profile.ID,
			&profile.EmployeeCode,
			&profile.FullName,
			&profile.Email,
			&profile.PasswordHash,
			&profile.Department,
			&profile.Position,
			&profile.CreatedAt,
			&profile.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, profile)
	}
	return result, rows.Err()
}
