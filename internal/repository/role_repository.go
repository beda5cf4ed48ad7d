package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/employee-portal/internal/domain"
)

// RoleRepository reads role assignments. Rows are provisioned out of band;
// this service never writes them.
type RoleRepository interface {
	HasRole(ctx context.Context, userID string, role domain.Role) (bool, error)
}

type roleRepository struct {
	pool *pgxpool.Pool
}

// NewRoleRepository instantiates repository.
func NewRoleRepository(pool *pgxpool.Pool) RoleRepository {
	return &roleRepository{pool: pool}
}

func (r *roleRepository) HasRole(ctx context.Context, userID string, role domain.Role) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM user_roles WHERE user_id=$1 AND role=$2)`
	var exists bool
	if err := r.pool.QueryRow(ctx, query, userID, role).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
