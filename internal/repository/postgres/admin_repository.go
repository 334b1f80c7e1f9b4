package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/Sumukwo12/recruitment-portal-sub000/internal/common"
	"github.com/Sumukwo12/recruitment-portal-sub000/internal/domain/admin"
)

type AdminRepository struct {
	db *sql.DB
}

func NewAdminRepository(db *sql.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

func (r *AdminRepository) FindByEmail(ctx context.Context, email string) (*admin.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, email, name, password_hash, role, created_at
		FROM admin_users WHERE lower(email) = $1`, strings.ToLower(strings.TrimSpace(email)))
	return scanAdmin(row)
}

func (r *AdminRepository) GetByID(ctx context.Context, id common.UUID) (*admin.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, email, name, password_hash, role, created_at
		FROM admin_users WHERE id = $1`, id)
	return scanAdmin(row)
}

func scanAdmin(row *sql.Row) (*admin.User, error) {
	var user admin.User
	if err := row.Scan(&user.ID, &user.Email, &user.Name, &user.PasswordHash, &user.Role, &user.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "admin not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load admin", err)
	}
	return &user, nil
}
