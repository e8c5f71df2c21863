package pg

import (
	"context"
	"database/sql"
	"errors"

	"github.com/ibeloyar/taskmarket/internal/model"
)

func (r *Repository) CreateUser(ctx context.Context, user model.User) (int64, error) {
	var id int64
	err := r.withRetry(ctx, func(ctx context.Context) error {
		return r.db.QueryRowContext(ctx,
			`INSERT INTO users (login, password, role) VALUES ($1, $2, $3) RETURNING id`,
			user.Login, user.Password, user.Role,
		).Scan(&id)
	})
	if err != nil {
		if IsUniqueViolation(err) {
			return 0, model.ErrLoginTaken
		}
		return 0, err
	}

	return id, nil
}

func (r *Repository) GetUserByLogin(ctx context.Context, login string) (*model.User, error) {
	var user model.User
	err := r.withRetry(ctx, func(ctx context.Context) error {
		return r.db.QueryRowContext(ctx,
			`SELECT id, login, password, role, created_at FROM users WHERE login = $1`,
			login,
		).Scan(&user.ID, &user.Login, &user.Password, &user.Role, &user.CreatedAt)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}

	return &user, nil
}

// GetAdminIDs resolves the ADMIN capability group for audience-wide events.
func (r *Repository) GetAdminIDs(ctx context.Context) ([]int64, error) {
	var ids []int64
	err := r.withRetry(ctx, func(ctx context.Context) error {
		rows, err := r.db.QueryContext(ctx, `SELECT id FROM users WHERE role = $1`, model.RoleAdmin)
		if err != nil {
			return err
		}
		defer rows.Close()

		ids = ids[:0]
		for rows.Next() {
			var id int64
			if err := rows.Scan(&id); err != nil {
				return err
			}
			ids = append(ids, id)
		}

		return rows.Err()
	})
	if err != nil {
		return nil, err
	}

	return ids, nil
}
