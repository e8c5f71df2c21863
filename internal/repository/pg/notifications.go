package pg

import (
	"context"

	"github.com/ibeloyar/taskmarket/internal/model"
)

func (r *Repository) CreateNotification(ctx context.Context, n model.Notification) error {
	return r.withRetry(ctx, func(ctx context.Context) error {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO notifications (user_id, type, message, link) VALUES ($1, $2, $3, $4)`,
			n.UserID, n.Type, n.Message, n.Link,
		)
		return err
	})
}

func (r *Repository) ListNotifications(ctx context.Context, userID int64) ([]model.Notification, error) {
	notifications := []model.Notification{}

	err := r.withRetry(ctx, func(ctx context.Context) error {
		rows, err := r.db.QueryContext(ctx,
			`SELECT id, user_id, type, message, link, is_read, created_at FROM notifications
			WHERE user_id = $1 ORDER BY created_at DESC`,
			userID,
		)
		if err != nil {
			return err
		}
		defer rows.Close()

		notifications = notifications[:0]
		for rows.Next() {
			var n model.Notification
			if err := rows.Scan(&n.ID, &n.UserID, &n.Type, &n.Message, &n.Link, &n.IsRead, &n.CreatedAt); err != nil {
				return err
			}
			notifications = append(notifications, n)
		}

		return rows.Err()
	})
	if err != nil {
		return nil, err
	}

	return notifications, nil
}

func (r *Repository) MarkNotificationsRead(ctx context.Context, userID int64) error {
	return r.withRetry(ctx, func(ctx context.Context) error {
		_, err := r.db.ExecContext(ctx,
			`UPDATE notifications SET is_read = TRUE WHERE user_id = $1 AND is_read = FALSE`,
			userID,
		)
		return err
	})
}
