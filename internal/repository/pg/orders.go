package pg

import (
	"context"
	"database/sql"
	"errors"

	"github.com/ibeloyar/taskmarket/internal/model"
)

const orderColumns = `id, creator_id, order_type, title, description, platform, link, proof_type, instructions,
		worker_count, rate_per_worker, total_budget, status, created_at`

func scanOrder(row interface{ Scan(...any) error }, o *model.Order) error {
	return row.Scan(
		&o.ID, &o.CreatorID, &o.OrderType, &o.Title, &o.Description, &o.Platform, &o.Link,
		&o.ProofType, &o.Instructions, &o.WorkerCount, &o.RatePerWorker, &o.TotalBudget,
		&o.Status, &o.CreatedAt,
	)
}

func (r *Repository) CreateOrder(ctx context.Context, order model.Order) (*model.Order, error) {
	created := order
	err := r.withRetry(ctx, func(ctx context.Context) error {
		return r.db.QueryRowContext(ctx,
			`INSERT INTO orders (creator_id, order_type, title, description, platform, link, proof_type, instructions, worker_count, rate_per_worker, total_budget, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) RETURNING id, created_at`,
			order.CreatorID, order.OrderType, order.Title, order.Description, order.Platform,
			order.Link, order.ProofType, order.Instructions, order.WorkerCount,
			order.RatePerWorker, order.TotalBudget, order.Status,
		).Scan(&created.ID, &created.CreatedAt)
	})
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *Repository) GetOrderByID(ctx context.Context, orderID int64) (*model.Order, error) {
	var order model.Order
	err := r.withRetry(ctx, func(ctx context.Context) error {
		return scanOrder(r.db.QueryRowContext(ctx,
			`SELECT `+orderColumns+` FROM orders WHERE id = $1`, orderID,
		), &order)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}

	return &order, nil
}

// UpdateOrderStatus moves an order between lifecycle states. The transition is
// legal only when the current status is one of the expected ones; anything
// else surfaces ErrInvalidState so a repeated approval is a visible conflict,
// never a silent success.
func (r *Repository) UpdateOrderStatus(ctx context.Context, orderID int64, next model.OrderStatus, expected ...model.OrderStatus) (*model.Order, error) {
	var order model.Order
	err := r.withRetry(ctx, func(ctx context.Context) error {
		return r.inTransaction(ctx, func(tx *sql.Tx) error {
			err := scanOrder(tx.QueryRowContext(ctx,
				`SELECT `+orderColumns+` FROM orders WHERE id = $1 FOR UPDATE`, orderID,
			), &order)
			if err != nil {
				if errors.Is(err, sql.ErrNoRows) {
					return model.ErrNotFound
				}
				return err
			}

			allowed := false
			for _, s := range expected {
				if order.Status == s {
					allowed = true
					break
				}
			}
			if !allowed {
				return model.ErrInvalidState
			}

			if _, err := tx.ExecContext(ctx,
				`UPDATE orders SET status = $1 WHERE id = $2`, next, orderID,
			); err != nil {
				return err
			}

			order.Status = next
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return &order, nil
}

func (r *Repository) ListActiveOrders(ctx context.Context, orderType model.OrderType, skip, take int) (*model.OrderList, error) {
	list := &model.OrderList{Orders: []model.Order{}}

	err := r.withRetry(ctx, func(ctx context.Context) error {
		rows, err := r.db.QueryContext(ctx,
			`SELECT `+orderColumns+` FROM orders
			WHERE status = $1 AND ($2 = '' OR order_type = $2)
			ORDER BY created_at DESC OFFSET $3 LIMIT $4`,
			model.OrderStatusActive, orderType, skip, take,
		)
		if err != nil {
			return err
		}
		defer rows.Close()

		list.Orders = list.Orders[:0]
		for rows.Next() {
			var order model.Order
			if err := scanOrder(rows, &order); err != nil {
				return err
			}
			list.Orders = append(list.Orders, order)
		}
		if err := rows.Err(); err != nil {
			return err
		}

		return r.db.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM orders WHERE status = $1 AND ($2 = '' OR order_type = $2)`,
			model.OrderStatusActive, orderType,
		).Scan(&list.Total)
	})
	if err != nil {
		return nil, err
	}

	list.HasMore = list.Total > int64(skip+take)
	return list, nil
}

func (r *Repository) ListCreatorOrders(ctx context.Context, creatorID int64) ([]model.Order, error) {
	orders := []model.Order{}

	err := r.withRetry(ctx, func(ctx context.Context) error {
		rows, err := r.db.QueryContext(ctx,
			`SELECT `+orderColumns+` FROM orders WHERE creator_id = $1 ORDER BY created_at DESC`,
			creatorID,
		)
		if err != nil {
			return err
		}
		defer rows.Close()

		orders = orders[:0]
		for rows.Next() {
			var order model.Order
			if err := scanOrder(rows, &order); err != nil {
				return err
			}
			orders = append(orders, order)
		}

		return rows.Err()
	})
	if err != nil {
		return nil, err
	}

	return orders, nil
}
