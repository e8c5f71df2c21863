package pg

import (
	"context"
	"database/sql"
	"errors"

	"github.com/ibeloyar/taskmarket/internal/model"
)

const assignmentColumns = `id, order_id, worker_id, proof, status, joined_at, completed_at`

func scanAssignment(row interface{ Scan(...any) error }, a *model.Assignment) error {
	return row.Scan(&a.ID, &a.OrderID, &a.WorkerID, &a.Proof, &a.Status, &a.JoinedAt, &a.CompletedAt)
}

// JoinOrder claims one slot of an active order. The order row is locked for
// the whole check-then-insert so two workers racing for the last slot can
// never both get in.
func (r *Repository) JoinOrder(ctx context.Context, orderID, workerID int64) (*model.Assignment, error) {
	var assignment model.Assignment

	err := r.withRetry(ctx, func(ctx context.Context) error {
		return r.inTransaction(ctx, func(tx *sql.Tx) error {
			var status model.OrderStatus
			var workerCount int
			err := tx.QueryRowContext(ctx,
				`SELECT status, worker_count FROM orders WHERE id = $1 FOR UPDATE`, orderID,
			).Scan(&status, &workerCount)
			if err != nil {
				if errors.Is(err, sql.ErrNoRows) {
					return model.ErrNotFound
				}
				return err
			}

			if status != model.OrderStatusActive {
				return model.ErrInvalidState
			}

			var total, mine int
			err = tx.QueryRowContext(ctx,
				`SELECT COUNT(*), COUNT(*) FILTER (WHERE worker_id = $2) FROM order_workers WHERE order_id = $1`,
				orderID, workerID,
			).Scan(&total, &mine)
			if err != nil {
				return err
			}

			if mine > 0 {
				return model.ErrDuplicateJoin
			}
			if total >= workerCount {
				return model.ErrSlotsFull
			}

			assignment = model.Assignment{
				OrderID:  orderID,
				WorkerID: workerID,
				Status:   model.AssignmentStatusPending,
			}
			err = tx.QueryRowContext(ctx,
				`INSERT INTO order_workers (order_id, worker_id) VALUES ($1, $2) RETURNING id, joined_at`,
				orderID, workerID,
			).Scan(&assignment.ID, &assignment.JoinedAt)
			if IsUniqueViolation(err) {
				return model.ErrDuplicateJoin
			}

			return err
		})
	})
	if err != nil {
		return nil, err
	}

	return &assignment, nil
}

// SubmitProof attaches proof to a pending assignment. Proof is write-once:
// any repeated submission fails.
func (r *Repository) SubmitProof(ctx context.Context, orderID, workerID int64, proof string) (*model.Assignment, error) {
	var assignment model.Assignment

	err := r.withRetry(ctx, func(ctx context.Context) error {
		return r.inTransaction(ctx, func(tx *sql.Tx) error {
			err := scanAssignment(tx.QueryRowContext(ctx,
				`SELECT `+assignmentColumns+` FROM order_workers WHERE order_id = $1 AND worker_id = $2 FOR UPDATE`,
				orderID, workerID,
			), &assignment)
			if err != nil {
				if errors.Is(err, sql.ErrNoRows) {
					return model.ErrNotAssigned
				}
				return err
			}

			if assignment.Status != model.AssignmentStatusPending || assignment.Proof != nil {
				return model.ErrAlreadySubmitted
			}

			err = tx.QueryRowContext(ctx,
				`UPDATE order_workers SET proof = $1, completed_at = now() WHERE id = $2 RETURNING proof, completed_at`,
				proof, assignment.ID,
			).Scan(&assignment.Proof, &assignment.CompletedAt)

			return err
		})
	})
	if err != nil {
		return nil, err
	}

	return &assignment, nil
}

// GetAssignmentWithOrder loads an assignment together with its parent order,
// so the caller can run ownership checks before verifying.
func (r *Repository) GetAssignmentWithOrder(ctx context.Context, assignmentID int64) (*model.Assignment, *model.Order, error) {
	var assignment model.Assignment
	var order model.Order

	err := r.withRetry(ctx, func(ctx context.Context) error {
		return r.db.QueryRowContext(ctx,
			`SELECT ow.id, ow.order_id, ow.worker_id, ow.proof, ow.status, ow.joined_at, ow.completed_at,
				o.id, o.creator_id, o.order_type, o.title, o.description, o.platform, o.link, o.proof_type, o.instructions,
				o.worker_count, o.rate_per_worker, o.total_budget, o.status, o.created_at
			FROM order_workers ow JOIN orders o ON o.id = ow.order_id WHERE ow.id = $1`,
			assignmentID,
		).Scan(
			&assignment.ID, &assignment.OrderID, &assignment.WorkerID, &assignment.Proof,
			&assignment.Status, &assignment.JoinedAt, &assignment.CompletedAt,
			&order.ID, &order.CreatorID, &order.OrderType, &order.Title, &order.Description,
			&order.Platform, &order.Link, &order.ProofType, &order.Instructions,
			&order.WorkerCount, &order.RatePerWorker, &order.TotalBudget, &order.Status, &order.CreatedAt,
		)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, model.ErrNotFound
		}
		return nil, nil, err
	}

	return &assignment, &order, nil
}

// VerifyAssignment records a permanent verification decision. On approval the
// worker's ledger is credited and the completion condition is evaluated inside
// the same transaction: either everything commits or nothing does.
func (r *Repository) VerifyAssignment(ctx context.Context, assignmentID int64, decision model.AssignmentStatus) (*model.VerifyResult, error) {
	var result model.VerifyResult

	err := r.withRetry(ctx, func(ctx context.Context) error {
		return r.inTransaction(ctx, func(tx *sql.Tx) error {
			err := scanAssignment(tx.QueryRowContext(ctx,
				`SELECT `+assignmentColumns+` FROM order_workers WHERE id = $1 FOR UPDATE`,
				assignmentID,
			), &result.Assignment)
			if err != nil {
				if errors.Is(err, sql.ErrNoRows) {
					return model.ErrNotFound
				}
				return err
			}

			err = scanOrder(tx.QueryRowContext(ctx,
				`SELECT `+orderColumns+` FROM orders WHERE id = $1 FOR UPDATE`,
				result.Assignment.OrderID,
			), &result.Order)
			if err != nil {
				return err
			}

			if result.Assignment.Status != model.AssignmentStatusPending {
				return model.ErrAlreadyVerified
			}

			if _, err := tx.ExecContext(ctx,
				`UPDATE order_workers SET status = $1 WHERE id = $2`, decision, assignmentID,
			); err != nil {
				return err
			}
			result.Assignment.Status = decision

			if decision != model.AssignmentStatusApproved {
				return nil
			}

			if err := creditApproval(ctx, tx, result.Assignment.WorkerID, result.Order.RatePerWorker); err != nil {
				return err
			}

			var total, approved int
			err = tx.QueryRowContext(ctx,
				`SELECT COUNT(*), COUNT(*) FILTER (WHERE status = $2) FROM order_workers WHERE order_id = $1`,
				result.Order.ID, model.AssignmentStatusApproved,
			).Scan(&total, &approved)
			if err != nil {
				return err
			}

			// COMPLETED requires a full house of approvals: every existing
			// row approved and the slot quota reached. A rejected row keeps
			// the order open forever.
			if total == result.Order.WorkerCount && approved == total {
				if _, err := tx.ExecContext(ctx,
					`UPDATE orders SET status = $1 WHERE id = $2`,
					model.OrderStatusCompleted, result.Order.ID,
				); err != nil {
					return err
				}
				result.Order.Status = model.OrderStatusCompleted
				result.OrderCompleted = true
			}

			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *Repository) ListOrderAssignments(ctx context.Context, orderID int64) ([]model.Assignment, error) {
	return r.listAssignments(ctx,
		`SELECT `+assignmentColumns+` FROM order_workers WHERE order_id = $1 ORDER BY joined_at`, orderID)
}

func (r *Repository) ListWorkerAssignments(ctx context.Context, workerID int64) ([]model.Assignment, error) {
	return r.listAssignments(ctx,
		`SELECT `+assignmentColumns+` FROM order_workers WHERE worker_id = $1 ORDER BY joined_at DESC`, workerID)
}

func (r *Repository) listAssignments(ctx context.Context, query string, arg int64) ([]model.Assignment, error) {
	assignments := []model.Assignment{}

	err := r.withRetry(ctx, func(ctx context.Context) error {
		rows, err := r.db.QueryContext(ctx, query, arg)
		if err != nil {
			return err
		}
		defer rows.Close()

		assignments = assignments[:0]
		for rows.Next() {
			var a model.Assignment
			if err := scanAssignment(rows, &a); err != nil {
				return err
			}
			assignments = append(assignments, a)
		}

		return rows.Err()
	})
	if err != nil {
		return nil, err
	}

	return assignments, nil
}
