package pg

import (
	"context"
	"database/sql"
	"errors"

	"github.com/ibeloyar/taskmarket/internal/model"
)

const withdrawColumns = `id, user_id, amount, method, account_info, status, notes, created_at, updated_at`

func scanWithdraw(row interface{ Scan(...any) error }, w *model.Withdraw) error {
	return row.Scan(&w.ID, &w.UserID, &w.Amount, &w.Method, &w.AccountInfo, &w.Status, &w.Notes, &w.CreatedAt, &w.UpdatedAt)
}

// CreateWithdraw debits the approved balance and creates the PENDING request
// in one transaction. Insufficient funds fail the whole thing: no request row,
// no ledger movement.
func (r *Repository) CreateWithdraw(ctx context.Context, userID int64, input model.RequestWithdrawDTO) (*model.Withdraw, error) {
	var withdraw model.Withdraw

	err := r.withRetry(ctx, func(ctx context.Context) error {
		return r.inTransaction(ctx, func(tx *sql.Tx) error {
			var approved float64
			err := tx.QueryRowContext(ctx,
				`SELECT approved_balance FROM earnings WHERE user_id = $1 FOR UPDATE`, userID,
			).Scan(&approved)
			if err != nil {
				if errors.Is(err, sql.ErrNoRows) {
					return model.ErrInsufficientBalance
				}
				return err
			}

			if approved < input.Amount {
				return model.ErrInsufficientBalance
			}

			if _, err := tx.ExecContext(ctx,
				`UPDATE earnings SET approved_balance = approved_balance - $2, pending_balance = pending_balance + $2 WHERE user_id = $1`,
				userID, input.Amount,
			); err != nil {
				return err
			}

			withdraw = model.Withdraw{
				UserID:      userID,
				Amount:      input.Amount,
				Method:      input.Method,
				AccountInfo: input.AccountInfo,
				Status:      model.WithdrawStatusPending,
			}
			return tx.QueryRowContext(ctx,
				`INSERT INTO withdraw_requests (user_id, amount, method, account_info) VALUES ($1, $2, $3, $4) RETURNING id, created_at, updated_at`,
				userID, input.Amount, input.Method, input.AccountInfo,
			).Scan(&withdraw.ID, &withdraw.CreatedAt, &withdraw.UpdatedAt)
		})
	})
	if err != nil {
		return nil, err
	}

	return &withdraw, nil
}

// DecideWithdraw settles a pending request exactly once. APPROVED moves the
// held funds to withdrawn; REJECTED returns them to the approved balance. The
// ledger movement and the status flip share one transaction.
func (r *Repository) DecideWithdraw(ctx context.Context, requestID int64, outcome model.WithdrawStatus, notes string) (*model.Withdraw, error) {
	var withdraw model.Withdraw

	err := r.withRetry(ctx, func(ctx context.Context) error {
		return r.inTransaction(ctx, func(tx *sql.Tx) error {
			err := scanWithdraw(tx.QueryRowContext(ctx,
				`SELECT `+withdrawColumns+` FROM withdraw_requests WHERE id = $1 FOR UPDATE`, requestID,
			), &withdraw)
			if err != nil {
				if errors.Is(err, sql.ErrNoRows) {
					return model.ErrNotFound
				}
				return err
			}

			if withdraw.Status != model.WithdrawStatusPending {
				return model.ErrAlreadyProcessed
			}

			var settle string
			switch outcome {
			case model.WithdrawStatusApproved:
				settle = `UPDATE earnings SET pending_balance = pending_balance - $2, withdrawn_amount = withdrawn_amount + $2 WHERE user_id = $1`
			case model.WithdrawStatusRejected:
				settle = `UPDATE earnings SET pending_balance = pending_balance - $2, approved_balance = approved_balance + $2 WHERE user_id = $1`
			default:
				return model.ErrInvalidState
			}

			if _, err := tx.ExecContext(ctx, settle, withdraw.UserID, withdraw.Amount); err != nil {
				return err
			}

			return tx.QueryRowContext(ctx,
				`UPDATE withdraw_requests SET status = $1, notes = $2, updated_at = now() WHERE id = $3 RETURNING status, notes, updated_at`,
				outcome, notes, requestID,
			).Scan(&withdraw.Status, &withdraw.Notes, &withdraw.UpdatedAt)
		})
	})
	if err != nil {
		return nil, err
	}

	return &withdraw, nil
}

func (r *Repository) ListWithdraws(ctx context.Context, status model.WithdrawStatus, skip, take int) (*model.WithdrawList, error) {
	list := &model.WithdrawList{Requests: []model.Withdraw{}}

	err := r.withRetry(ctx, func(ctx context.Context) error {
		rows, err := r.db.QueryContext(ctx,
			`SELECT `+withdrawColumns+` FROM withdraw_requests
			WHERE ($1 = '' OR status = $1) ORDER BY created_at DESC OFFSET $2 LIMIT $3`,
			status, skip, take,
		)
		if err != nil {
			return err
		}
		defer rows.Close()

		list.Requests = list.Requests[:0]
		for rows.Next() {
			var w model.Withdraw
			if err := scanWithdraw(rows, &w); err != nil {
				return err
			}
			list.Requests = append(list.Requests, w)
		}
		if err := rows.Err(); err != nil {
			return err
		}

		return r.db.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM withdraw_requests WHERE ($1 = '' OR status = $1)`, status,
		).Scan(&list.Total)
	})
	if err != nil {
		return nil, err
	}

	list.HasMore = list.Total > int64(skip+take)
	return list, nil
}

func (r *Repository) ListUserWithdraws(ctx context.Context, userID int64) ([]model.Withdraw, error) {
	withdraws := []model.Withdraw{}

	err := r.withRetry(ctx, func(ctx context.Context) error {
		rows, err := r.db.QueryContext(ctx,
			`SELECT `+withdrawColumns+` FROM withdraw_requests WHERE user_id = $1 ORDER BY created_at DESC`,
			userID,
		)
		if err != nil {
			return err
		}
		defer rows.Close()

		withdraws = withdraws[:0]
		for rows.Next() {
			var w model.Withdraw
			if err := scanWithdraw(rows, &w); err != nil {
				return err
			}
			withdraws = append(withdraws, w)
		}

		return rows.Err()
	})
	if err != nil {
		return nil, err
	}

	return withdraws, nil
}
