package pg

import (
	"context"
	"database/sql"
	"errors"

	"github.com/ibeloyar/taskmarket/internal/model"
)

// creditApproval credits an approved proof to the worker's ledger row,
// creating the row on first credit. The approved rate lands in totalEarned,
// pendingBalance and remainingBalance; approvedBalance is only ever fed by a
// rejected withdrawal (see settleWithdraw).
func creditApproval(ctx context.Context, tx *sql.Tx, workerID int64, amount float64) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO earnings (user_id, total_earned, pending_balance, remaining_balance) VALUES ($1, $2, $2, $2)
		ON CONFLICT (user_id) DO UPDATE SET
			total_earned = earnings.total_earned + $2,
			pending_balance = earnings.pending_balance + $2,
			remaining_balance = earnings.remaining_balance + $2`,
		workerID, amount,
	)
	return err
}

// GetEarningByUserID returns the ledger row, or a zero-valued view when the
// worker has not earned anything yet.
func (r *Repository) GetEarningByUserID(ctx context.Context, userID int64) (*model.Earning, error) {
	earning := model.Earning{UserID: userID}

	err := r.withRetry(ctx, func(ctx context.Context) error {
		err := r.db.QueryRowContext(ctx,
			`SELECT user_id, total_earned, pending_balance, approved_balance, withdrawn_amount, remaining_balance
			FROM earnings WHERE user_id = $1`,
			userID,
		).Scan(
			&earning.UserID, &earning.TotalEarned, &earning.PendingBalance,
			&earning.ApprovedBalance, &earning.WithdrawnAmount, &earning.RemainingBalance,
		)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	return &earning, nil
}
