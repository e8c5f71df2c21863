package pg

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ibeloyar/taskmarket/internal/model"
	"github.com/stretchr/testify/assert"
)

func withdrawRows(id, userID int64, amount float64, status model.WithdrawStatus) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "user_id", "amount", "method", "account_info", "status", "notes", "created_at", "updated_at",
	}).AddRow(id, userID, amount, string(model.WithdrawMethodPaypal), "worker@example.com", string(status), "", now, now)
}

func TestRepository_CreateWithdraw_Success(t *testing.T) {
	repo, mock := newTestRepo(t)

	now := time.Now()
	input := model.RequestWithdrawDTO{
		Amount:      20,
		Method:      model.WithdrawMethodPaypal,
		AccountInfo: "worker@example.com",
	}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT approved_balance FROM earnings WHERE user_id = \\$1 FOR UPDATE").
		WithArgs(int64(77)).
		WillReturnRows(sqlmock.NewRows([]string{"approved_balance"}).AddRow(50.0))
	mock.ExpectExec("UPDATE earnings SET approved_balance = approved_balance - \\$2, pending_balance = pending_balance \\+ \\$2 WHERE user_id = \\$1").
		WithArgs(int64(77), 20.0).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("INSERT INTO withdraw_requests \\(user_id, amount, method, account_info\\)").
		WithArgs(int64(77), 20.0, model.WithdrawMethodPaypal, "worker@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(5), now, now))
	mock.ExpectCommit()

	withdraw, err := repo.CreateWithdraw(context.Background(), 77, input)

	assert.NoError(t, err)
	assert.Equal(t, int64(5), withdraw.ID)
	assert.Equal(t, model.WithdrawStatusPending, withdraw.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CreateWithdraw_InsufficientBalance(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT approved_balance FROM earnings WHERE user_id = \\$1 FOR UPDATE").
		WithArgs(int64(77)).
		WillReturnRows(sqlmock.NewRows([]string{"approved_balance"}).AddRow(10.0))
	mock.ExpectRollback()

	withdraw, err := repo.CreateWithdraw(context.Background(), 77, model.RequestWithdrawDTO{
		Amount: 20,
		Method: model.WithdrawMethodPaypal,
	})

	assert.Nil(t, withdraw)
	assert.ErrorIs(t, err, model.ErrInsufficientBalance)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CreateWithdraw_NoLedgerRow(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT approved_balance FROM earnings WHERE user_id = \\$1 FOR UPDATE").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"approved_balance"}))
	mock.ExpectRollback()

	withdraw, err := repo.CreateWithdraw(context.Background(), 99, model.RequestWithdrawDTO{
		Amount: 20,
		Method: model.WithdrawMethodWise,
	})

	assert.Nil(t, withdraw)
	assert.ErrorIs(t, err, model.ErrInsufficientBalance)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_DecideWithdraw_ApproveMovesToWithdrawn(t *testing.T) {
	repo, mock := newTestRepo(t)

	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery("FROM withdraw_requests WHERE id = \\$1 FOR UPDATE").
		WithArgs(int64(5)).
		WillReturnRows(withdrawRows(5, 77, 20, model.WithdrawStatusPending))
	mock.ExpectExec("UPDATE earnings SET pending_balance = pending_balance - \\$2, withdrawn_amount = withdrawn_amount \\+ \\$2 WHERE user_id = \\$1").
		WithArgs(int64(77), 20.0).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("UPDATE withdraw_requests SET status = \\$1, notes = \\$2, updated_at = now\\(\\) WHERE id = \\$3 RETURNING status, notes, updated_at").
		WithArgs(model.WithdrawStatusApproved, "paid out", int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"status", "notes", "updated_at"}).
			AddRow(string(model.WithdrawStatusApproved), "paid out", now))
	mock.ExpectCommit()

	withdraw, err := repo.DecideWithdraw(context.Background(), 5, model.WithdrawStatusApproved, "paid out")

	assert.NoError(t, err)
	assert.Equal(t, model.WithdrawStatusApproved, withdraw.Status)
	assert.Equal(t, "paid out", withdraw.Notes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_DecideWithdraw_RejectReturnsFunds(t *testing.T) {
	repo, mock := newTestRepo(t)

	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery("FROM withdraw_requests WHERE id = \\$1 FOR UPDATE").
		WithArgs(int64(5)).
		WillReturnRows(withdrawRows(5, 77, 20, model.WithdrawStatusPending))
	mock.ExpectExec("UPDATE earnings SET pending_balance = pending_balance - \\$2, approved_balance = approved_balance \\+ \\$2 WHERE user_id = \\$1").
		WithArgs(int64(77), 20.0).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("UPDATE withdraw_requests SET status = \\$1, notes = \\$2, updated_at = now\\(\\) WHERE id = \\$3 RETURNING status, notes, updated_at").
		WithArgs(model.WithdrawStatusRejected, "bad account", int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"status", "notes", "updated_at"}).
			AddRow(string(model.WithdrawStatusRejected), "bad account", now))
	mock.ExpectCommit()

	withdraw, err := repo.DecideWithdraw(context.Background(), 5, model.WithdrawStatusRejected, "bad account")

	assert.NoError(t, err)
	assert.Equal(t, model.WithdrawStatusRejected, withdraw.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_DecideWithdraw_AlreadyProcessed(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("FROM withdraw_requests WHERE id = \\$1 FOR UPDATE").
		WithArgs(int64(5)).
		WillReturnRows(withdrawRows(5, 77, 20, model.WithdrawStatusApproved))
	mock.ExpectRollback()

	withdraw, err := repo.DecideWithdraw(context.Background(), 5, model.WithdrawStatusRejected, "")

	assert.Nil(t, withdraw)
	assert.ErrorIs(t, err, model.ErrAlreadyProcessed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListUserWithdraws_Empty(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery("FROM withdraw_requests WHERE user_id = \\$1 ORDER BY created_at DESC").
		WithArgs(int64(77)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "user_id", "amount", "method", "account_info", "status", "notes", "created_at", "updated_at",
		}))

	withdraws, err := repo.ListUserWithdraws(context.Background(), 77)

	assert.NoError(t, err)
	assert.Empty(t, withdraws)
	assert.NoError(t, mock.ExpectationsWereMet())
}
