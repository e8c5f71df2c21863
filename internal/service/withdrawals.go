package service

import (
	"context"

	"github.com/ibeloyar/taskmarket/internal/model"
)

func (s *Service) GetEarnings(ctx context.Context, caller model.TokenInfo) (*model.Earning, *model.APIError) {
	earning, err := s.storage.GetEarningByUserID(ctx, caller.ID)
	if err != nil {
		return nil, apiError(err)
	}

	return earning, nil
}

// RequestWithdraw moves funds from the approved balance into the pending hold
// and files the request in one storage transaction. A failed balance check
// leaves no trace.
func (s *Service) RequestWithdraw(ctx context.Context, caller model.TokenInfo, input model.RequestWithdrawDTO) (*model.Withdraw, *model.APIError) {
	if !validWithdrawMethod(input.Method) {
		return nil, badRequest(model.ErrWithdrawMethodMessage)
	}
	if input.Amount < s.withdrawMin {
		return nil, badRequest(model.ErrBelowMinimumMessage)
	}

	withdraw, err := s.storage.CreateWithdraw(ctx, caller.ID, input)
	if err != nil {
		return nil, apiError(err)
	}

	s.emitter.Emit(model.Event{
		Type:     model.EventAdminNotification,
		ToAdmins: true,
		Payload: model.EventPayload{
			RequestID: withdraw.ID,
			Amount:    withdraw.Amount,
		},
	})
	s.emitter.Emit(model.Event{
		Type:   model.EventWithdrawStatus,
		UserID: caller.ID,
		Payload: model.EventPayload{
			RequestID: withdraw.ID,
			Amount:    withdraw.Amount,
			Status:    string(withdraw.Status),
		},
	})

	return withdraw, nil
}

// DecideWithdraw settles a pending request exactly once; repeated decisions
// surface as conflicts.
func (s *Service) DecideWithdraw(ctx context.Context, caller model.TokenInfo, requestID int64, input model.DecideWithdrawDTO) (*model.Withdraw, *model.APIError) {
	if caller.Role != model.RoleAdmin {
		return nil, forbidden()
	}
	if input.Status != model.WithdrawStatusApproved && input.Status != model.WithdrawStatusRejected {
		return nil, badRequest(model.ErrBadDecisionMessage)
	}

	withdraw, err := s.storage.DecideWithdraw(ctx, requestID, input.Status, input.Notes)
	if err != nil {
		return nil, apiError(err)
	}

	s.emitter.Emit(model.Event{
		Type:   model.EventWithdrawStatus,
		UserID: withdraw.UserID,
		Payload: model.EventPayload{
			RequestID: withdraw.ID,
			Amount:    withdraw.Amount,
			Status:    string(withdraw.Status),
			Notes:     withdraw.Notes,
		},
	})

	return withdraw, nil
}

func (s *Service) ListWithdrawRequests(ctx context.Context, caller model.TokenInfo, status model.WithdrawStatus, skip, take int) (*model.WithdrawList, *model.APIError) {
	if caller.Role != model.RoleAdmin {
		return nil, forbidden()
	}
	if take <= 0 || take > 100 {
		take = 20
	}
	if skip < 0 {
		skip = 0
	}

	list, err := s.storage.ListWithdraws(ctx, status, skip, take)
	if err != nil {
		return nil, apiError(err)
	}

	return list, nil
}

func (s *Service) ListMyWithdraws(ctx context.Context, caller model.TokenInfo) ([]model.Withdraw, *model.APIError) {
	withdraws, err := s.storage.ListUserWithdraws(ctx, caller.ID)
	if err != nil {
		return nil, apiError(err)
	}

	return withdraws, nil
}
