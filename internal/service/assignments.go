package service

import (
	"context"

	"github.com/ibeloyar/taskmarket/internal/model"
)

func (s *Service) JoinOrder(ctx context.Context, caller model.TokenInfo, orderID int64) (*model.Assignment, *model.APIError) {
	if caller.Role != model.RoleWorker && caller.Role != model.RoleAdmin {
		return nil, forbidden()
	}

	order, err := s.storage.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, apiError(err)
	}

	assignment, err := s.storage.JoinOrder(ctx, orderID, caller.ID)
	if err != nil {
		return nil, apiError(err)
	}

	s.emitter.Emit(model.Event{
		Type:   model.EventWorkerJoined,
		UserID: order.CreatorID,
		Payload: model.EventPayload{
			OrderID: orderID,
			Title:   order.Title,
		},
	})

	return assignment, nil
}

func (s *Service) SubmitProof(ctx context.Context, caller model.TokenInfo, orderID int64, input model.SubmitProofDTO) (*model.Assignment, *model.APIError) {
	if input.Proof == "" {
		return nil, badRequest(model.ErrProofRequiredMessage)
	}

	order, err := s.storage.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, apiError(err)
	}

	assignment, err := s.storage.SubmitProof(ctx, orderID, caller.ID, input.Proof)
	if err != nil {
		return nil, apiError(err)
	}

	s.emitter.Emit(model.Event{
		Type:   model.EventProofSubmitted,
		UserID: order.CreatorID,
		Payload: model.EventPayload{
			OrderID:      orderID,
			AssignmentID: assignment.ID,
			Title:        order.Title,
		},
	})

	return assignment, nil
}

// VerifyProof records the creator's (or an admin's) permanent decision on a
// submitted proof. Approval credits the worker's ledger and may complete the
// order; both happen atomically with the status flip in storage.
func (s *Service) VerifyProof(ctx context.Context, caller model.TokenInfo, assignmentID int64, input model.VerifyProofDTO) (*model.VerifyResult, *model.APIError) {
	if input.Status != model.AssignmentStatusApproved && input.Status != model.AssignmentStatusRejected {
		return nil, badRequest(model.ErrBadDecisionMessage)
	}

	_, order, err := s.storage.GetAssignmentWithOrder(ctx, assignmentID)
	if err != nil {
		return nil, apiError(err)
	}

	if order.CreatorID != caller.ID && caller.Role != model.RoleAdmin {
		return nil, forbidden()
	}

	result, err := s.storage.VerifyAssignment(ctx, assignmentID, input.Status)
	if err != nil {
		return nil, apiError(err)
	}

	s.emitter.Emit(model.Event{
		Type:   model.EventProofStatus,
		UserID: result.Assignment.WorkerID,
		Payload: model.EventPayload{
			OrderID: result.Order.ID,
			Title:   result.Order.Title,
			Status:  string(result.Assignment.Status),
		},
	})

	if result.OrderCompleted {
		s.emitter.Emit(model.Event{
			Type:   model.EventOrderCompleted,
			UserID: result.Order.CreatorID,
			Payload: model.EventPayload{
				OrderID: result.Order.ID,
				Title:   result.Order.Title,
			},
		})
	}

	return result, nil
}

func (s *Service) ListWorkerAssignments(ctx context.Context, caller model.TokenInfo) ([]model.Assignment, *model.APIError) {
	assignments, err := s.storage.ListWorkerAssignments(ctx, caller.ID)
	if err != nil {
		return nil, apiError(err)
	}

	return assignments, nil
}

// ListOrderProofs returns the assignments of an order for review; visible to
// the order creator and admins only.
func (s *Service) ListOrderProofs(ctx context.Context, caller model.TokenInfo, orderID int64) ([]model.Assignment, *model.APIError) {
	order, err := s.storage.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, apiError(err)
	}

	if order.CreatorID != caller.ID && caller.Role != model.RoleAdmin {
		return nil, forbidden()
	}

	assignments, err := s.storage.ListOrderAssignments(ctx, orderID)
	if err != nil {
		return nil, apiError(err)
	}

	return assignments, nil
}
