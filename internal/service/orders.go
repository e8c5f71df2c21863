package service

import (
	"context"

	"github.com/ibeloyar/taskmarket/internal/model"
)

// CreateOrder posts a new order in PENDING state. The total budget is derived
// once here (worker payout subtotal plus the admin fee) and never recomputed.
func (s *Service) CreateOrder(ctx context.Context, caller model.TokenInfo, input model.CreateOrderDTO) (*model.Order, *model.APIError) {
	if caller.Role != model.RoleOrderGiver && caller.Role != model.RoleAdmin {
		return nil, forbidden()
	}

	if err := validateCreateOrderDTO(input); err != nil {
		return nil, badRequest(err.Error())
	}

	subtotal := float64(input.WorkerCount) * input.RatePerWorker

	order, err := s.storage.CreateOrder(ctx, model.Order{
		CreatorID:     caller.ID,
		OrderType:     input.OrderType,
		Title:         input.Title,
		Description:   input.Description,
		Platform:      input.Platform,
		Link:          input.Link,
		ProofType:     input.ProofType,
		Instructions:  input.Instructions,
		WorkerCount:   input.WorkerCount,
		RatePerWorker: input.RatePerWorker,
		TotalBudget:   subtotal + subtotal*model.AdminFeeRate,
		Status:        model.OrderStatusPending,
	})
	if err != nil {
		return nil, apiError(err)
	}

	s.emitter.Emit(model.Event{
		Type:     model.EventNewOrder,
		ToAdmins: true,
		Payload: model.EventPayload{
			OrderID:   order.ID,
			OrderType: order.OrderType,
			Title:     order.Title,
		},
	})

	return order, nil
}

// ApproveOrder activates a pending order. A repeated approval is a conflict
// surfaced to the caller, never a silent no-op.
func (s *Service) ApproveOrder(ctx context.Context, caller model.TokenInfo, orderID int64) (*model.Order, *model.APIError) {
	if caller.Role != model.RoleAdmin {
		return nil, forbidden()
	}

	order, err := s.storage.UpdateOrderStatus(ctx, orderID, model.OrderStatusActive, model.OrderStatusPending)
	if err != nil {
		return nil, apiError(err)
	}

	s.emitter.Emit(model.Event{
		Type:   model.EventOrderApproved,
		UserID: order.CreatorID,
		Payload: model.EventPayload{
			OrderID: order.ID,
			Title:   order.Title,
		},
	})

	return order, nil
}

func (s *Service) CancelOrder(ctx context.Context, caller model.TokenInfo, orderID int64) (*model.Order, *model.APIError) {
	if caller.Role != model.RoleAdmin {
		return nil, forbidden()
	}

	order, err := s.storage.UpdateOrderStatus(ctx, orderID, model.OrderStatusCancelled,
		model.OrderStatusPending, model.OrderStatusActive)
	if err != nil {
		return nil, apiError(err)
	}

	return order, nil
}

func (s *Service) ListOrders(ctx context.Context, orderType model.OrderType, skip, take int) (*model.OrderList, *model.APIError) {
	if orderType != "" && !validOrderType(orderType) {
		return nil, badRequest(model.ErrOrderTypeMessage)
	}
	if take <= 0 || take > 100 {
		take = 10
	}
	if skip < 0 {
		skip = 0
	}

	list, err := s.storage.ListActiveOrders(ctx, orderType, skip, take)
	if err != nil {
		return nil, apiError(err)
	}

	return list, nil
}

func (s *Service) GetOrder(ctx context.Context, orderID int64) (*model.OrderDetails, *model.APIError) {
	order, err := s.storage.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, apiError(err)
	}

	assignments, err := s.storage.ListOrderAssignments(ctx, orderID)
	if err != nil {
		return nil, apiError(err)
	}

	return &model.OrderDetails{Order: *order, Assignments: assignments}, nil
}

func (s *Service) ListCreatorOrders(ctx context.Context, caller model.TokenInfo) ([]model.Order, *model.APIError) {
	orders, err := s.storage.ListCreatorOrders(ctx, caller.ID)
	if err != nil {
		return nil, apiError(err)
	}

	return orders, nil
}
