package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/ibeloyar/taskmarket/internal/model"
	"github.com/stretchr/testify/assert"

	mockPG "github.com/ibeloyar/taskmarket/internal/repository/pg/mocks"
)

func TestService_CreateOrder_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := mockPG.NewMockStorage(ctrl)
	emitter := &recordingEmitter{}
	svc := newTestService(mockStorage, emitter)

	caller := model.TokenInfo{ID: 42, Login: "giver", Role: model.RoleOrderGiver}
	input := model.CreateOrderDTO{
		OrderType:     model.OrderTypeDigitalMarketing,
		Title:         "Follow our page",
		WorkerCount:   2,
		RatePerWorker: 5.0,
	}

	mockStorage.EXPECT().
		CreateOrder(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, order model.Order) (*model.Order, error) {
			assert.Equal(t, int64(42), order.CreatorID)
			assert.Equal(t, model.OrderStatusPending, order.Status)
			// 2 workers x 5.00 plus the 2% admin fee
			assert.InDelta(t, 10.20, order.TotalBudget, 1e-9)
			order.ID = 7
			return &order, nil
		})

	order, apiErr := svc.CreateOrder(context.Background(), caller, input)

	assert.Nil(t, apiErr)
	assert.Equal(t, int64(7), order.ID)
	assert.Len(t, emitter.events, 1)
	assert.Equal(t, model.EventNewOrder, emitter.events[0].Type)
	assert.True(t, emitter.events[0].ToAdmins)
}

func TestService_CreateOrder_WorkerForbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := mockPG.NewMockStorage(ctrl)
	svc := newTestService(mockStorage, &recordingEmitter{})

	caller := model.TokenInfo{ID: 42, Role: model.RoleWorker}

	order, apiErr := svc.CreateOrder(context.Background(), caller, model.CreateOrderDTO{
		OrderType:     model.OrderTypeApp,
		Title:         "Install the app",
		WorkerCount:   1,
		RatePerWorker: 1.0,
	})

	assert.Nil(t, order)
	assert.NotNil(t, apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.Code)
}

func TestService_CreateOrder_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := mockPG.NewMockStorage(ctrl)
	svc := newTestService(mockStorage, &recordingEmitter{})

	caller := model.TokenInfo{ID: 42, Role: model.RoleOrderGiver}

	tests := []struct {
		name    string
		input   model.CreateOrderDTO
		message string
	}{
		{
			name: "missing title",
			input: model.CreateOrderDTO{
				OrderType:     model.OrderTypeApp,
				WorkerCount:   1,
				RatePerWorker: 1.0,
			},
			message: model.ErrTitleRequiredMessage,
		},
		{
			name: "unknown order type",
			input: model.CreateOrderDTO{
				OrderType:     "GARDENING",
				Title:         "Water the plants",
				WorkerCount:   1,
				RatePerWorker: 1.0,
			},
			message: model.ErrOrderTypeMessage,
		},
		{
			name: "zero worker count",
			input: model.CreateOrderDTO{
				OrderType:     model.OrderTypeApp,
				Title:         "Install the app",
				WorkerCount:   0,
				RatePerWorker: 1.0,
			},
			message: model.ErrWorkerCountMessage,
		},
		{
			name: "negative rate",
			input: model.CreateOrderDTO{
				OrderType:     model.OrderTypeApp,
				Title:         "Install the app",
				WorkerCount:   1,
				RatePerWorker: -2.0,
			},
			message: model.ErrRatePerWorkerMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order, apiErr := svc.CreateOrder(context.Background(), caller, tt.input)

			assert.Nil(t, order)
			assert.NotNil(t, apiErr)
			assert.Equal(t, http.StatusBadRequest, apiErr.Code)
			assert.Equal(t, tt.message, apiErr.Message)
		})
	}
}

func TestService_ApproveOrder_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := mockPG.NewMockStorage(ctrl)
	emitter := &recordingEmitter{}
	svc := newTestService(mockStorage, emitter)

	caller := model.TokenInfo{ID: 1, Role: model.RoleAdmin}

	mockStorage.EXPECT().
		UpdateOrderStatus(gomock.Any(), int64(7), model.OrderStatusActive, model.OrderStatusPending).
		Return(&model.Order{ID: 7, CreatorID: 42, Title: "Follow our page", Status: model.OrderStatusActive}, nil)

	order, apiErr := svc.ApproveOrder(context.Background(), caller, 7)

	assert.Nil(t, apiErr)
	assert.Equal(t, model.OrderStatusActive, order.Status)
	assert.Len(t, emitter.events, 1)
	assert.Equal(t, model.EventOrderApproved, emitter.events[0].Type)
	assert.Equal(t, int64(42), emitter.events[0].UserID)
}

func TestService_ApproveOrder_AlreadyActive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := mockPG.NewMockStorage(ctrl)
	emitter := &recordingEmitter{}
	svc := newTestService(mockStorage, emitter)

	caller := model.TokenInfo{ID: 1, Role: model.RoleAdmin}

	mockStorage.EXPECT().
		UpdateOrderStatus(gomock.Any(), int64(7), model.OrderStatusActive, model.OrderStatusPending).
		Return(nil, model.ErrInvalidState)

	order, apiErr := svc.ApproveOrder(context.Background(), caller, 7)

	assert.Nil(t, order)
	assert.NotNil(t, apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Code)
	assert.Empty(t, emitter.events)
}

func TestService_ApproveOrder_NonAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := mockPG.NewMockStorage(ctrl)
	svc := newTestService(mockStorage, &recordingEmitter{})

	order, apiErr := svc.ApproveOrder(context.Background(), model.TokenInfo{ID: 42, Role: model.RoleOrderGiver}, 7)

	assert.Nil(t, order)
	assert.NotNil(t, apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.Code)
}

func TestService_CancelOrder_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := mockPG.NewMockStorage(ctrl)
	svc := newTestService(mockStorage, &recordingEmitter{})

	caller := model.TokenInfo{ID: 1, Role: model.RoleAdmin}

	mockStorage.EXPECT().
		UpdateOrderStatus(gomock.Any(), int64(7), model.OrderStatusCancelled,
			model.OrderStatusPending, model.OrderStatusActive).
		Return(&model.Order{ID: 7, Status: model.OrderStatusCancelled}, nil)

	order, apiErr := svc.CancelOrder(context.Background(), caller, 7)

	assert.Nil(t, apiErr)
	assert.Equal(t, model.OrderStatusCancelled, order.Status)
}

func TestService_CancelOrder_Completed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := mockPG.NewMockStorage(ctrl)
	svc := newTestService(mockStorage, &recordingEmitter{})

	caller := model.TokenInfo{ID: 1, Role: model.RoleAdmin}

	mockStorage.EXPECT().
		UpdateOrderStatus(gomock.Any(), int64(7), model.OrderStatusCancelled,
			model.OrderStatusPending, model.OrderStatusActive).
		Return(nil, model.ErrInvalidState)

	order, apiErr := svc.CancelOrder(context.Background(), caller, 7)

	assert.Nil(t, order)
	assert.NotNil(t, apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Code)
}

func TestService_ListOrders_UnknownType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := mockPG.NewMockStorage(ctrl)
	svc := newTestService(mockStorage, &recordingEmitter{})

	list, apiErr := svc.ListOrders(context.Background(), "GARDENING", 0, 10)

	assert.Nil(t, list)
	assert.NotNil(t, apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Code)
}

func TestService_ListOrders_ClampsPagination(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := mockPG.NewMockStorage(ctrl)
	svc := newTestService(mockStorage, &recordingEmitter{})

	mockStorage.EXPECT().
		ListActiveOrders(gomock.Any(), model.OrderType(""), 0, 10).
		Return(&model.OrderList{Orders: []model.Order{}, Total: 0}, nil)

	list, apiErr := svc.ListOrders(context.Background(), "", -5, 5000)

	assert.Nil(t, apiErr)
	assert.NotNil(t, list)
}

func TestService_GetOrder_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := mockPG.NewMockStorage(ctrl)
	svc := newTestService(mockStorage, &recordingEmitter{})

	mockStorage.EXPECT().
		GetOrderByID(gomock.Any(), int64(7)).
		Return(&model.Order{ID: 7, Title: "Follow our page"}, nil)
	mockStorage.EXPECT().
		ListOrderAssignments(gomock.Any(), int64(7)).
		Return([]model.Assignment{{ID: 1, OrderID: 7}}, nil)

	details, apiErr := svc.GetOrder(context.Background(), 7)

	assert.Nil(t, apiErr)
	assert.Equal(t, int64(7), details.Order.ID)
	assert.Len(t, details.Assignments, 1)
}

func TestService_GetOrder_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := mockPG.NewMockStorage(ctrl)
	svc := newTestService(mockStorage, &recordingEmitter{})

	mockStorage.EXPECT().
		GetOrderByID(gomock.Any(), int64(404)).
		Return(nil, model.ErrNotFound)

	details, apiErr := svc.GetOrder(context.Background(), 404)

	assert.Nil(t, details)
	assert.NotNil(t, apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Code)
}
