package http

import (
	"context"
	"net/http"

	"github.com/ibeloyar/taskmarket/internal/model"
	"github.com/ibeloyar/taskmarket/pgk/auth"
	"go.uber.org/zap"
)

type Service interface {
	Register(ctx context.Context, input model.RegisterDTO) (string, *model.APIError)
	Login(ctx context.Context, input model.LoginDTO) (string, *model.APIError)

	CreateOrder(ctx context.Context, caller model.TokenInfo, input model.CreateOrderDTO) (*model.Order, *model.APIError)
	ApproveOrder(ctx context.Context, caller model.TokenInfo, orderID int64) (*model.Order, *model.APIError)
	CancelOrder(ctx context.Context, caller model.TokenInfo, orderID int64) (*model.Order, *model.APIError)
	ListOrders(ctx context.Context, orderType model.OrderType, skip, take int) (*model.OrderList, *model.APIError)
	GetOrder(ctx context.Context, orderID int64) (*model.OrderDetails, *model.APIError)
	ListCreatorOrders(ctx context.Context, caller model.TokenInfo) ([]model.Order, *model.APIError)

	JoinOrder(ctx context.Context, caller model.TokenInfo, orderID int64) (*model.Assignment, *model.APIError)
	SubmitProof(ctx context.Context, caller model.TokenInfo, orderID int64, input model.SubmitProofDTO) (*model.Assignment, *model.APIError)
	VerifyProof(ctx context.Context, caller model.TokenInfo, assignmentID int64, input model.VerifyProofDTO) (*model.VerifyResult, *model.APIError)
	ListWorkerAssignments(ctx context.Context, caller model.TokenInfo) ([]model.Assignment, *model.APIError)
	ListOrderProofs(ctx context.Context, caller model.TokenInfo, orderID int64) ([]model.Assignment, *model.APIError)

	GetEarnings(ctx context.Context, caller model.TokenInfo) (*model.Earning, *model.APIError)
	RequestWithdraw(ctx context.Context, caller model.TokenInfo, input model.RequestWithdrawDTO) (*model.Withdraw, *model.APIError)
	DecideWithdraw(ctx context.Context, caller model.TokenInfo, requestID int64, input model.DecideWithdrawDTO) (*model.Withdraw, *model.APIError)
	ListWithdrawRequests(ctx context.Context, caller model.TokenInfo, status model.WithdrawStatus, skip, take int) (*model.WithdrawList, *model.APIError)
	ListMyWithdraws(ctx context.Context, caller model.TokenInfo) ([]model.Withdraw, *model.APIError)

	ListNotifications(ctx context.Context, caller model.TokenInfo) ([]model.Notification, *model.APIError)
	MarkNotificationsRead(ctx context.Context, caller model.TokenInfo) *model.APIError
}

type Pinger interface {
	Ping() error
}

type Controller struct {
	service Service
	pinger  Pinger
	lg      *zap.SugaredLogger
}

func New(s Service, p Pinger, lg *zap.SugaredLogger) *Controller {
	return &Controller{
		service: s,
		pinger:  p,
		lg:      lg,
	}
}

func caller(r *http.Request) model.TokenInfo {
	info := auth.GetTokenInfo[model.TokenInfo](r)
	if info == nil {
		return model.TokenInfo{}
	}
	return *info
}

func (c *Controller) Ping(w http.ResponseWriter, r *http.Request) {
	if err := c.pinger.Ping(); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (c *Controller) Register(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[model.RegisterDTO](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	token, apiErr := c.service.Register(r.Context(), body)
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	w.Header().Set("Authorization", token)
	w.WriteHeader(http.StatusOK)
}

func (c *Controller) Login(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[model.LoginDTO](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	token, apiErr := c.service.Login(r.Context(), body)
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	w.Header().Set("Authorization", token)
	w.WriteHeader(http.StatusOK)
}

func (c *Controller) CreateOrder(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[model.CreateOrderDTO](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	order, apiErr := c.service.CreateOrder(r.Context(), caller(r), body)
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	writeJSON(w, c.lg, order, http.StatusCreated)
}

func (c *Controller) ApproveOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := pathID(r, "orderID")
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	order, apiErr := c.service.ApproveOrder(r.Context(), caller(r), orderID)
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	writeJSON(w, c.lg, order, http.StatusOK)
}

func (c *Controller) CancelOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := pathID(r, "orderID")
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	order, apiErr := c.service.CancelOrder(r.Context(), caller(r), orderID)
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	writeJSON(w, c.lg, order, http.StatusOK)
}

func (c *Controller) ListOrders(w http.ResponseWriter, r *http.Request) {
	orderType := model.OrderType(r.URL.Query().Get("type"))
	skip := queryInt(r, "skip", 0)
	take := queryInt(r, "take", 10)

	list, apiErr := c.service.ListOrders(r.Context(), orderType, skip, take)
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	writeJSON(w, c.lg, list, http.StatusOK)
}

func (c *Controller) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := pathID(r, "orderID")
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	details, apiErr := c.service.GetOrder(r.Context(), orderID)
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	writeJSON(w, c.lg, details, http.StatusOK)
}

func (c *Controller) ListCreatorOrders(w http.ResponseWriter, r *http.Request) {
	orders, apiErr := c.service.ListCreatorOrders(r.Context(), caller(r))
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	writeJSON(w, c.lg, orders, http.StatusOK)
}

func (c *Controller) JoinOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := pathID(r, "orderID")
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	assignment, apiErr := c.service.JoinOrder(r.Context(), caller(r), orderID)
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	writeJSON(w, c.lg, assignment, http.StatusOK)
}

func (c *Controller) SubmitProof(w http.ResponseWriter, r *http.Request) {
	orderID, err := pathID(r, "orderID")
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	body, err := readBody[model.SubmitProofDTO](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	assignment, apiErr := c.service.SubmitProof(r.Context(), caller(r), orderID, body)
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	writeJSON(w, c.lg, assignment, http.StatusOK)
}

func (c *Controller) VerifyProof(w http.ResponseWriter, r *http.Request) {
	assignmentID, err := pathID(r, "assignmentID")
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	body, err := readBody[model.VerifyProofDTO](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	result, apiErr := c.service.VerifyProof(r.Context(), caller(r), assignmentID, body)
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	writeJSON(w, c.lg, result, http.StatusOK)
}

func (c *Controller) ListWorkerAssignments(w http.ResponseWriter, r *http.Request) {
	assignments, apiErr := c.service.ListWorkerAssignments(r.Context(), caller(r))
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	writeJSON(w, c.lg, assignments, http.StatusOK)
}

func (c *Controller) ListOrderProofs(w http.ResponseWriter, r *http.Request) {
	orderID, err := pathID(r, "orderID")
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	assignments, apiErr := c.service.ListOrderProofs(r.Context(), caller(r), orderID)
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	writeJSON(w, c.lg, assignments, http.StatusOK)
}

func (c *Controller) GetEarnings(w http.ResponseWriter, r *http.Request) {
	earning, apiErr := c.service.GetEarnings(r.Context(), caller(r))
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	writeJSON(w, c.lg, earning, http.StatusOK)
}

func (c *Controller) RequestWithdraw(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[model.RequestWithdrawDTO](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	withdraw, apiErr := c.service.RequestWithdraw(r.Context(), caller(r), body)
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	writeJSON(w, c.lg, withdraw, http.StatusCreated)
}

func (c *Controller) DecideWithdraw(w http.ResponseWriter, r *http.Request) {
	requestID, err := pathID(r, "requestID")
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	body, err := readBody[model.DecideWithdrawDTO](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	withdraw, apiErr := c.service.DecideWithdraw(r.Context(), caller(r), requestID, body)
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	writeJSON(w, c.lg, withdraw, http.StatusOK)
}

func (c *Controller) ListWithdrawRequests(w http.ResponseWriter, r *http.Request) {
	status := model.WithdrawStatus(r.URL.Query().Get("status"))
	skip := queryInt(r, "skip", 0)
	take := queryInt(r, "take", 20)

	list, apiErr := c.service.ListWithdrawRequests(r.Context(), caller(r), status, skip, take)
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	writeJSON(w, c.lg, list, http.StatusOK)
}

func (c *Controller) ListMyWithdraws(w http.ResponseWriter, r *http.Request) {
	withdraws, apiErr := c.service.ListMyWithdraws(r.Context(), caller(r))
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	if len(withdraws) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, c.lg, withdraws, http.StatusOK)
}

func (c *Controller) ListNotifications(w http.ResponseWriter, r *http.Request) {
	notifications, apiErr := c.service.ListNotifications(r.Context(), caller(r))
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	writeJSON(w, c.lg, notifications, http.StatusOK)
}

func (c *Controller) MarkNotificationsRead(w http.ResponseWriter, r *http.Request) {
	if apiErr := c.service.MarkNotificationsRead(r.Context(), caller(r)); apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	w.WriteHeader(http.StatusOK)
}
