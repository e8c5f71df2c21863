package service

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/ibeloyar/taskmarket/internal/model"
	"github.com/ibeloyar/taskmarket/pgk/auth"
)

type Storage interface {
	CreateUser(ctx context.Context, user model.User) (int64, error)
	GetUserByLogin(ctx context.Context, login string) (*model.User, error)

	CreateOrder(ctx context.Context, order model.Order) (*model.Order, error)
	GetOrderByID(ctx context.Context, orderID int64) (*model.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID int64, next model.OrderStatus, expected ...model.OrderStatus) (*model.Order, error)
	ListActiveOrders(ctx context.Context, orderType model.OrderType, skip, take int) (*model.OrderList, error)
	ListCreatorOrders(ctx context.Context, creatorID int64) ([]model.Order, error)

	JoinOrder(ctx context.Context, orderID, workerID int64) (*model.Assignment, error)
	SubmitProof(ctx context.Context, orderID, workerID int64, proof string) (*model.Assignment, error)
	GetAssignmentWithOrder(ctx context.Context, assignmentID int64) (*model.Assignment, *model.Order, error)
	VerifyAssignment(ctx context.Context, assignmentID int64, decision model.AssignmentStatus) (*model.VerifyResult, error)
	ListOrderAssignments(ctx context.Context, orderID int64) ([]model.Assignment, error)
	ListWorkerAssignments(ctx context.Context, workerID int64) ([]model.Assignment, error)

	GetEarningByUserID(ctx context.Context, userID int64) (*model.Earning, error)
	CreateWithdraw(ctx context.Context, userID int64, input model.RequestWithdrawDTO) (*model.Withdraw, error)
	DecideWithdraw(ctx context.Context, requestID int64, outcome model.WithdrawStatus, notes string) (*model.Withdraw, error)
	ListWithdraws(ctx context.Context, status model.WithdrawStatus, skip, take int) (*model.WithdrawList, error)
	ListUserWithdraws(ctx context.Context, userID int64) ([]model.Withdraw, error)

	ListNotifications(ctx context.Context, userID int64) ([]model.Notification, error)
	MarkNotificationsRead(ctx context.Context, userID int64) error
}

type PasswordRepo interface {
	HashPassword(password string) (string, error)
	CheckPasswordHash(password, hash string) bool
}

// Emitter is the notification collaborator. Emission is fire-and-forget; the
// service never waits on it and never fails because of it.
type Emitter interface {
	Emit(event model.Event)
}

type Service struct {
	storage  Storage
	password PasswordRepo
	emitter  Emitter

	tokenSecret string
	tokenExp    time.Duration
	withdrawMin float64
}

func New(s Storage, p PasswordRepo, e Emitter, tokenExp time.Duration, tokenSecret string, withdrawMin float64) *Service {
	return &Service{
		storage:  s,
		password: p,
		emitter:  e,

		tokenExp:    tokenExp,
		tokenSecret: tokenSecret,
		withdrawMin: withdrawMin,
	}
}

// apiError maps storage failures onto the transport taxonomy. Conflicts with
// current entity state are 409 so retrying the same request unmodified stays
// pointless; only 503 is worth a retry.
func apiError(err error) *model.APIError {
	switch {
	case errors.Is(err, model.ErrNotFound):
		return &model.APIError{Code: http.StatusNotFound, Message: err.Error()}
	case errors.Is(err, model.ErrNotAssigned):
		return &model.APIError{Code: http.StatusNotFound, Message: err.Error()}
	case errors.Is(err, model.ErrInvalidState),
		errors.Is(err, model.ErrDuplicateJoin),
		errors.Is(err, model.ErrSlotsFull),
		errors.Is(err, model.ErrAlreadySubmitted),
		errors.Is(err, model.ErrAlreadyVerified),
		errors.Is(err, model.ErrAlreadyProcessed),
		errors.Is(err, model.ErrInsufficientBalance):
		return &model.APIError{Code: http.StatusConflict, Message: err.Error()}
	case errors.Is(err, model.ErrServiceUnavailable):
		return &model.APIError{Code: http.StatusServiceUnavailable, Message: model.ErrServiceUnavailableMessage}
	default:
		return &model.APIError{Code: http.StatusInternalServerError, Message: model.ErrInternalServerMessage}
	}
}

func forbidden() *model.APIError {
	return &model.APIError{Code: http.StatusForbidden, Message: model.ErrForbiddenMessage}
}

func badRequest(message string) *model.APIError {
	return &model.APIError{Code: http.StatusBadRequest, Message: message}
}

func (s *Service) Register(ctx context.Context, input model.RegisterDTO) (string, *model.APIError) {
	if err := validateRegisterDTO(input); err != nil {
		return "", badRequest(err.Error())
	}

	role := input.Role
	if role == "" {
		role = model.RoleWorker
	}

	passwordHash, err := s.password.HashPassword(input.Password)
	if err != nil {
		return "", &model.APIError{Code: http.StatusInternalServerError, Message: model.ErrInternalServerMessage}
	}

	userID, err := s.storage.CreateUser(ctx, model.User{
		Login:    input.Login,
		Password: passwordHash,
		Role:     role,
	})
	if err != nil {
		if errors.Is(err, model.ErrLoginTaken) {
			return "", &model.APIError{Code: http.StatusConflict, Message: model.ErrUserAlreadyExistMessage}
		}
		return "", apiError(err)
	}

	token, err := auth.GenerateBearerToken(model.TokenInfo{
		ID:    userID,
		Login: input.Login,
		Role:  role,
	}, s.tokenExp, s.tokenSecret)
	if err != nil {
		return "", &model.APIError{Code: http.StatusInternalServerError, Message: model.ErrInternalServerMessage}
	}

	return token, nil
}

func (s *Service) Login(ctx context.Context, input model.LoginDTO) (string, *model.APIError) {
	if err := validateLoginDTO(input); err != nil {
		return "", badRequest(err.Error())
	}

	user, err := s.storage.GetUserByLogin(ctx, input.Login)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return "", &model.APIError{Code: http.StatusUnauthorized, Message: model.ErrInvalidLoginOrPasswordMessage}
		}
		return "", apiError(err)
	}

	if !s.password.CheckPasswordHash(input.Password, user.Password) {
		return "", &model.APIError{Code: http.StatusUnauthorized, Message: model.ErrInvalidLoginOrPasswordMessage}
	}

	token, err := auth.GenerateBearerToken(model.TokenInfo{
		ID:    user.ID,
		Login: user.Login,
		Role:  user.Role,
	}, s.tokenExp, s.tokenSecret)
	if err != nil {
		return "", &model.APIError{Code: http.StatusInternalServerError, Message: model.ErrInternalServerMessage}
	}

	return token, nil
}

func (s *Service) ListNotifications(ctx context.Context, caller model.TokenInfo) ([]model.Notification, *model.APIError) {
	notifications, err := s.storage.ListNotifications(ctx, caller.ID)
	if err != nil {
		return nil, apiError(err)
	}

	return notifications, nil
}

func (s *Service) MarkNotificationsRead(ctx context.Context, caller model.TokenInfo) *model.APIError {
	if err := s.storage.MarkNotificationsRead(ctx, caller.ID); err != nil {
		return apiError(err)
	}

	return nil
}
