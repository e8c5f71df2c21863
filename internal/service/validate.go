package service

import (
	"errors"

	"github.com/ibeloyar/taskmarket/internal/model"
)

const (
	minPassLen  = 4
	maxPassLen  = 64
	minLoginLen = 3
	maxLoginLen = 64
)

func validateLoginDTO(input model.LoginDTO) error {
	if err := validateLogin(input.Login); err != nil {
		return err
	}

	return validatePassword(input.Password)
}

func validateRegisterDTO(input model.RegisterDTO) error {
	if err := validateLogin(input.Login); err != nil {
		return err
	}

	if err := validatePassword(input.Password); err != nil {
		return err
	}

	switch input.Role {
	case "", model.RoleWorker, model.RoleOrderGiver, model.RoleAdmin:
		return nil
	default:
		return errors.New("unknown role")
	}
}

func validateLogin(login string) error {
	if len(login) < minLoginLen || len(login) > maxLoginLen {
		return errors.New(model.ErrInvalidLoginOrPasswordMessage)
	}

	return nil
}

func validatePassword(password string) error {
	if len(password) < minPassLen || len(password) > maxPassLen {
		return errors.New(model.ErrInvalidLoginOrPasswordMessage)
	}

	return nil
}

func validateCreateOrderDTO(input model.CreateOrderDTO) error {
	if input.Title == "" {
		return errors.New(model.ErrTitleRequiredMessage)
	}
	if !validOrderType(input.OrderType) {
		return errors.New(model.ErrOrderTypeMessage)
	}
	if input.WorkerCount <= 0 {
		return errors.New(model.ErrWorkerCountMessage)
	}
	if input.RatePerWorker <= 0 {
		return errors.New(model.ErrRatePerWorkerMessage)
	}

	return nil
}

func validOrderType(t model.OrderType) bool {
	switch t {
	case model.OrderTypeDigitalMarketing, model.OrderTypeApp, model.OrderTypeWebDevelopment:
		return true
	default:
		return false
	}
}

func validWithdrawMethod(m model.WithdrawMethod) bool {
	switch m {
	case model.WithdrawMethodPaypal, model.WithdrawMethodStripe, model.WithdrawMethodWise:
		return true
	default:
		return false
	}
}
