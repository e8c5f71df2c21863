package model

import "errors"

type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

const (
	ErrInternalServerMessage         = "internal server error"
	ErrInvalidLoginOrPasswordMessage = "invalid login or password"
	ErrUserAlreadyExistMessage       = "user already exists"
	ErrForbiddenMessage              = "operation is not permitted for this user"
	ErrServiceUnavailableMessage     = "storage is temporarily unavailable"

	ErrWorkerCountMessage    = "worker count must be positive"
	ErrRatePerWorkerMessage  = "rate per worker must be positive"
	ErrOrderTypeMessage      = "unknown order type"
	ErrTitleRequiredMessage  = "title is required"
	ErrProofRequiredMessage  = "proof is required"
	ErrBadDecisionMessage    = "decision must be APPROVED or REJECTED"
	ErrWithdrawMethodMessage = "unknown withdraw method"
	ErrBelowMinimumMessage   = "withdraw amount is below the minimum"
)

var (
	ErrInvalidLoginOrPassword = errors.New(ErrInvalidLoginOrPasswordMessage)

	ErrLoginTaken          = errors.New(ErrUserAlreadyExistMessage)
	ErrNotFound            = errors.New("entity not found")
	ErrInvalidState        = errors.New("operation is illegal for current entity state")
	ErrDuplicateJoin       = errors.New("worker already joined this order")
	ErrSlotsFull           = errors.New("no slots remaining")
	ErrNotAssigned         = errors.New("worker is not assigned to this order")
	ErrAlreadySubmitted    = errors.New("proof already submitted")
	ErrAlreadyVerified     = errors.New("assignment already verified")
	ErrAlreadyProcessed    = errors.New("withdraw request already processed")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrServiceUnavailable  = errors.New(ErrServiceUnavailableMessage)
)
