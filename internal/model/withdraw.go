package model

import "time"

type WithdrawMethod string

const (
	WithdrawMethodPaypal WithdrawMethod = "PAYPAL"
	WithdrawMethodStripe WithdrawMethod = "STRIPE"
	WithdrawMethodWise   WithdrawMethod = "WISE"
)

type WithdrawStatus string

const (
	WithdrawStatusPending  WithdrawStatus = "PENDING"
	WithdrawStatusApproved WithdrawStatus = "APPROVED"
	WithdrawStatusRejected WithdrawStatus = "REJECTED"
)

type Withdraw struct {
	ID          int64          `json:"id"`
	UserID      int64          `json:"user_id"`
	Amount      float64        `json:"amount"`
	Method      WithdrawMethod `json:"method"`
	AccountInfo string         `json:"account_info"`
	Status      WithdrawStatus `json:"status"`
	Notes       string         `json:"notes,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

type RequestWithdrawDTO struct {
	Amount      float64        `json:"amount"`
	Method      WithdrawMethod `json:"method"`
	AccountInfo string         `json:"account_info"`
}

type DecideWithdrawDTO struct {
	Status WithdrawStatus `json:"status"`
	Notes  string         `json:"notes"`
}

type WithdrawList struct {
	Requests []Withdraw `json:"withdraw_requests"`
	Total    int64      `json:"total"`
	HasMore  bool       `json:"has_more"`
}
