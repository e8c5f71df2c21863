package model

import "time"

type OrderType string

const (
	OrderTypeDigitalMarketing OrderType = "DIGITAL_MARKETING"
	OrderTypeApp              OrderType = "APP"
	OrderTypeWebDevelopment   OrderType = "WEB_DEVELOPMENT"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusActive    OrderStatus = "ACTIVE"
	OrderStatusCompleted OrderStatus = "COMPLETED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// AdminFeeRate is the surcharge applied on top of the worker payout subtotal.
const AdminFeeRate = 0.02

type Order struct {
	ID            int64       `json:"id"`
	CreatorID     int64       `json:"creator_id"`
	OrderType     OrderType   `json:"order_type"`
	Title         string      `json:"title"`
	Description   string      `json:"description"`
	Platform      string      `json:"platform"`
	Link          string      `json:"link"`
	ProofType     string      `json:"proof_type"`
	Instructions  string      `json:"instructions"`
	WorkerCount   int         `json:"worker_count"`
	RatePerWorker float64     `json:"rate_per_worker"`
	TotalBudget   float64     `json:"total_budget"`
	Status        OrderStatus `json:"status"`
	CreatedAt     time.Time   `json:"created_at"`
}

type CreateOrderDTO struct {
	OrderType     OrderType `json:"order_type"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Platform      string    `json:"platform"`
	Link          string    `json:"link"`
	ProofType     string    `json:"proof_type"`
	Instructions  string    `json:"instructions"`
	WorkerCount   int       `json:"worker_count"`
	RatePerWorker float64   `json:"rate_per_worker"`
}

type OrderList struct {
	Orders  []Order `json:"orders"`
	Total   int64   `json:"total"`
	HasMore bool    `json:"has_more"`
}

type OrderDetails struct {
	Order       Order        `json:"order"`
	Assignments []Assignment `json:"assignments"`
}
