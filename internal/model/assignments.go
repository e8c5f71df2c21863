package model

import "time"

type AssignmentStatus string

const (
	AssignmentStatusPending  AssignmentStatus = "PENDING"
	AssignmentStatusApproved AssignmentStatus = "APPROVED"
	AssignmentStatusRejected AssignmentStatus = "REJECTED"
)

// Assignment is a worker's claim on one slot of an order. Proof is set at most
// once, status moves exactly once from PENDING to a terminal value.
type Assignment struct {
	ID          int64            `json:"id"`
	OrderID     int64            `json:"order_id"`
	WorkerID    int64            `json:"worker_id"`
	Proof       *string          `json:"proof"`
	Status      AssignmentStatus `json:"status"`
	JoinedAt    time.Time        `json:"joined_at"`
	CompletedAt *time.Time       `json:"completed_at"`
}

type SubmitProofDTO struct {
	Proof string `json:"proof"`
}

type VerifyProofDTO struct {
	Status AssignmentStatus `json:"status"`
}

// VerifyResult carries everything the caller needs after a verification
// transaction commits: the updated assignment, its parent order, and whether
// this decision completed the order.
type VerifyResult struct {
	Assignment     Assignment `json:"assignment"`
	Order          Order      `json:"order"`
	OrderCompleted bool       `json:"order_completed"`
}
