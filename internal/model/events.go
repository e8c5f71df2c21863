package model

import "time"

type EventType string

const (
	EventNewOrder          EventType = "NEW_ORDER"
	EventOrderApproved     EventType = "ORDER_APPROVED"
	EventOrderCompleted    EventType = "ORDER_COMPLETED"
	EventWorkerJoined      EventType = "WORKER_JOINED"
	EventProofSubmitted    EventType = "PROOF_SUBMITTED"
	EventProofStatus       EventType = "PROOF_STATUS"
	EventWithdrawStatus    EventType = "WITHDRAW_STATUS"
	EventAdminNotification EventType = "ADMIN_NOTIFICATION"
)

// Event is the descriptor handed to the notification emitter. The core never
// renders user-facing text; the emitter turns the structured payload into a
// message for its audience. ToAdmins addresses the ADMIN capability group
// instead of a concrete user.
type Event struct {
	Type     EventType
	UserID   int64
	ToAdmins bool
	Payload  EventPayload
}

type EventPayload struct {
	OrderID      int64
	AssignmentID int64
	RequestID    int64
	OrderType    OrderType
	Title        string
	Amount       float64
	Status       string
	Notes        string
}

type Notification struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Type      EventType `json:"type"`
	Message   string    `json:"message"`
	Link      string    `json:"link"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}
