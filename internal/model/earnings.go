package model

// Earning is the per-worker running ledger row. totalEarned and
// withdrawnAmount only ever grow; pendingBalance and approvedBalance never go
// negative (operations fail instead of clamping).
type Earning struct {
	UserID           int64   `json:"user_id"`
	TotalEarned      float64 `json:"total_earned"`
	PendingBalance   float64 `json:"pending_balance"`
	ApprovedBalance  float64 `json:"approved_balance"`
	WithdrawnAmount  float64 `json:"withdrawn_amount"`
	RemainingBalance float64 `json:"remaining_balance"`
}
