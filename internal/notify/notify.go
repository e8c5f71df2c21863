package notify

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ibeloyar/taskmarket/internal/model"
	"go.uber.org/zap"
)

const (
	queueSize  = 64
	numWorkers = 2

	deliveryTimeout = 3 * time.Second
)

type Storage interface {
	CreateNotification(ctx context.Context, n model.Notification) error
	GetAdminIDs(ctx context.Context) ([]int64, error)
}

// Emitter turns event descriptors into per-user notification rows. Delivery
// is fire-and-forget: Emit never blocks the calling operation and never
// returns an error; failures are logged and dropped (at-least-once delivery
// is not promised to the core).
type Emitter struct {
	storage Storage
	lg      *zap.SugaredLogger

	jobs chan model.Event
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.RWMutex
	closed bool
}

func New(storage Storage, lg *zap.SugaredLogger) *Emitter {
	e := &Emitter{
		storage: storage,
		lg:      lg,
		jobs:    make(chan model.Event, queueSize),
	}

	e.wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go func() {
			defer e.wg.Done()
			for event := range e.jobs {
				e.deliver(event)
			}
		}()
	}

	return e
}

func (e *Emitter) Emit(event model.Event) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.closed {
		e.lg.Warnf("emitter is shut down, dropping %s event", event.Type)
		return
	}

	select {
	case e.jobs <- event:
	default:
		e.lg.Warnf("notification queue full, dropping %s event", event.Type)
	}
}

// Shutdown stops accepting events and drains the queue, giving up after the
// timeout.
func (e *Emitter) Shutdown(timeout time.Duration) {
	e.once.Do(func() {
		e.mu.Lock()
		e.closed = true
		e.mu.Unlock()
		close(e.jobs)
	})

	done := make(chan struct{})
	go func() {
		defer close(done)
		e.wg.Wait()
	}()

	select {
	case <-done:
		e.lg.Info("notification emitter drained")
	case <-time.After(timeout):
		e.lg.Warn("notification emitter shutdown timed out")
	}
}

func (e *Emitter) deliver(event model.Event) {
	ctx, cancel := context.WithTimeout(context.Background(), deliveryTimeout)
	defer cancel()

	targets := []int64{event.UserID}
	if event.ToAdmins {
		adminIDs, err := e.storage.GetAdminIDs(ctx)
		if err != nil {
			e.lg.Errorf("resolving admin audience: %v", err)
			return
		}
		targets = adminIDs
	}

	message, link := render(event)

	for _, userID := range targets {
		err := e.storage.CreateNotification(ctx, model.Notification{
			UserID:  userID,
			Type:    event.Type,
			Message: message,
			Link:    link,
		})
		if err != nil {
			e.lg.Errorf("delivering %s notification to user %d: %v", event.Type, userID, err)
		}
	}
}

func render(event model.Event) (message, link string) {
	p := event.Payload

	switch event.Type {
	case model.EventNewOrder:
		return fmt.Sprintf("new %s order posted: %s", p.OrderType, p.Title),
			fmt.Sprintf("/admin/orders/%d", p.OrderID)

	case model.EventOrderApproved:
		return fmt.Sprintf("your order has been approved: %s", p.Title),
			fmt.Sprintf("/orders/%d", p.OrderID)

	case model.EventWorkerJoined:
		return fmt.Sprintf("a worker joined your order: %s", p.Title),
			fmt.Sprintf("/orders/%d", p.OrderID)

	case model.EventProofSubmitted:
		return fmt.Sprintf("proof submitted on your order: %s", p.Title),
			fmt.Sprintf("/orders/%d/proofs", p.OrderID)

	case model.EventProofStatus:
		if p.Status == string(model.AssignmentStatusApproved) {
			return fmt.Sprintf("your proof has been approved: %s", p.Title),
				fmt.Sprintf("/orders/%d", p.OrderID)
		}
		return fmt.Sprintf("your proof has been rejected: %s", p.Title),
			fmt.Sprintf("/orders/%d", p.OrderID)

	case model.EventOrderCompleted:
		return fmt.Sprintf("your order has been completed: %s", p.Title),
			fmt.Sprintf("/orders/%d", p.OrderID)

	case model.EventAdminNotification:
		return fmt.Sprintf("new withdraw request #%d: %.2f", p.RequestID, p.Amount),
			"/admin/withdraw-requests"

	case model.EventWithdrawStatus:
		switch model.WithdrawStatus(p.Status) {
		case model.WithdrawStatusApproved:
			return fmt.Sprintf("your withdraw request for %.2f has been approved", p.Amount), "/profile/earnings"
		case model.WithdrawStatusRejected:
			message = fmt.Sprintf("your withdraw request for %.2f has been rejected", p.Amount)
			if p.Notes != "" {
				message = fmt.Sprintf("%s, reason: %s", message, p.Notes)
			}
			return message, "/profile/earnings"
		default:
			return fmt.Sprintf("your withdraw request for %.2f is pending", p.Amount), "/profile/earnings"
		}
	}

	return string(event.Type), ""
}
