package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/ibeloyar/taskmarket/internal/model"
	"github.com/ibeloyar/taskmarket/pgk/auth"
)

func InitRoutes(r *chi.Mux, c *Controller, tokenSecret string) *chi.Mux {
	r.Get("/ping", c.Ping)

	r.Route("/api", func(r chi.Router) {
		r.Post("/user/register", c.Register)
		r.Post("/user/login", c.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthBearerMiddlewareInit[model.TokenInfo](tokenSecret))

			r.Route("/orders", func(r chi.Router) {
				r.Get("/", c.ListOrders)
				r.Post("/", c.CreateOrder)
				r.Get("/my", c.ListCreatorOrders)
				r.Get("/{orderID}", c.GetOrder)
				r.Post("/{orderID}/approve", c.ApproveOrder)
				r.Post("/{orderID}/cancel", c.CancelOrder)
				r.Post("/{orderID}/join", c.JoinOrder)
				r.Post("/{orderID}/proof", c.SubmitProof)
				r.Get("/{orderID}/proofs", c.ListOrderProofs)
			})

			r.Route("/assignments", func(r chi.Router) {
				r.Get("/", c.ListWorkerAssignments)
				r.Post("/{assignmentID}/verify", c.VerifyProof)
			})

			r.Get("/earnings", c.GetEarnings)

			r.Route("/withdrawals", func(r chi.Router) {
				r.Get("/", c.ListMyWithdraws)
				r.Post("/", c.RequestWithdraw)
			})

			r.Route("/admin/withdrawals", func(r chi.Router) {
				r.Get("/", c.ListWithdrawRequests)
				r.Post("/{requestID}/decide", c.DecideWithdraw)
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", c.ListNotifications)
				r.Post("/read", c.MarkNotificationsRead)
			})
		})
	})

	return r
}
