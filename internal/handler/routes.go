package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Register mounts the public webhooks and the admin API on r. api wraps the
// admin group only, in order (rate limit, then auth).
func (h *Handler) Register(r chi.Router, api ...func(http.Handler) http.Handler) {
	r.Get("/health", h.HealthCheck)

	r.Route("/webhook", func(r chi.Router) {
		r.Get("/", h.VerifyWebhook)
		r.Post("/", h.ReceiveWebhook)
		r.Post("/razorpay", h.RazorpayWebhook)
		r.Post("/shiprocket", h.ShiprocketWebhook)
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(api...)

		r.Post("/sessions", h.CreateSession)

		r.Route("/chats", func(r chi.Router) {
			r.Get("/", h.ListChats)
			r.Route("/{phone}", func(r chi.Router) {
				r.Get("/", h.GetChat)
				r.Patch("/", h.UpdateChat)
				r.Get("/messages", h.ChatMessages)
				r.Post("/messages", h.SendMessage)
				r.Post("/read", h.MarkChatRead)
			})
		})

		r.Route("/customers", func(r chi.Router) {
			r.Get("/", h.ListCustomers)
			r.Get("/stats", h.CustomerStats)
			r.Get("/{phone}", h.GetCustomer)
			r.Patch("/{phone}", h.UpdateCustomer)
			r.Delete("/{phone}", h.DeleteCustomer)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", h.ListOrders)
			r.Get("/stats", h.OrderStats)
			r.Route("/{orderID}", func(r chi.Router) {
				r.Get("/", h.GetOrder)
				r.Put("/status", h.UpdateOrderStatus)
				r.Post("/cancel", h.CancelOrder)
				r.Post("/refund", h.RefundOrder)
				r.Post("/ship", h.ShipOrder)
				r.Get("/tracking", h.TrackOrder)
			})
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", h.ListProducts)
			r.Post("/", h.CreateProduct)
			r.Get("/{productID}", h.GetProduct)
			r.Put("/{productID}", h.UpdateProduct)
			r.Put("/{productID}/stock", h.SetProductStock)
			r.Delete("/{productID}", h.DeleteProduct)
		})

		r.Route("/quick-replies", func(r chi.Router) {
			r.Get("/", h.ListQuickReplies)
			r.Post("/", h.CreateQuickReply)
			r.Get("/{id}", h.GetQuickReply)
			r.Put("/{id}", h.UpdateQuickReply)
			r.Delete("/{id}", h.DeleteQuickReply)
		})

		r.Route("/broadcasts", func(r chi.Router) {
			r.Get("/", h.ListBroadcasts)
			r.Post("/", h.CreateBroadcast)
			r.Route("/{broadcastID}", func(r chi.Router) {
				r.Get("/", h.GetBroadcast)
				r.Post("/send", h.SendBroadcast)
				r.Post("/schedule", h.ScheduleBroadcast)
				r.Post("/cancel", h.CancelBroadcast)
				r.Get("/recipients", h.BroadcastRecipients)
			})
		})

		r.Get("/analytics/dashboard", h.Dashboard)

		r.Get("/settings", h.ListSettings)
		r.Put("/settings", h.UpsertSetting)

		r.Get("/labels", h.ListLabels)
		r.Post("/labels", h.CreateLabel)
		r.Delete("/labels/{id}", h.DeleteLabel)

		r.Get("/templates", h.ListTemplates)
		r.Post("/templates", h.CreateTemplate)

		r.Get("/agents", h.ListAgents)
		r.Post("/agents", h.CreateAgent)

		r.Route("/scheduler", func(r chi.Router) {
			r.Post("/start", h.StartScheduler)
			r.Post("/stop", h.StopScheduler)
			r.Post("/jobs/{name}/run", h.RunJob)
		})
	})
}
