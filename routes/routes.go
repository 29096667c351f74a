package routes

import (
	"github.com/julienschmidt/httprouter"

	"perfnight/live"
	"perfnight/notify"
	"perfnight/ratelim"
	"perfnight/sales"
	"perfnight/tickets"
)

// AddSalesRoutes wires the booking flow to the router.
func AddSalesRoutes(router *httprouter.Router, rl *ratelim.RateLimiter, handler *sales.Handler) {
	router.GET("/api/sales", rl.Limit(handler.Retrieve))
	router.POST("/api/sales", rl.Limit(handler.Insert))
	router.GET("/api/sales/availability", rl.Limit(handler.Availability))
	router.POST("/api/sales/allocate", rl.Limit(handler.Allocate))
	router.POST("/api/sales/receipt", rl.Limit(handler.GenerateReceipt))
}

// AddTicketRoutes wires door scanning.
func AddTicketRoutes(router *httprouter.Router, rl *ratelim.RateLimiter, hub *live.Hub) {
	router.POST("/api/tickets/scan", rl.Limit(tickets.ScanTicket(hub)))
	router.GET("/api/tickets/scanned", rl.Limit(tickets.GetScannedTickets))
	router.POST("/api/tickets/check", rl.Limit(tickets.CheckScanned))
}

// AddNotificationRoutes wires announcements.
func AddNotificationRoutes(router *httprouter.Router, rl *ratelim.RateLimiter, hub *live.Hub) {
	router.POST("/api/notifications", rl.Limit(notify.InsertNotification(hub)))
	router.GET("/api/notifications", rl.Limit(notify.RetrieveNotifications))
}

// AddLiveRoutes wires the websocket endpoint. The socket is not rate
// limited; it is a single long-lived connection per client.
func AddLiveRoutes(router *httprouter.Router, hub *live.Hub) {
	router.GET("/ws", hub.ServeWS)
}
