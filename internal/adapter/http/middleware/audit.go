package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// auditActions maps write routes to audit action names.
var auditActions = map[string]string{
	http.MethodPost + " /api/v1/wallets":                    "wallet.create",
	http.MethodPost + " /api/v1/wallets/:id/adjustments":    "wallet.adjust",
	http.MethodPost + " /api/v1/orders/:id/wallet-payments": "order.pay_with_wallet",
	http.MethodPost + " /api/v1/orders/:id/refunds":         "order.refund",
}

// AuditLog writes one audit line per successful write operation, after the
// handler has run.
func AuditLog(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		status := c.Writer.Status()
		if status < 200 || status >= 300 {
			return
		}
		action, ok := auditActions[c.Request.Method+" "+c.FullPath()]
		if !ok {
			return
		}

		event := log.Info().
			Str("action", action).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Str("client_ip", c.ClientIP()).
			Str("request_id", c.GetString(CtxRequestID))
		if actor, exists := c.Get(CtxActorID); exists {
			event = event.Interface("actor_id", actor)
		}
		if channel, exists := c.Get(CtxChannelID); exists {
			event = event.Interface("channel_id", channel)
		}
		event.Msg("audit")
	}
}
