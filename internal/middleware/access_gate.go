package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Eduardo-brito329/Menu-Web/internal/cache"
	"github.com/Eduardo-brito329/Menu-Web/internal/subscription"
)

// RequireActiveSubscription bloqueia as rotas do admin quando a janela de
// assinatura venceu. Usa o mesmo avaliador do cardápio público e do
// endpoint de status — a regra de acesso mora num lugar só.
//
// Roda depois de AuthRequired (precisa do user_id no context).
func RequireActiveSubscription() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Não autenticado"})
			c.Abort()
			return
		}

		sub, err := cache.GetSubscriptionFromCache(userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro consultando assinatura"})
			c.Abort()
			return
		}

		if !subscription.IsAllowed(sub) {
			c.JSON(http.StatusPaymentRequired, gin.H{
				"error":   "Assinatura expirada",
				"blocked": true,
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
