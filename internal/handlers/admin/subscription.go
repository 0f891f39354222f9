package admin

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Eduardo-brito329/Menu-Web/internal/cache"
	"github.com/Eduardo-brito329/Menu-Web/internal/subscription"
)

//
// 🟢 GET /api/subscription
//
// Estado da assinatura para o painel. Fica fora do gate de acesso:
// o dono bloqueado precisa ver que o acesso expirou e quanto pagar.
func SubscriptionStatus(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Não autenticado"})
		return
	}

	sub, err := cache.GetSubscriptionFromCache(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro consultando assinatura"})
		return
	}

	now := time.Now()

	daysLeft := 0
	if sub.TrialEnd != nil {
		if d := subscription.DaysLeftTrial(sub, now); d > 0 {
			daysLeft = d
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"subscription":    sub,
		"allowed":         subscription.AllowedAt(sub, now),
		"days_left_trial": daysLeft,
	})
}
